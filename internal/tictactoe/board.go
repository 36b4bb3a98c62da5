// Package tictactoe holds the rules of the two-player game embedded in the
// chat page. Everything here is pure; the HTTP layer passes boards in and
// out and keeps no state.
package tictactoe

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Mark is the content of a single cell.
type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

// Size is the number of cells on the board.
const Size = 9

var (
	ErrBoardSize         = errors.New("board must have 9 cells")
	ErrUnknownMark       = errors.New("unknown mark")
	ErrInconsistentBoard = errors.New("board cannot be reached by legal play")
)

// lines lists every row, column and diagonal, in the order they are checked.
var lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// MarshalJSON encodes an empty cell as null.
func (m Mark) MarshalJSON() ([]byte, error) {
	if m == Empty {
		return []byte("null"), nil
	}
	return json.Marshal(string(m))
}

func (m *Mark) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Empty
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch Mark(s) {
	case Empty, X, O:
		*m = Mark(s)
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMark, s)
	}
}

// Board is the 3x3 grid in row-major order.
type Board [Size]Mark

// UnmarshalJSON rejects arrays that are not exactly nine cells long, which
// the default array decoding would silently pad or truncate.
func (b *Board) UnmarshalJSON(data []byte) error {
	var cells []Mark
	if err := json.Unmarshal(data, &cells); err != nil {
		return err
	}
	if len(cells) != Size {
		return fmt.Errorf("%w: got %d", ErrBoardSize, len(cells))
	}
	copy(b[:], cells)
	return nil
}

// Winner returns the mark holding the first complete line, or Empty.
func Winner(b Board) Mark {
	for _, l := range lines {
		a := b[l[0]]
		if a != Empty && a == b[l[1]] && a == b[l[2]] {
			return a
		}
	}
	return Empty
}

func (b Board) hasLine(m Mark) bool {
	for _, l := range lines {
		if b[l[0]] == m && b[l[1]] == m && b[l[2]] == m {
			return true
		}
	}
	return false
}

// Full reports whether every cell is taken.
func (b Board) Full() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

func (b Board) count(m Mark) int {
	n := 0
	for _, c := range b {
		if c == m {
			n++
		}
	}
	return n
}
