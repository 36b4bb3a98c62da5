package tictactoe

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange = errors.New("cell index out of range")
	ErrCellTaken  = errors.New("cell already taken")
	ErrGameOver   = errors.New("game is over")
)

// Game is a board plus whose turn it is. X always opens.
type Game struct {
	board   Board
	xIsNext bool
}

func New() *Game {
	return &Game{xIsNext: true}
}

// FromBoard resumes a game from a board sent by a client. The side to move
// is derived from the marks already placed.
func FromBoard(b Board) (*Game, error) {
	xCount, oCount := b.count(X), b.count(O)

	var xIsNext bool
	switch xCount - oCount {
	case 0:
		xIsNext = true
	case 1:
		xIsNext = false
	default:
		return nil, fmt.Errorf("%w: %d X and %d O", ErrInconsistentBoard, xCount, oCount)
	}

	xLine, oLine := b.hasLine(X), b.hasLine(O)
	switch {
	case xLine && oLine:
		return nil, fmt.Errorf("%w: both players have a line", ErrInconsistentBoard)
	case xLine && xIsNext:
		return nil, fmt.Errorf("%w: O moved after X won", ErrInconsistentBoard)
	case oLine && !xIsNext:
		return nil, fmt.Errorf("%w: X moved after O won", ErrInconsistentBoard)
	}

	return &Game{board: b, xIsNext: xIsNext}, nil
}

// Play puts the next mark on cell i.
func (g *Game) Play(i int) error {
	if i < 0 || i >= Size {
		return fmt.Errorf("%w: %d", ErrOutOfRange, i)
	}
	if g.IsOver() {
		return ErrGameOver
	}
	if g.board[i] != Empty {
		return fmt.Errorf("%w: %d", ErrCellTaken, i)
	}
	g.board[i] = g.Next()
	g.xIsNext = !g.xIsNext
	return nil
}

func (g *Game) Reset() {
	g.board = Board{}
	g.xIsNext = true
}

func (g *Game) Board() Board {
	return g.board
}

// Next returns the mark that moves next.
func (g *Game) Next() Mark {
	if g.xIsNext {
		return X
	}
	return O
}

func (g *Game) Winner() Mark {
	return Winner(g.board)
}

// IsDraw is true when the board is full and nobody won.
func (g *Game) IsDraw() bool {
	return g.Winner() == Empty && g.board.Full()
}

func (g *Game) IsOver() bool {
	return g.Winner() != Empty || g.board.Full()
}

// StatusText is the line shown above the board.
func (g *Game) StatusText() string {
	if w := g.Winner(); w != Empty {
		return "🏆 Winner: " + string(w)
	}
	if g.board.Full() {
		return "🤝 It's a Draw!"
	}
	return "Turn: " + string(g.Next())
}
