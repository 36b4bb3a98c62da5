package models

import "boxy-backend/internal/tictactoe"

// GameMoveRequest carries the board as the page last saw it and the cell
// the player clicked. Both fields are required.
type GameMoveRequest struct {
	Board *tictactoe.Board `json:"board"`
	Index *int             `json:"index"`
}

type GameState struct {
	Board   tictactoe.Board `json:"board"`
	XIsNext bool            `json:"xIsNext"`
	Winner  *string         `json:"winner"`
	Draw    bool            `json:"draw"`
	Status  string          `json:"status"`
}

// NewGameState snapshots a game for the wire.
func NewGameState(g *tictactoe.Game) GameState {
	state := GameState{
		Board:   g.Board(),
		XIsNext: g.Next() == tictactoe.X,
		Draw:    g.IsDraw(),
		Status:  g.StatusText(),
	}
	if w := g.Winner(); w != tictactoe.Empty {
		s := string(w)
		state.Winner = &s
	}
	return state
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}

type HealthResponse struct {
	Status           string `json:"status"`
	GeminiConfigured bool   `json:"gemini_configured"`
}
