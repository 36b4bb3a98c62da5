package handlers

import (
	"errors"
	"net/http"

	"boxy-backend/internal/models"
	"boxy-backend/internal/tictactoe"
)

// GameHandler exposes the tic-tac-toe rules. The page owns the board and
// sends it with every move.
type GameHandler struct{}

func NewGameHandler() *GameHandler {
	return &GameHandler{}
}

func (h *GameHandler) New(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.NewGameState(tictactoe.New()))
}

func (h *GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req models.GameMoveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Invalid request body",
			map[string]string{"body": err.Error()}, r))
		return
	}

	fields := map[string]string{}
	if req.Board == nil {
		fields["board"] = "board is required"
	}
	if req.Index == nil {
		fields["index"] = "index is required"
	}
	if len(fields) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", fields, r))
		return
	}

	g, err := tictactoe.FromBoard(*req.Board)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Invalid board",
			map[string]string{"board": err.Error()}, r))
		return
	}

	if err := g.Play(*req.Index); err != nil {
		msg := "Invalid move"
		switch {
		case errors.Is(err, tictactoe.ErrGameOver):
			msg = "Game is already over"
		case errors.Is(err, tictactoe.ErrCellTaken):
			msg = "Cell is already taken"
		case errors.Is(err, tictactoe.ErrOutOfRange):
			msg = "Cell index must be between 0 and 8"
		}
		writeJSON(w, http.StatusUnprocessableEntity, errorResp("INVALID_MOVE", msg, r))
		return
	}

	writeJSON(w, http.StatusOK, models.NewGameState(g))
}
