package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"boxy-backend/internal/models"
	"boxy-backend/internal/services"
)

type chatService interface {
	Reply(ctx context.Context, conversation []models.ConversationTurn) (string, error)
}

type ChatHandler struct {
	chat   chatService
	logger *zap.Logger
}

// NewChatHandler wires the chat endpoint. chat may be nil when no API key is
// configured; every request then fails with MISSING_API_KEY.
func NewChatHandler(chat chatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chat:   chat,
		logger: logger,
	}
}

func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	if h.chat == nil {
		h.logger.Error("chat request without GEMINI_API_KEY")
		handleServiceError(w, r, &services.NotConfiguredError{Message: "Missing GEMINI_API_KEY"})
		return
	}

	var req models.ChatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if err := services.ValidateConversation(req.Conversation); err != nil {
		handleServiceError(w, r, err)
		return
	}

	reply, err := h.chat.Reply(r.Context(), req.Conversation)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}
