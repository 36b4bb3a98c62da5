package models

// Conversation roles understood by the upstream model.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ConversationTurn is a single message as sent by the page.
type ConversationTurn struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// ChatRequest is the payload sent to the chat endpoint. The whole
// conversation travels with every request; nothing is kept server-side.
type ChatRequest struct {
	Conversation []ConversationTurn `json:"conversation"`
}

// ChatResponse is the reply from the AI chat.
type ChatResponse struct {
	Reply string `json:"reply"`
}
