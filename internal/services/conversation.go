package services

import (
	"fmt"
	"strings"

	"boxy-backend/internal/models"
)

// ValidateConversation checks a conversation before it is forwarded. The
// upstream chat call continues from a user turn, so the last entry must be
// one.
func ValidateConversation(turns []models.ConversationTurn) error {
	if len(turns) == 0 {
		return &ValidationError{Fields: map[string]string{"conversation": "must contain at least one message"}}
	}

	fields := make(map[string]string)
	for i, turn := range turns {
		key := fmt.Sprintf("conversation[%d]", i)
		switch turn.Role {
		case models.RoleUser, models.RoleModel:
		default:
			fields[key+".role"] = fmt.Sprintf("must be %q or %q", models.RoleUser, models.RoleModel)
		}
		if strings.TrimSpace(turn.Text) == "" {
			fields[key+".text"] = "must not be blank"
		}
	}

	if last := turns[len(turns)-1]; last.Role != models.RoleUser {
		if _, bad := fields[fmt.Sprintf("conversation[%d].role", len(turns)-1)]; !bad {
			fields["conversation"] = "last message must come from the user"
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
