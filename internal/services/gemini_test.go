package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"boxy-backend/internal/models"
)

func TestToContents_PreservesOrderAndRoles(t *testing.T) {
	contents := toContents([]models.ConversationTurn{
		{Role: models.RoleUser, Text: "hi"},
		{Role: models.RoleModel, Text: "hello"},
		{Role: models.RoleUser, Text: "bye"},
	})

	require.Len(t, contents, 3)
	for i, want := range []struct{ role, text string }{
		{"user", "hi"},
		{"model", "hello"},
		{"user", "bye"},
	} {
		assert.Equal(t, want.role, contents[i].Role)
		require.Len(t, contents[i].Parts, 1)
		assert.Equal(t, genai.Text(want.text), contents[i].Parts[0])
	}
}

func TestSplitConversation(t *testing.T) {
	history, last := splitConversation([]models.ConversationTurn{
		{Role: models.RoleUser, Text: "first"},
		{Role: models.RoleModel, Text: "answer"},
		{Role: models.RoleUser, Text: "second"},
	})

	assert.Len(t, history, 2)
	assert.Equal(t, "user", last.Role)
	assert.Equal(t, []genai.Part{genai.Text("second")}, last.Parts)

	history, last = splitConversation([]models.ConversationTurn{{Role: models.RoleUser, Text: "only"}})
	assert.Empty(t, history)
	assert.Equal(t, []genai.Part{genai.Text("only")}, last.Parts)
}

func TestFirstCandidateText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{"nil response", nil, ""},
		{"no candidates", &genai.GenerateContentResponse{}, ""},
		{"nil content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}, ""},
		{"no parts", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: &genai.Content{}}}}, ""},
		{"first part only", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("one"), genai.Text("two")}}},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("other")}}},
		}}, "one"},
		{"non-text first part", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}}}},
		}}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, firstCandidateText(tc.resp))
		})
	}
}

func TestNewGeminiService_MissingKey(t *testing.T) {
	svc, err := NewGeminiService("", GeminiOptions{Model: "gemini-2.0-flash"}, zap.NewNop())

	assert.Nil(t, svc)
	var nc *NotConfiguredError
	require.True(t, errors.As(err, &nc))
	assert.Equal(t, "Missing GEMINI_API_KEY", nc.Message)
}

func TestUpstreamError_UnwrapsDeadline(t *testing.T) {
	err := &UpstreamError{Op: "generateContent", Err: context.DeadlineExceeded}

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Contains(t, err.Error(), "generateContent")
}
