package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"boxy-backend/internal/models"
)

// FallbackReply is returned when the model answers without any text.
const FallbackReply = "I couldn't generate a response."

type GeminiOptions struct {
	Model       string
	Temperature float64 // negative leaves the model default
	Timeout     time.Duration

	// ClientOptions are appended after the API key, e.g. to point the
	// client at another endpoint.
	ClientOptions []option.ClientOption
}

type GeminiService struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
	logger  *zap.Logger
}

func NewGeminiService(apiKey string, opts GeminiOptions, logger *zap.Logger) (*GeminiService, error) {
	if apiKey == "" {
		return nil, &NotConfiguredError{Message: "Missing GEMINI_API_KEY"}
	}

	ctx := context.Background()
	clientOpts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts.ClientOptions...)
	client, err := genai.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(opts.Model)
	if opts.Temperature >= 0 {
		model.SetTemperature(float32(opts.Temperature))
	}

	return &GeminiService{
		client:  client,
		model:   model,
		timeout: opts.Timeout,
		logger:  logger.Named("gemini").With(zap.String("model", opts.Model)),
	}, nil
}

func (s *GeminiService) Close() error {
	return s.client.Close()
}

// Reply sends the whole conversation in one generateContent call and
// returns the text of the first candidate. The conversation must already
// be validated.
func (s *GeminiService) Reply(ctx context.Context, conversation []models.ConversationTurn) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	history, last := splitConversation(conversation)

	cs := s.model.StartChat()
	cs.History = history

	start := time.Now()
	resp, err := cs.SendMessage(ctx, last.Parts...)
	if err != nil {
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			s.logger.Warn("Gemini blocked the reply", zap.Error(err))
			return FallbackReply, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = fmt.Errorf("%w: %w", ctxErr, err)
		}
		s.logger.Error("Gemini request failed",
			zap.Int("turns", len(conversation)),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", &UpstreamError{Op: "generateContent", Err: err}
	}

	// An empty stream yields a nil response with no error.
	reply := firstCandidateText(resp)
	if strings.TrimSpace(reply) == "" {
		candidates := 0
		if resp != nil {
			candidates = len(resp.Candidates)
		}
		s.logger.Warn("Gemini returned no text, using fallback", zap.Int("candidates", candidates))
		return FallbackReply, nil
	}

	s.logger.Debug("Gemini replied",
		zap.Int("turns", len(conversation)),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("reply_len", len(reply)))
	return reply, nil
}

// Helper functions

// toContents maps each turn to {role, parts: [{text}]}, keeping order.
func toContents(conversation []models.ConversationTurn) []*genai.Content {
	contents := make([]*genai.Content, len(conversation))
	for i, turn := range conversation {
		contents[i] = &genai.Content{
			Role:  turn.Role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		}
	}
	return contents
}

// splitConversation separates the turn being answered from the history
// that precedes it.
func splitConversation(conversation []models.ConversationTurn) (history []*genai.Content, last *genai.Content) {
	contents := toContents(conversation)
	n := len(contents)
	return contents[:n-1], contents[n-1]
}

func firstCandidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return ""
	}
	if t, ok := cand.Content.Parts[0].(genai.Text); ok {
		return string(t)
	}
	return ""
}
