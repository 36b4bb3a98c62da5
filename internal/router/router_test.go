package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"boxy-backend/internal/handlers"
	"boxy-backend/internal/models"
	"boxy-backend/internal/web"
)

type echoChat struct{}

func (echoChat) Reply(ctx context.Context, conversation []models.ConversationTurn) (string, error) {
	return "echo: " + conversation[len(conversation)-1].Text, nil
}

func newTestRouter(t *testing.T, chat *handlers.ChatHandler, geminiConfigured bool) http.Handler {
	t.Helper()
	renderer, err := web.NewRenderer()
	require.NoError(t, err)
	logger := zap.NewNop()

	return New(
		logger,
		handlers.NewPageHandler(renderer, logger),
		chat,
		handlers.NewGameHandler(),
		handlers.NewThemeHandler(),
		geminiConfigured,
		"",
	)
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(t, handlers.NewChatHandler(nil, zap.NewNop()), false)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","gemini_configured":false}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestRouter_ChatRoutes(t *testing.T) {
	r := newTestRouter(t, handlers.NewChatHandler(echoChat{}, zap.NewNop()), true)

	for _, path := range []string{"/api/gemini", "/api/v1/chat"} {
		t.Run(path, func(t *testing.T) {
			body := `{"conversation":[{"role":"user","text":"ping"}]}`
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))

			require.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"reply":"echo: ping"}`, rr.Body.String())
		})
	}
}

func TestRouter_ChatRejectsOversizedBody(t *testing.T) {
	r := newTestRouter(t, handlers.NewChatHandler(echoChat{}, zap.NewNop()), true)

	big := `{"conversation":[{"role":"user","text":"` + strings.Repeat("a", maxBodyBytes) + `"}]}`
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/gemini", strings.NewReader(big)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestRouter_PageAndStatic(t *testing.T) {
	r := newTestRouter(t, handlers.NewChatHandler(echoChat{}, zap.NewNop()), true)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "/static/app.js")

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_GameAndTheme(t *testing.T) {
	r := newTestRouter(t, handlers.NewChatHandler(echoChat{}, zap.NewNop()), true)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/tictactoe/new", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/theme/toggle", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"theme":"dark"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/tictactoe/new", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
