package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"boxy-backend/internal/handlers"
	"boxy-backend/internal/middleware"
	"boxy-backend/internal/models"
	"boxy-backend/internal/web"
)

// maxBodyBytes bounds every request body, conversations included.
const maxBodyBytes = 1 << 20

func New(
	logger *zap.Logger,
	pageHandler *handlers.PageHandler,
	chatHandler *handlers.ChatHandler,
	gameHandler *handlers.GameHandler,
	themeHandler *handlers.ThemeHandler,
	geminiConfigured bool,
	allowedOrigin string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(allowedOrigin))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.HealthResponse{Status: "ok", GeminiConfigured: geminiConfigured})
	})

	// ──── Page & assets ────
	r.Get("/", pageHandler.Index)
	r.Handle("/static/*", http.StripPrefix("/static/", web.StaticHandler()))

	r.Group(func(r chi.Router) {
		r.Use(middleware.MaxBodyBytes(maxBodyBytes))

		// Path the page has always posted to.
		r.Post("/api/gemini", chatHandler.Send)

		r.Route("/api/v1", func(r chi.Router) {
			r.Post("/chat", chatHandler.Send)

			// ──── Tic-Tac-Toe ────
			r.Route("/tictactoe", func(r chi.Router) {
				r.Post("/new", gameHandler.New)
				r.Post("/move", gameHandler.Move)
			})

			// ──── Theme ────
			r.Post("/theme/toggle", themeHandler.Toggle)
		})
	})

	return r
}
