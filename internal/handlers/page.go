package handlers

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"boxy-backend/internal/web"
)

type PageHandler struct {
	renderer *web.Renderer
	logger   *zap.Logger
}

func NewPageHandler(renderer *web.Renderer, logger *zap.Logger) *PageHandler {
	return &PageHandler{renderer: renderer, logger: logger}
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.renderer.RenderIndex(&buf, web.NewPageData(web.ThemeFromRequest(r))); err != nil {
		h.logger.Error("render index", zap.Error(err))
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
