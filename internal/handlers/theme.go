package handlers

import (
	"net/http"

	"boxy-backend/internal/models"
	"boxy-backend/internal/web"
)

type ThemeHandler struct{}

func NewThemeHandler() *ThemeHandler {
	return &ThemeHandler{}
}

// Toggle flips the theme cookie and reports the new theme.
func (h *ThemeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	next := web.ThemeFromRequest(r).Toggle()
	web.SetThemeCookie(w, next)
	writeJSON(w, http.StatusOK, models.ThemeResponse{Theme: string(next)})
}
