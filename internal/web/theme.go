package web

import (
	"net/http"
	"time"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeCookie holds the visitor's last choice.
const ThemeCookie = "theme"

// ParseTheme maps anything that is not "dark" to the light theme.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ToggleLabel is the text of the button that switches away from t.
func (t Theme) ToggleLabel() string {
	if t == ThemeDark {
		return "Light Mode"
	}
	return "Dark Mode"
}

// ThemeFromRequest reads the theme cookie, defaulting to light.
func ThemeFromRequest(r *http.Request) Theme {
	c, err := r.Cookie(ThemeCookie)
	if err != nil {
		return ThemeLight
	}
	return ParseTheme(c.Value)
}

func SetThemeCookie(w http.ResponseWriter, t Theme) {
	http.SetCookie(w, &http.Cookie{
		Name:     ThemeCookie,
		Value:    string(t),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
