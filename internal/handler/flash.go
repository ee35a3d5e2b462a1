package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/pkordes/car-rental/web/internal/domain"
)

// flashCookie carries one notice across a redirect. It is read once and
// cleared by the next page that shows it.
const flashCookie = "flash"

func setFlash(w http.ResponseWriter, n domain.Notice) {
	b, err := json.Marshal(n)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(b),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns the pending notice, if any, and expires the cookie.
// A tampered or garbled cookie is dropped silently.
func popFlash(w http.ResponseWriter, r *http.Request) (domain.Notice, bool) {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return domain.Notice{}, false
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true, SameSite: http.SameSiteLaxMode})

	b, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return domain.Notice{}, false
	}
	var n domain.Notice
	if err := json.Unmarshal(b, &n); err != nil || n.Title == "" {
		return domain.Notice{}, false
	}
	return n, true
}
