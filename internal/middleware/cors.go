package middleware

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// preflightMaxAge is how long, in seconds, a browser may cache a preflight answer.
const preflightMaxAge = 600

// NewCORSHandler returns a middleware that lets the listed origins drive the
// site's form endpoints from another page. Each entry in allowedOrigins must
// be a full origin (scheme + host, no trailing slash).
//
// Only GET, POST and OPTIONS are served. Callers may send their own
// X-Request-Id; chi's RequestID middleware adopts it and the repo layer
// forwards it to the external API.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", chimiddleware.RequestIDHeader},
		MaxAge:         preflightMaxAge,
	})
	return c.Handler
}
