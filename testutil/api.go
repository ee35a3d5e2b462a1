// Package testutil provides shared helpers for tests that talk to the
// external car-rental API. The fake server records every request it receives
// so tests can assert on exactly what was sent, and how many times.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// Recorded is one request received by an APIServer.
type Recorded struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// APIServer is a fake external API. Embed-promoted fields such as URL and
// Client() come from the underlying httptest.Server.
type APIServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []Recorded
}

// NewAPIServer starts a fake API that records each request and then hands it
// to h. The server is closed automatically when the test finishes.
func NewAPIServer(t *testing.T, h http.HandlerFunc) *APIServer {
	t.Helper()

	s := &APIServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("testutil.APIServer: read body: %v", err)
		}
		s.mu.Lock()
		s.requests = append(s.requests, Recorded{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()

		h(w, r)
	}))
	t.Cleanup(s.Close)
	return s
}

// Requests returns a copy of every request received so far, in order.
func (s *APIServer) Requests() []Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Recorded, len(s.requests))
	copy(out, s.requests)
	return out
}

// Count returns how many requests the server has received.
func (s *APIServer) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// JSON returns a handler that answers every request with status and v
// encoded as JSON.
func JSON(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Raw returns a handler that answers every request with status and body as-is.
func Raw(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}
