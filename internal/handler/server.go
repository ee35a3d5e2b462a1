// Package handler implements the HTML pages of the car-rental booking site.
// All handlers are methods on Server. Methods are split into page-specific
// files (home.go, booking.go, success.go, health.go) but share the same Server
// struct so they can access its dependencies.
//
// Every page is rebuilt from its URL query parameters plus at most one
// external fetch; the server keeps no per-user state between requests.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/car-rental/web/internal/domain"
	"github.com/pkordes/car-rental/web/internal/nav"
)

// AvailabilityServicer defines the availability flow the home page depends on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the network or service layer.
type AvailabilityServicer interface {
	Search(r domain.DateRange) (domain.DateRange, error)
	Available(ctx context.Context, r domain.DateRange) ([]domain.Car, error)
}

// CarServicer defines the detail flow the booking page depends on.
type CarServicer interface {
	Load(ctx context.Context, carID string, r domain.DateRange) (domain.Car, error)
}

// BookingServicer defines the submission flow the booking page depends on.
// Validate must not touch the network.
type BookingServicer interface {
	Validate(form domain.BookingForm) error
	Submit(ctx context.Context, token string, form domain.BookingForm, car domain.Car) (domain.BookingResult, error)
}

// Server serves every page of the site.
// Wire it in main.go via NewServer(...).Routes().
type Server struct {
	availability AvailabilityServicer
	cars         CarServicer
	bookings     BookingServicer
	log          *slog.Logger
	pages        pages
}

// NewServer constructs the Server with all its dependencies.
// A nil logger means slog.Default().
func NewServer(availability AvailabilityServicer, cars CarServicer, bookings BookingServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		availability: availability,
		cars:         cars,
		bookings:     bookings,
		log:          log,
		pages:        mustParsePages(),
	}
}

// Routes returns the router for all pages. Cross-cutting middleware
// (request ID, logging, CORS, recovery) is added by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get(nav.HomePath, s.GetHome)
	r.Post(nav.SearchPath, s.PostSearch)
	r.Get(nav.BookingPath, s.GetBooking)
	r.Post(nav.BookingPath, s.PostBooking)
	r.Get(nav.SuccessPath, s.GetSuccess)
	r.Get("/healthz", s.GetHealth)
	return r
}

// redirect sends a 303 so a following reload never re-posts a form.
func redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}
