package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkordes/car-rental/web/internal/domain"
	"github.com/pkordes/car-rental/web/internal/handler"
)

// mockAvailability is a test double for handler.AvailabilityServicer.
// Set only the method fields your test needs; an unset field panics when
// called, which doubles as a "must not be called" assertion.
type mockAvailability struct {
	search    func(r domain.DateRange) (domain.DateRange, error)
	available func(ctx context.Context, r domain.DateRange) ([]domain.Car, error)
}

func (m *mockAvailability) Search(r domain.DateRange) (domain.DateRange, error) {
	return m.search(r)
}
func (m *mockAvailability) Available(ctx context.Context, r domain.DateRange) ([]domain.Car, error) {
	return m.available(ctx, r)
}

// mockCars is a test double for handler.CarServicer.
type mockCars struct {
	load func(ctx context.Context, carID string, r domain.DateRange) (domain.Car, error)
}

func (m *mockCars) Load(ctx context.Context, carID string, r domain.DateRange) (domain.Car, error) {
	return m.load(ctx, carID, r)
}

// mockBookings is a test double for handler.BookingServicer.
// An unset validate accepts every form.
type mockBookings struct {
	validate func(form domain.BookingForm) error
	submit   func(ctx context.Context, token string, form domain.BookingForm, car domain.Car) (domain.BookingResult, error)
}

func (m *mockBookings) Validate(form domain.BookingForm) error {
	if m.validate == nil {
		return nil
	}
	return m.validate(form)
}

func (m *mockBookings) Submit(ctx context.Context, token string, form domain.BookingForm, car domain.Car) (domain.BookingResult, error) {
	return m.submit(ctx, token, form, car)
}

// compile-time checks: mocks must satisfy the handler interfaces.
var (
	_ handler.AvailabilityServicer = (*mockAvailability)(nil)
	_ handler.CarServicer          = (*mockCars)(nil)
	_ handler.BookingServicer      = (*mockBookings)(nil)
)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into its router.
// This mirrors how main.go wires it in production, minus middleware.
func newHTTPHandler(a handler.AvailabilityServicer, c handler.CarServicer, b handler.BookingServicer) http.Handler {
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	return handler.NewServer(a, c, b, quiet).Routes()
}

func juneRange() domain.DateRange {
	return domain.DateRange{
		Start: domain.NewCalendarDate(2025, time.June, 1),
		End:   domain.NewCalendarDate(2025, time.June, 5),
	}
}

func carFixture() domain.Car {
	return domain.Car{
		ID:             "car-1",
		Brand:          "Seat",
		Model:          "Ibiza",
		Stock:          4,
		AvailableStock: 2,
		AvgPricePerDay: 42.5,
		TotalPrice:     212.5,
	}
}

// formBody encodes kv as an application/x-www-form-urlencoded body.
func formBody(kv map[string]string) io.Reader {
	v := url.Values{}
	for k, val := range kv {
		v.Set(k, val)
	}
	return strings.NewReader(v.Encode())
}

func validBookingForm() map[string]string {
	return map[string]string{
		"email":             "ana@example.com",
		"name":              "Ana Puig",
		"licenseNumber":     "B-1234567",
		"licenseValidUntil": "2030-01-01",
	}
}
