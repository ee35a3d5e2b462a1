package service_test

import (
	"context"
	"time"

	"github.com/pkordes/car-rental/web/internal/domain"
	"github.com/pkordes/car-rental/web/internal/repo"
)

// ---- mock repos ------------------------------------------------------------

// mockCarRepo is a hand-written test double for repo.CarRepo.
// Set only the method fields your test needs; calls to an unset field panic,
// which is how tests assert that no network call was made.
type mockCarRepo struct {
	listAvailable func(ctx context.Context, w domain.Window) ([]domain.Car, error)
	getByID       func(ctx context.Context, id string, w *domain.Window) (domain.Car, error)
}

func (m *mockCarRepo) ListAvailable(ctx context.Context, w domain.Window) ([]domain.Car, error) {
	return m.listAvailable(ctx, w)
}
func (m *mockCarRepo) GetByID(ctx context.Context, id string, w *domain.Window) (domain.Car, error) {
	return m.getByID(ctx, id, w)
}

// mockBookingRepo is a hand-written test double for repo.BookingRepo.
type mockBookingRepo struct {
	create func(ctx context.Context, req domain.BookingRequest) (domain.BookingResult, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, req domain.BookingRequest) (domain.BookingResult, error) {
	return m.create(ctx, req)
}

// compile-time checks: the mocks must satisfy the repo interfaces.
var (
	_ repo.CarRepo     = (*mockCarRepo)(nil)
	_ repo.BookingRepo = (*mockBookingRepo)(nil)
)

// ---- fixtures --------------------------------------------------------------

func date(y int, m time.Month, d int) domain.CalendarDate {
	return domain.NewCalendarDate(y, m, d)
}

func juneRange() domain.DateRange {
	return domain.DateRange{Start: date(2025, time.June, 1), End: date(2025, time.June, 5)}
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
