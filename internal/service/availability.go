// Package service contains the three booking flows: availability search,
// car detail load, and booking submission. Services validate inputs, convert
// calendar ranges into rental windows, and orchestrate repo calls.
// No HTTP lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkordes/car-rental/web/internal/domain"
	"github.com/pkordes/car-rental/web/internal/repo"
)

// AvailabilityService implements the availability query flow.
type AvailabilityService struct {
	cars repo.CarRepo
	loc  *time.Location
}

// NewAvailabilityService constructs an AvailabilityService. Windows are
// computed in loc; nil means UTC.
func NewAvailabilityService(cars repo.CarRepo, loc *time.Location) *AvailabilityService {
	if loc == nil {
		loc = time.UTC
	}
	return &AvailabilityService{cars: cars, loc: loc}
}

// Search validates a range chosen on the search form. It never calls the API;
// on success the caller navigates to the list view for the returned range.
//   - Both bounds must be set.
//   - Start must not be after End (a single-day rental is fine).
func (s *AvailabilityService) Search(r domain.DateRange) (domain.DateRange, error) {
	if !r.Complete() {
		return domain.DateRange{}, domain.NewValidationError("Missing dates", "Please select both start and end dates")
	}
	if r.Start.After(r.End) {
		return domain.DateRange{}, domain.NewValidationError("Invalid date range", "End date must be after start date")
	}
	return r, nil
}

// Available returns the cars available over the window of r.
// An empty result is not an error. Always returns a non-nil slice on success.
func (s *AvailabilityService) Available(ctx context.Context, r domain.DateRange) ([]domain.Car, error) {
	cars, err := s.cars.ListAvailable(ctx, r.Window(s.loc))
	if err != nil {
		return nil, fmt.Errorf("service.AvailabilityService.Available: %w", err)
	}
	if cars == nil {
		return []domain.Car{}, nil
	}
	return cars, nil
}
