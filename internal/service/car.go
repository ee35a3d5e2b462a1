package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkordes/car-rental/web/internal/domain"
	"github.com/pkordes/car-rental/web/internal/repo"
)

// CarService implements the detail/booking query flow: it loads one car
// priced for the exact rental window.
type CarService struct {
	cars repo.CarRepo
	loc  *time.Location
}

// NewCarService constructs a CarService. Windows are computed in loc; nil
// means UTC.
func NewCarService(cars repo.CarRepo, loc *time.Location) *CarService {
	if loc == nil {
		loc = time.UTC
	}
	return &CarService{cars: cars, loc: loc}
}

// Load returns carID with TotalPrice computed upstream for r.
// Returns domain.ErrValidation without calling the API when carID or either
// date is missing.
func (s *CarService) Load(ctx context.Context, carID string, r domain.DateRange) (domain.Car, error) {
	if strings.TrimSpace(carID) == "" || !r.Complete() {
		return domain.Car{}, fmt.Errorf("service.CarService.Load: car and dates are required: %w", domain.ErrValidation)
	}
	w := r.Window(s.loc)
	car, err := s.cars.GetByID(ctx, carID, &w)
	if err != nil {
		return domain.Car{}, fmt.Errorf("service.CarService.Load: %w", err)
	}
	return car, nil
}
