package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pkordes/car-rental/web/internal/domain"
	"github.com/pkordes/car-rental/web/internal/repo"
)

// emailPattern accepts local@domain.tld: one "@", a "." somewhere after it,
// no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// BookingService implements the booking submission flow.
type BookingService struct {
	bookings repo.BookingRepo
	loc      *time.Location
	gate     *Gate
}

// NewBookingService constructs a BookingService. Windows are computed in loc;
// nil means UTC.
func NewBookingService(bookings repo.BookingRepo, loc *time.Location) *BookingService {
	if loc == nil {
		loc = time.UTC
	}
	return &BookingService{bookings: bookings, loc: loc, gate: NewGate()}
}

// Submit validates form and, if it passes, books car over form.Range.
// token identifies the form instance: while one attempt for a token is in
// flight, further attempts with that token fail with domain.ErrBusy.
// Identical sequential submissions are independent attempts.
//
// Returns domain.ErrValidation (as *domain.ValidationError) when a check fails;
// the API is not called in that case.
func (s *BookingService) Submit(ctx context.Context, token string, form domain.BookingForm, car domain.Car) (domain.BookingResult, error) {
	release, ok := s.gate.Acquire(token)
	if !ok {
		return domain.BookingResult{}, fmt.Errorf("service.BookingService.Submit: %w", domain.ErrBusy)
	}
	defer release()

	until, err := validateBooking(form)
	if err != nil {
		return domain.BookingResult{}, err
	}

	w := form.Range.Window(s.loc)
	req := domain.BookingRequest{
		Email:             form.Email,
		Name:              form.Name,
		LicenseNumber:     form.LicenseNumber,
		LicenseValidUntil: until.String(),
		StartDate:         w.StartParam(),
		EndDate:           w.EndParam(),
		CarID:             car.ID,
	}

	result, err := s.bookings.Create(ctx, req)
	if err != nil {
		return domain.BookingResult{}, fmt.Errorf("service.BookingService.Submit: %w", err)
	}
	return result, nil
}

// Validate runs the same checks as Submit without calling the API, so a
// caller can reject bad input before doing any other network work.
// Returns a *domain.ValidationError on failure.
func (s *BookingService) Validate(form domain.BookingForm) error {
	_, err := validateBooking(form)
	return err
}

// Busy reports whether a submission for token is in flight.
func (s *BookingService) Busy(token string) bool {
	return s.gate.Busy(token)
}

// validateBooking runs the form checks in order and stops at the first
// failure, so exactly one problem is reported per attempt:
//   - email, name, license number and license expiry are required
//   - email must look like local@domain.tld
//   - the license must be valid on the last rental day
//
// It returns the parsed license expiry.
func validateBooking(form domain.BookingForm) (domain.CalendarDate, error) {
	for _, f := range domain.BookingFields {
		if strings.TrimSpace(form.Get(f)) == "" {
			return domain.CalendarDate{}, domain.NewValidationError("Missing information", "Please fill in all required fields")
		}
	}
	if !emailPattern.MatchString(form.Email) {
		return domain.CalendarDate{}, domain.NewValidationError("Invalid email", "Please enter a valid email address")
	}
	until, err := domain.ParseCalendarDate(form.LicenseValidUntil)
	if err != nil || form.Range.End.After(until) {
		return domain.CalendarDate{}, domain.NewValidationError("Invalid license", "Driving license must be valid through the entire booking period")
	}
	return until, nil
}
