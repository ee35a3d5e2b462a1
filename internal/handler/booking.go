package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/car-rental/web/internal/domain"
	"github.com/pkordes/car-rental/web/internal/nav"
)

type bookingView struct {
	page
	Car     *domain.Car
	Range   domain.DateRange
	Form    domain.BookingForm
	Token   string
	Action  string
	BackURL string
	Busy    bool

	// Editable shows the form even when no car was loaded, so input that
	// failed validation can be corrected in place.
	Editable bool
}

func newBookingView(carID string, rng domain.DateRange) bookingView {
	return bookingView{
		page:    page{Title: "Booking"},
		Range:   rng,
		Form:    domain.BookingForm{Range: rng},
		Action:  nav.BookingURL(carID, rng),
		BackURL: nav.ListURL(rng),
	}
}

// GetBooking handles GET /booking?carId&startDate&endDate.
// Missing or malformed parameters redirect to the search page without any
// fetch. Otherwise the car is loaded, priced for the rental window, and the
// booking form is shown with a fresh form token.
func (s *Server) GetBooking(w http.ResponseWriter, r *http.Request) {
	carID, rng, ok := nav.ParseBooking(r.URL.Query())
	if !ok {
		redirect(w, r, nav.HomePath)
		return
	}
	view := newBookingView(carID, rng)

	car, ok := s.loadCar(w, r, carID, rng, &view)
	if !ok {
		return
	}
	view.Car = &car
	view.Token = uuid.NewString()
	s.render(w, r, http.StatusOK, "booking.html", view)
}

// PostBooking handles POST /booking?carId&startDate&endDate.
// The form is validated first; input that fails is shown again with its notice
// and no API call is made. Otherwise the car is re-read from the API so the
// submission never trusts prices or names posted by the browser. On success
// the user lands on /success with a confirmation notice; on failure the form
// is shown again, filled in.
//
// The busy gate is keyed by the posted form token. A post without a valid
// token gets a fresh one and so is never reported busy.
func (s *Server) PostBooking(w http.ResponseWriter, r *http.Request) {
	carID, rng, ok := nav.ParseBooking(r.URL.Query())
	if !ok {
		redirect(w, r, nav.HomePath)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	view := newBookingView(carID, rng)
	for _, f := range domain.BookingFields {
		view.Form = view.Form.Set(f, strings.TrimSpace(r.PostForm.Get(f.Key())))
	}
	view.Token = formToken(r.PostForm.Get("token"))

	if err := s.bookings.Validate(view.Form); err != nil {
		view.Editable = true
		view.notify(s.submitNotice(r, err))
		s.render(w, r, failureStatus(err), "booking.html", view)
		return
	}

	car, ok := s.loadCar(w, r, carID, rng, &view)
	if !ok {
		return
	}
	view.Car = &car

	_, err := s.bookings.Submit(r.Context(), view.Token, view.Form, car)
	if err != nil {
		view.notify(s.submitNotice(r, err))
		view.Busy = errors.Is(err, domain.ErrBusy)
		s.render(w, r, failureStatus(err), "booking.html", view)
		return
	}

	setFlash(w, domain.Notice{
		Title:       "Booking confirmed!",
		Description: fmt.Sprintf("Your %s has been booked successfully.", car.Name()),
		Variant:     domain.VariantDefault,
	})
	redirect(w, r, nav.SuccessPath)
}

// loadCar runs the detail flow. On failure it writes the response itself
// (redirect or error page) and reports false.
func (s *Server) loadCar(w http.ResponseWriter, r *http.Request, carID string, rng domain.DateRange, view *bookingView) (domain.Car, bool) {
	car, err := s.cars.Load(r.Context(), carID, rng)
	if err == nil {
		return car, true
	}
	if errors.Is(err, domain.ErrValidation) {
		redirect(w, r, nav.HomePath)
		return domain.Car{}, false
	}
	s.logFailure(r, "load car", err, "car_id", carID)
	view.notify(upstreamNotice(err, "Error fetching car details", "Failed to fetch car details. Please try again."))
	s.render(w, r, failureStatus(err), "booking.html", view)
	return domain.Car{}, false
}

// submitNotice maps a submission failure to what the user sees.
func (s *Server) submitNotice(r *http.Request, err error) domain.Notice {
	if n, ok := validationNotice(err); ok {
		return n
	}
	if errors.Is(err, domain.ErrBusy) {
		return noticeBusy
	}
	s.logFailure(r, "submit booking", err)
	return upstreamNotice(err, "Booking failed", "Failed to create booking. Please try again.")
}

// formToken returns the posted token if it is a UUID, otherwise a new one.
func formToken(posted string) string {
	if id, err := uuid.Parse(posted); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
