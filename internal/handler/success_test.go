package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/car-rental/web/internal/domain"
)

func TestGetSuccess_WithoutFlash(t *testing.T) {
	h := newHTTPHandler(&mockAvailability{}, &mockCars{}, &mockBookings{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/success", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Booking Confirmed!")
	assert.NotContains(t, body, `class="notice`)
}

func TestGetSuccess_ShowsFlashOnce(t *testing.T) {
	var loads atomic.Int32
	h := newHTTPHandler(&mockAvailability{}, loadFixture(&loads), &mockBookings{
		submit: func(_ context.Context, _ string, _ domain.BookingForm, _ domain.Car) (domain.BookingResult, error) {
			return domain.BookingResult{Success: true}, nil
		},
	})

	post := postBooking(h, bookingURL, validBookingForm())
	require.Equal(t, http.StatusSeeOther, post.Code)

	req := httptest.NewRequest(http.MethodGet, "/success", nil)
	for _, c := range post.Result().Cookies() {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Booking confirmed!")
	assert.Contains(t, body, "Your Seat Ibiza has been booked successfully.")

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "flash" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "flash cookie is expired after being shown")
}

func TestGetSuccess_GarbledFlashIsIgnored(t *testing.T) {
	h := newHTTPHandler(&mockAvailability{}, &mockCars{}, &mockBookings{})

	req := httptest.NewRequest(http.MethodGet, "/success", nil)
	req.AddCookie(&http.Cookie{Name: "flash", Value: "%%%not-base64"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `class="notice`)
}
