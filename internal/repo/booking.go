package repo

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkordes/car-rental/web/internal/domain"
)

// BookingRepo defines the write operation on bookings.
type BookingRepo interface {
	// Create posts req exactly once. A non-2xx answer surfaces the server's
	// message when it sent one.
	Create(ctx context.Context, req domain.BookingRequest) (domain.BookingResult, error)
}

type httpBookingRepo struct {
	c *Client
}

// NewBookingRepo constructs a BookingRepo backed by the external API.
func NewBookingRepo(c *Client) BookingRepo {
	return &httpBookingRepo{c: c}
}

// Create calls POST /customer/booking.
func (r *httpBookingRepo) Create(ctx context.Context, req domain.BookingRequest) (domain.BookingResult, error) {
	c := call{
		op:          "repo.BookingRepo.Create",
		method:      http.MethodPost,
		path:        "/customer/booking",
		body:        req,
		fallback:    "Failed to create booking",
		bodyMessage: true,
	}
	body, err := r.c.do(ctx, c)
	if err != nil {
		return domain.BookingResult{}, err
	}
	if err := conform(r.c.resultSchema, body); err != nil {
		return domain.BookingResult{}, r.c.contractError(ctx, c, err)
	}
	var result domain.BookingResult
	if err := json.Unmarshal(body, &result); err != nil {
		return domain.BookingResult{}, r.c.contractError(ctx, c, err)
	}
	return result, nil
}
