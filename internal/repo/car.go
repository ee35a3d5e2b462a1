package repo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pkordes/car-rental/web/internal/domain"
)

// CarRepo defines the read operations on cars.
// The service layer depends on this interface, not the HTTP implementation,
// which allows the services to be unit-tested with a mock.
type CarRepo interface {
	// ListAvailable returns the cars with stock during w, priced for w.
	// The slice is never nil on success.
	ListAvailable(ctx context.Context, w domain.Window) ([]domain.Car, error)

	// GetByID returns one car. When w is non-nil the price fields refer to w.
	// A non-2xx answer surfaces the server's message when it sent one.
	GetByID(ctx context.Context, id string, w *domain.Window) (domain.Car, error)
}

type httpCarRepo struct {
	c *Client
}

// NewCarRepo constructs a CarRepo backed by the external API.
func NewCarRepo(c *Client) CarRepo {
	return &httpCarRepo{c: c}
}

// ListAvailable calls GET /car/availability?startDate&endDate.
func (r *httpCarRepo) ListAvailable(ctx context.Context, w domain.Window) ([]domain.Car, error) {
	c := call{
		op:       "repo.CarRepo.ListAvailable",
		method:   http.MethodGet,
		path:     "/car/availability",
		query:    windowQuery(&w),
		fallback: "Failed to fetch available cars",
	}
	body, err := r.c.do(ctx, c)
	if err != nil {
		return nil, err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, r.c.contractError(ctx, c, err)
	}
	cars := make([]domain.Car, 0, len(raw))
	for _, item := range raw {
		car, err := r.decodeCar(item)
		if err != nil {
			return nil, r.c.contractError(ctx, c, err)
		}
		cars = append(cars, car)
	}
	return cars, nil
}

// GetByID calls GET /car/{carId}, with startDate/endDate when w is set.
func (r *httpCarRepo) GetByID(ctx context.Context, id string, w *domain.Window) (domain.Car, error) {
	c := call{
		op:          "repo.CarRepo.GetByID",
		method:      http.MethodGet,
		path:        "/car/" + url.PathEscape(id),
		query:       windowQuery(w),
		fallback:    "Failed to fetch car details",
		bodyMessage: true,
	}
	body, err := r.c.do(ctx, c)
	if err != nil {
		return domain.Car{}, err
	}
	car, err := r.decodeCar(body)
	if err != nil {
		return domain.Car{}, r.c.contractError(ctx, c, err)
	}
	return car, nil
}

// decodeCar checks one car payload against the schema and maps it.
func (r *httpCarRepo) decodeCar(doc []byte) (domain.Car, error) {
	if err := conform(r.c.carSchema, doc); err != nil {
		return domain.Car{}, err
	}
	var car domain.Car
	if err := json.Unmarshal(doc, &car); err != nil {
		return domain.Car{}, err
	}
	if err := car.CheckStock(); err != nil {
		return domain.Car{}, err
	}
	return car, nil
}

// windowQuery encodes w as the startDate/endDate query pair, or nil.
func windowQuery(w *domain.Window) url.Values {
	if w == nil {
		return nil
	}
	return url.Values{
		"startDate": {w.StartParam()},
		"endDate":   {w.EndParam()},
	}
}
