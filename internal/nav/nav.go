// Package nav is the navigation-state boundary between the pages. The list,
// booking and confirmation views hand state to each other only through the
// URL query parameters carId, startDate and endDate, so every page can be
// rebuilt from its URL alone.
package nav

import (
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/car-rental/web/internal/domain"
)

// Query parameter names.
const (
	ParamCarID     = "carId"
	ParamStartDate = "startDate"
	ParamEndDate   = "endDate"
)

// Page paths.
const (
	HomePath    = "/"
	SearchPath  = "/search"
	BookingPath = "/booking"
	SuccessPath = "/success"
)

// State classifies the date parameters found on a URL.
type State int

const (
	// Absent means at least one date parameter is missing or empty.
	Absent State = iota
	// Valid means both dates are present and parse as yyyy-MM-dd.
	Valid
	// Malformed means both are present but at least one does not parse.
	Malformed
)

// ListURL returns the list view URL for r.
func ListURL(r domain.DateRange) string {
	return HomePath + "?" + rangeQuery(r)
}

// BookingURL returns the booking view URL for carID over r.
func BookingURL(carID string, r domain.DateRange) string {
	return BookingPath + "?" + ParamCarID + "=" + url.QueryEscape(carID) + "&" + rangeQuery(r)
}

func rangeQuery(r domain.DateRange) string {
	return ParamStartDate + "=" + r.Start.String() + "&" + ParamEndDate + "=" + r.End.String()
}

// ParseRange reads startDate and endDate from q.
// The range is meaningful only when the returned State is Valid.
func ParseRange(q url.Values) (domain.DateRange, State) {
	if q.Get(ParamStartDate) == "" || q.Get(ParamEndDate) == "" {
		return domain.DateRange{}, Absent
	}
	start, err := bindDate(q, ParamStartDate)
	if err != nil {
		return domain.DateRange{}, Malformed
	}
	end, err := bindDate(q, ParamEndDate)
	if err != nil {
		return domain.DateRange{}, Malformed
	}
	return domain.DateRange{Start: start, End: end}, Valid
}

// ParseBooking reads carId, startDate and endDate from q. ok is false when any
// of them is missing or a date does not parse; callers redirect home.
func ParseBooking(q url.Values) (carID string, r domain.DateRange, ok bool) {
	carID = strings.TrimSpace(q.Get(ParamCarID))
	if carID == "" {
		return "", domain.DateRange{}, false
	}
	r, state := ParseRange(q)
	if state != Valid {
		return "", domain.DateRange{}, false
	}
	return carID, r, true
}

// bindDate binds a single form-style query parameter as a date.
func bindDate(q url.Values, name string) (domain.CalendarDate, error) {
	var d openapi_types.Date
	if err := runtime.BindQueryParameter("form", true, true, name, q, &d); err != nil {
		return domain.CalendarDate{}, err
	}
	return domain.CalendarDateOf(d.Time), nil
}
