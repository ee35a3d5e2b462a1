package handler

import (
	"net/http"

	"github.com/pkordes/car-rental/web/internal/domain"
	"github.com/pkordes/car-rental/web/internal/nav"
)

// carCard is one entry of the availability list.
type carCard struct {
	domain.Car
	BookURL string
}

type homeView struct {
	page
	Range domain.DateRange
	Cars  []carCard
}

// GetHome handles GET /.
// Without both date parameters it shows the empty search form. With both and
// valid, it fetches availability for the range exactly once. With a date that
// does not parse, it redirects to the bare search page.
func (s *Server) GetHome(w http.ResponseWriter, r *http.Request) {
	view := homeView{page: page{Title: "Search"}}

	rng, state := nav.ParseRange(r.URL.Query())
	switch state {
	case nav.Absent:
		s.render(w, r, http.StatusOK, "home.html", view)
		return
	case nav.Malformed:
		redirect(w, r, nav.HomePath)
		return
	}
	view.Range = rng

	cars, err := s.availability.Available(r.Context(), rng)
	if err != nil {
		// The list endpoint's failures are always reported generically.
		view.notify(domain.Notice{
			Title:       "Error",
			Description: "Failed to fetch available cars. Please try again.",
			Variant:     domain.VariantDestructive,
		})
		s.logFailure(r, "fetch available cars", err)
		s.render(w, r, http.StatusOK, "home.html", view)
		return
	}

	if len(cars) == 0 {
		view.notify(noticeNoCars)
	}
	view.Cars = make([]carCard, 0, len(cars))
	for _, c := range cars {
		view.Cars = append(view.Cars, carCard{Car: c, BookURL: nav.BookingURL(c.ID, rng)})
	}
	s.render(w, r, http.StatusOK, "home.html", view)
}

// PostSearch handles POST /search.
// It validates the chosen range and, on success, navigates to the list view
// for it. It never calls the external API itself.
func (s *Server) PostSearch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	chosen := domain.DateRange{
		Start: formDate(r, nav.ParamStartDate),
		End:   formDate(r, nav.ParamEndDate),
	}

	rng, err := s.availability.Search(chosen)
	if err != nil {
		n, ok := validationNotice(err)
		if !ok {
			s.log.ErrorContext(r.Context(), "search", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		view := homeView{page: page{Title: "Search"}, Range: chosen}
		view.notify(n)
		s.render(w, r, http.StatusUnprocessableEntity, "home.html", view)
		return
	}

	redirect(w, r, nav.ListURL(rng))
}

// formDate reads a yyyy-MM-dd form value. Missing or unparseable input is
// treated as "not chosen".
func formDate(r *http.Request, key string) domain.CalendarDate {
	d, err := domain.ParseCalendarDate(r.PostForm.Get(key))
	if err != nil {
		return domain.CalendarDate{}
	}
	return d
}
