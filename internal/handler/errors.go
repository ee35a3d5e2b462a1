package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pkordes/car-rental/web/internal/domain"
)

// Fixed notices. Titles and wording are what users see.
var (
	noticeNoCars = domain.Notice{
		Title:       "No cars available",
		Description: "No cars are available for the selected dates",
		Variant:     domain.VariantDefault,
	}
	noticeBusy = domain.Notice{
		Title:       "Booking in progress",
		Description: "Your booking is already being submitted",
		Variant:     domain.VariantDestructive,
	}
)

// validationNotice turns a *domain.ValidationError into its notice.
// Reports false for any other error.
func validationNotice(err error) (domain.Notice, bool) {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return domain.Notice{}, false
	}
	return domain.Notice{Title: verr.Title, Description: verr.Detail, Variant: domain.VariantDestructive}, true
}

// upstreamNotice builds a failure notice titled title. The description is the
// message carried by a *domain.APIError, or fallback for anything else.
func upstreamNotice(err error, title, fallback string) domain.Notice {
	desc := fallback
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		desc = apiErr.Message
	}
	return domain.Notice{Title: title, Description: desc, Variant: domain.VariantDestructive}
}

// failureStatus picks the HTTP status of a page re-rendered after err.
func failureStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// logFailure records err for a page that is re-rendered with a notice.
// The repo already logs upstream failures at warn; here they are debug.
func (s *Server) logFailure(r *http.Request, msg string, err error, args ...any) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrUpstream) {
		level = slog.LevelDebug
	}
	s.log.Log(r.Context(), level, msg, append(args, "error", err)...)
}
