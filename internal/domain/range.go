package domain

import "time"

// DateRange is an inclusive range of calendar days chosen by the user.
// A new range replaces the old one on each search; ranges are never mutated.
type DateRange struct {
	Start CalendarDate
	End   CalendarDate
}

// Complete reports whether both bounds are set.
func (r DateRange) Complete() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

// Window converts the range into the closed absolute-instant interval
// [StartOfDay(Start), EndOfDay(End)] in loc.
func (r DateRange) Window(loc *time.Location) Window {
	return Window{
		Start: r.Start.StartOfDay(loc),
		End:   r.End.EndOfDay(loc),
	}
}

// Window is the rental period as two precise instants.
// Prices and availability returned by the external API refer to exactly this
// interval.
type Window struct {
	Start time.Time
	End   time.Time
}

// StartParam returns Start in the API's instant format.
func (w Window) StartParam() string { return FormatInstant(w.Start) }

// EndParam returns End in the API's instant format.
func (w Window) EndParam() string { return FormatInstant(w.End) }
