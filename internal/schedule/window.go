// Package schedule maps date ranges onto a visible timeline window for
// the Gantt view: window construction per zoom level, anchor
// navigation, and proportional bar/marker positioning. All functions
// are pure; dates are compared at day granularity.
package schedule

import "time"

type Zoom string

const (
	ZoomDay   Zoom = "day"
	ZoomWeek  Zoom = "week"
	ZoomMonth Zoom = "month"
)

// Window is the visible date span: Days consecutive calendar days
// starting at Start (midnight).
type Window struct {
	Start time.Time
	Days  int
}

// End returns the last visible day (inclusive).
func (w Window) End() time.Time {
	return w.Start.AddDate(0, 0, w.Days-1)
}

// NewWindow computes the visible window for a zoom level and anchor:
// day is the anchor alone, week is the 7 days starting from the most
// recent Sunday on/before the anchor, month is the anchor's calendar
// month.
func NewWindow(zoom Zoom, anchor time.Time) Window {
	anchor = dateOnly(anchor)
	switch zoom {
	case ZoomWeek:
		start := anchor.AddDate(0, 0, -int(anchor.Weekday()))
		return Window{Start: start, Days: 7}
	case ZoomMonth:
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		return Window{Start: first, Days: first.AddDate(0, 1, -1).Day()}
	default:
		return Window{Start: anchor, Days: 1}
	}
}

// Next shifts the anchor forward by one unit of the zoom granularity.
func Next(zoom Zoom, anchor time.Time) time.Time {
	switch zoom {
	case ZoomWeek:
		return anchor.AddDate(0, 0, 7)
	case ZoomMonth:
		return anchor.AddDate(0, 1, 0)
	default:
		return anchor.AddDate(0, 0, 1)
	}
}

// Previous shifts the anchor back by one unit of the zoom granularity.
func Previous(zoom Zoom, anchor time.Time) time.Time {
	switch zoom {
	case ZoomWeek:
		return anchor.AddDate(0, 0, -7)
	case ZoomMonth:
		return anchor.AddDate(0, -1, 0)
	default:
		return anchor.AddDate(0, 0, -1)
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
