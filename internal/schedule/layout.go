package schedule

import (
	"math"
	"time"
)

// BarPosition is a normalized horizontal bar placement, both values in
// percent of the window width.
type BarPosition struct {
	Left  float64
	Width float64
}

// Position maps an item's date range onto the window. Items starting
// before the window are pinned to the left edge; the width is clamped
// so the bar never extends past the window.
func Position(start, end time.Time, w Window) BarPosition {
	offsetDays := math.Floor(dateOnly(start).Sub(w.Start).Hours() / 24)
	if offsetDays < 0 {
		offsetDays = 0
	}
	spanDays := math.Ceil(dateOnly(end).Sub(dateOnly(start)).Hours()/24) + 1

	windowDays := float64(w.Days)
	width := spanDays
	if width > windowDays-offsetDays {
		width = windowDays - offsetDays
	}
	if width < 0 {
		width = 0
	}

	return BarPosition{
		Left:  offsetDays / windowDays * 100,
		Width: width / windowDays * 100,
	}
}

// Visible reports whether an item's interval intersects the window.
// Partial overlap counts, as does the window lying entirely inside the
// item's span.
func Visible(start, end time.Time, w Window) bool {
	return !dateOnly(end).Before(w.Start) && !dateOnly(start).After(w.End())
}

// Marker returns the normalized left position for a milestone marker,
// or ok=false when the date falls outside the window and the marker is
// not rendered.
func Marker(date time.Time, w Window) (left float64, ok bool) {
	dayIndex := math.Floor(dateOnly(date).Sub(w.Start).Hours() / 24)
	if dayIndex < 0 || dayIndex >= float64(w.Days) {
		return 0, false
	}
	return dayIndex / float64(w.Days) * 100, true
}
