package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// 2026-08-12 is a Wednesday; the Sunday on/before it is 2026-08-09.
var wednesday = date(2026, time.August, 12)

func TestNewWindow_Day(t *testing.T) {
	w := NewWindow(ZoomDay, wednesday)
	assert.Equal(t, wednesday, w.Start)
	assert.Equal(t, 1, w.Days)
	assert.Equal(t, wednesday, w.End())
}

func TestNewWindow_WeekStartsSunday(t *testing.T) {
	w := NewWindow(ZoomWeek, wednesday)
	assert.Equal(t, date(2026, time.August, 9), w.Start)
	assert.Equal(t, 7, w.Days)
	assert.Equal(t, date(2026, time.August, 15), w.End())
}

func TestNewWindow_WeekAnchoredOnSunday(t *testing.T) {
	sunday := date(2026, time.August, 9)
	w := NewWindow(ZoomWeek, sunday)
	assert.Equal(t, sunday, w.Start, "a Sunday anchor is its own week start")
}

func TestNewWindow_Month(t *testing.T) {
	w := NewWindow(ZoomMonth, wednesday)
	assert.Equal(t, date(2026, time.August, 1), w.Start)
	assert.Equal(t, 31, w.Days)

	feb := NewWindow(ZoomMonth, date(2026, time.February, 10))
	assert.Equal(t, 28, feb.Days)

	leap := NewWindow(ZoomMonth, date(2028, time.February, 10))
	assert.Equal(t, 29, leap.Days)
}

func TestNewWindow_TruncatesTimeOfDay(t *testing.T) {
	noon := time.Date(2026, time.August, 12, 12, 30, 0, 0, time.UTC)
	w := NewWindow(ZoomDay, noon)
	assert.Equal(t, wednesday, w.Start)
}

func TestNavigation(t *testing.T) {
	assert.Equal(t, date(2026, time.August, 13), Next(ZoomDay, wednesday))
	assert.Equal(t, date(2026, time.August, 11), Previous(ZoomDay, wednesday))
	assert.Equal(t, date(2026, time.August, 19), Next(ZoomWeek, wednesday))
	assert.Equal(t, date(2026, time.August, 5), Previous(ZoomWeek, wednesday))
	assert.Equal(t, date(2026, time.September, 12), Next(ZoomMonth, wednesday))
	assert.Equal(t, date(2026, time.July, 12), Previous(ZoomMonth, wednesday))
}

func TestPosition_ItemSpansExactlyTheWindow(t *testing.T) {
	w := NewWindow(ZoomWeek, wednesday) // Aug 9-15
	pos := Position(w.Start, w.End(), w)
	assert.Equal(t, 0.0, pos.Left)
	assert.InDelta(t, 100.0, pos.Width, 0.001)
}

func TestPosition_SingleDayInWeek(t *testing.T) {
	w := NewWindow(ZoomWeek, wednesday)
	// Item covering only the first day of the 7-day window.
	pos := Position(w.Start, w.Start, w)
	assert.Equal(t, 0.0, pos.Left)
	assert.InDelta(t, 100.0/7, pos.Width, 0.001)
}

func TestPosition_StartsBeforeWindow(t *testing.T) {
	w := NewWindow(ZoomWeek, wednesday)
	// Starts 3 days before the window, ends on day 2 of it. The span
	// keeps its full 5 days; only the window edge clamps it.
	pos := Position(w.Start.AddDate(0, 0, -3), w.Start.AddDate(0, 0, 1), w)
	assert.Equal(t, 0.0, pos.Left, "items starting before the window pin to the left edge")
	assert.InDelta(t, 5.0/7*100, pos.Width, 0.001)
}

func TestPosition_ClampsPastWindowEnd(t *testing.T) {
	w := NewWindow(ZoomWeek, wednesday)
	// Starts mid-window, runs far past the end.
	pos := Position(w.Start.AddDate(0, 0, 4), w.Start.AddDate(0, 0, 40), w)
	assert.InDelta(t, 4.0/7*100, pos.Left, 0.001)
	assert.InDelta(t, 3.0/7*100, pos.Width, 0.001, "width stops at the window edge")
}

func TestVisible(t *testing.T) {
	w := NewWindow(ZoomWeek, wednesday) // Aug 9-15

	// Entirely before.
	assert.False(t, Visible(date(2026, time.August, 1), date(2026, time.August, 5), w))
	// Entirely after.
	assert.False(t, Visible(date(2026, time.August, 20), date(2026, time.August, 25), w))
	// Partial overlap at the front.
	assert.True(t, Visible(date(2026, time.August, 5), date(2026, time.August, 9), w))
	// Window entirely inside the item span.
	assert.True(t, Visible(date(2026, time.August, 1), date(2026, time.August, 30), w))
	// Inside the window.
	assert.True(t, Visible(date(2026, time.August, 10), date(2026, time.August, 11), w))
}

func TestMarker(t *testing.T) {
	w := NewWindow(ZoomWeek, wednesday)

	left, ok := Marker(w.Start, w)
	require.True(t, ok)
	assert.Equal(t, 0.0, left)

	left, ok = Marker(w.Start.AddDate(0, 0, 3), w)
	require.True(t, ok)
	assert.InDelta(t, 3.0/7*100, left, 0.001)

	_, ok = Marker(w.Start.AddDate(0, 0, -1), w)
	assert.False(t, ok, "markers before the window are not rendered")
	_, ok = Marker(w.Start.AddDate(0, 0, 7), w)
	assert.False(t, ok, "markers after the window are not rendered")
}
