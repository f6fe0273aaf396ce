package metrics

import (
	"math"
	"time"

	"github.com/saintgo7/web-abada-pamout/internal/domain"
)

// Thresholds for the low-progress check.
const (
	lowProgressCeiling = 30 // actual progress must be below this
	lowProgressSlack   = 20 // and at least this far behind expected
)

// ExpectedProgress returns the percentage of a program's timeline that
// has elapsed at now: daysSinceStart / totalDurationDays x 100.
// Before the start it is 0; a degenerate zero-length span yields 0.
func ExpectedProgress(p domain.Program, now time.Time) float64 {
	totalDays := p.EndDate.Sub(p.StartDate).Hours() / 24
	if totalDays <= 0 {
		return 0
	}
	elapsed := math.Ceil(now.Sub(p.StartDate).Hours() / 24)
	if elapsed < 0 {
		return 0
	}
	return elapsed / totalDays * 100
}

// IsLowProgress reports whether an active program is far enough behind
// its expected progress to warrant an alert: progress below 30 and more
// than 20 points behind expected.
func IsLowProgress(p domain.Program, now time.Time) bool {
	if p.Status != domain.ProgramActive {
		return false
	}
	if p.Progress >= lowProgressCeiling {
		return false
	}
	return p.Progress < ExpectedProgress(p, now)-lowProgressSlack
}
