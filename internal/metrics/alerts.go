package metrics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/saintgo7/web-abada-pamout/internal/domain"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

func severityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

type AlertKind string

const (
	AlertMilestone AlertKind = "milestone"
	AlertResource  AlertKind = "resource"
	AlertBudget    AlertKind = "budget"
	AlertProgress  AlertKind = "progress"
)

// Alert is one dashboard warning. It carries structured values only;
// localized text and currency formatting happen at the presentation
// boundary.
type Alert struct {
	ID       string
	Kind     AlertKind
	Severity Severity
	Subject  string  // entity name the alert is about
	Context  string  // secondary name (e.g. the milestone's project)
	Percent  float64 // allocation or budget percentage, when relevant
	Expected float64 // expected progress, for progress alerts
	Days     int     // days remaining, for milestone alerts
}

// Snapshot is the slice of store state the alert builder reads.
type Snapshot struct {
	Programs    []domain.Program
	Projects    []domain.Project
	Resources   []domain.Resource
	Allocations []domain.ResourceAllocation
	Milestones  []domain.Milestone
}

// Alert thresholds.
const (
	milestoneLookaheadDays = 7
	milestoneCriticalDays  = 3
	budgetWarningPct       = 90
	allocationWarningPct   = 80
	maxMilestoneAlerts     = 2
)

// BuildAlerts produces a severity-ranked alert list: upcoming
// milestones, over-allocated resources, budget overruns and
// low-progress programs. The sort is stable, so alerts of equal
// severity keep their source insertion order. The result is truncated
// to max entries; max <= 0 means no limit.
func BuildAlerts(snap Snapshot, now time.Time, max int) []Alert {
	var alerts []Alert

	projectNames := make(map[string]string, len(snap.Projects))
	for _, p := range snap.Projects {
		projectNames[p.ID] = p.Name
	}

	// Milestones due within the lookahead window, at most two.
	lookahead := now.AddDate(0, 0, milestoneLookaheadDays)
	count := 0
	for _, m := range snap.Milestones {
		if count >= maxMilestoneAlerts {
			break
		}
		if m.Date.Before(now) || m.Date.After(lookahead) {
			continue
		}
		days := int(math.Ceil(m.Date.Sub(now).Hours() / 24))
		severity := SeverityWarning
		if days <= milestoneCriticalDays {
			severity = SeverityCritical
		}
		alerts = append(alerts, Alert{
			ID:       fmt.Sprintf("milestone-%s", m.ID),
			Kind:     AlertMilestone,
			Severity: severity,
			Subject:  m.Name,
			Context:  projectNames[m.ProjectID],
			Days:     days,
		})
		count++
	}

	// Resource allocation pressure.
	for _, load := range ResourceLoads(snap.Resources, snap.Allocations) {
		switch {
		case load.Allocated > 100:
			alerts = append(alerts, Alert{
				ID:       fmt.Sprintf("resource-%s", load.Resource.ID),
				Kind:     AlertResource,
				Severity: SeverityCritical,
				Subject:  load.Resource.Name,
				Percent:  load.Allocated,
			})
		case load.Allocated > allocationWarningPct:
			alerts = append(alerts, Alert{
				ID:       fmt.Sprintf("resource-%s", load.Resource.ID),
				Kind:     AlertResource,
				Severity: SeverityWarning,
				Subject:  load.Resource.Name,
				Percent:  load.Allocated,
			})
		}
	}

	// Budget overruns per program.
	for _, p := range snap.Programs {
		used := BudgetConsumed(p)
		switch {
		case used > 100:
			alerts = append(alerts, Alert{
				ID:       fmt.Sprintf("budget-%s", p.ID),
				Kind:     AlertBudget,
				Severity: SeverityCritical,
				Subject:  p.Name,
				Percent:  used,
			})
		case used > budgetWarningPct:
			alerts = append(alerts, Alert{
				ID:       fmt.Sprintf("budget-%s", p.ID),
				Kind:     AlertBudget,
				Severity: SeverityWarning,
				Subject:  p.Name,
				Percent:  used,
			})
		}
	}

	// Low-progress programs.
	for _, p := range snap.Programs {
		if IsLowProgress(p, now) {
			alerts = append(alerts, Alert{
				ID:       fmt.Sprintf("progress-%s", p.ID),
				Kind:     AlertProgress,
				Severity: SeverityInfo,
				Subject:  p.Name,
				Percent:  p.Progress,
				Expected: ExpectedProgress(p, now),
			})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return severityRank(alerts[i].Severity) < severityRank(alerts[j].Severity)
	})

	if max > 0 && len(alerts) > max {
		alerts = alerts[:max]
	}
	return alerts
}
