package metrics

import "github.com/saintgo7/web-abada-pamout/internal/domain"

// Summary holds the dashboard KPI block.
type Summary struct {
	TotalPrograms   int
	ActiveProjects  int
	Utilization     float64 // aggregate, rounded
	BudgetConsumed  float64 // aggregate percentage
	StatusBreakdown map[domain.ProgramStatus]int
	BudgetTrend     []TrendPoint
}

// Summarize computes the portfolio KPIs from a snapshot.
func Summarize(snap Snapshot) Summary {
	active := 0
	for _, p := range snap.Projects {
		if p.IsActive() {
			active++
		}
	}

	breakdown := make(map[domain.ProgramStatus]int)
	for _, p := range snap.Programs {
		breakdown[p.Status]++
	}

	return Summary{
		TotalPrograms:   len(snap.Programs),
		ActiveProjects:  active,
		Utilization:     AggregateUtilization(snap.Resources, snap.Allocations),
		BudgetConsumed:  AggregateBudgetConsumed(snap.Programs),
		StatusBreakdown: breakdown,
		BudgetTrend:     BudgetTrend(snap.Programs),
	}
}
