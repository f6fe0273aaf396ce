package metrics

import "github.com/saintgo7/web-abada-pamout/internal/domain"

// BudgetConsumed returns spent/budget as a percentage for one program.
// A zero budget yields 0, never infinity.
func BudgetConsumed(p domain.Program) float64 {
	if p.Budget == 0 {
		return 0
	}
	return p.Spent / p.Budget * 100
}

// AggregateBudgetConsumed returns total spent over total budget across
// all programs, as a percentage. Zero total budget yields 0.
func AggregateBudgetConsumed(programs []domain.Program) float64 {
	var budget, spent float64
	for _, p := range programs {
		budget += p.Budget
		spent += p.Spent
	}
	if budget == 0 {
		return 0
	}
	return spent / budget * 100
}

// TrendPoint is one program's planned-vs-actual budget pair in
// thousands, as plotted on the dashboard budget trend.
type TrendPoint struct {
	Name     string
	PlannedK float64
	ActualK  float64
}

// BudgetTrend maps each program to a trend point in thousands.
func BudgetTrend(programs []domain.Program) []TrendPoint {
	points := make([]TrendPoint, 0, len(programs))
	for _, p := range programs {
		points = append(points, TrendPoint{
			Name:     p.Name,
			PlannedK: p.Budget / 1000,
			ActualK:  p.Spent / 1000,
		})
	}
	return points
}
