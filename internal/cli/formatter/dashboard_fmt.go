package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/saintgo7/web-abada-pamout/internal/domain"
	"github.com/saintgo7/web-abada-pamout/internal/i18n"
	"github.com/saintgo7/web-abada-pamout/internal/metrics"
)

// FormatSummary renders the portfolio KPI block.
func FormatSummary(lang i18n.Lang, sum metrics.Summary) string {
	var b strings.Builder

	b.WriteString(Header("PamOut PPMS") + "\n")

	write := func(label, value string) {
		b.WriteString(fmt.Sprintf("%-24s %s\n", Bold(label), value))
	}
	write(i18n.T(lang, "dashboard.totalPrograms"), fmt.Sprintf("%d", sum.TotalPrograms))
	write(i18n.T(lang, "dashboard.activeProjects"), fmt.Sprintf("%d", sum.ActiveProjects))
	write(i18n.T(lang, "dashboard.resourceUtilization"), RenderProgress(sum.Utilization, 20))
	write(i18n.T(lang, "dashboard.budgetConsumed"), RenderProgress(sum.BudgetConsumed, 20))

	if len(sum.StatusBreakdown) > 0 {
		b.WriteString("\n" + Header(i18n.T(lang, "dashboard.programStatus")) + "\n")
		statuses := make([]domain.ProgramStatus, 0, len(sum.StatusBreakdown))
		for s := range sum.StatusBreakdown {
			statuses = append(statuses, s)
		}
		sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })
		for _, s := range statuses {
			b.WriteString(fmt.Sprintf("  %s %d\n",
				StatusStyle(s).Render(fmt.Sprintf("%-12s", string(s))),
				sum.StatusBreakdown[s]))
		}
	}

	if len(sum.BudgetTrend) > 0 {
		b.WriteString("\n" + Header(i18n.T(lang, "dashboard.budgetTrend")) + "\n")
		for _, tp := range sum.BudgetTrend {
			b.WriteString(fmt.Sprintf("  %-32s %s / %s\n",
				tp.Name,
				StyleBlue.Render(Number(lang, tp.ActualK)),
				Dim(Number(lang, tp.PlannedK))))
		}
	}

	return b.String()
}

// FormatAlerts renders the alert feed with localized descriptions.
func FormatAlerts(lang i18n.Lang, alerts []metrics.Alert) string {
	if len(alerts) == 0 {
		return i18n.T(lang, "alerts.none")
	}

	var b strings.Builder
	b.WriteString(Header(i18n.T(lang, "alerts.title")) + "\n")
	for _, a := range alerts {
		title, desc := describeAlert(lang, a)
		b.WriteString(fmt.Sprintf("%s  %s\n    %s\n", SeverityBadge(a.Severity), Bold(title), desc))
	}
	return b.String()
}

func describeAlert(lang i18n.Lang, a metrics.Alert) (title, desc string) {
	switch a.Kind {
	case metrics.AlertMilestone:
		return i18n.T(lang, "alerts.milestone"),
			i18n.Tf(lang, "alerts.milestone.desc", a.Subject, a.Days, a.Context)
	case metrics.AlertResource:
		if a.Severity == metrics.SeverityCritical {
			return i18n.T(lang, "alerts.resource.over"),
				i18n.Tf(lang, "alerts.resource.over.desc", a.Subject, a.Percent, a.Percent-100)
		}
		return i18n.T(lang, "alerts.resource.warn"),
			i18n.Tf(lang, "alerts.resource.warn.desc", a.Subject, a.Percent, 100-a.Percent)
	case metrics.AlertBudget:
		if a.Severity == metrics.SeverityCritical {
			return i18n.T(lang, "alerts.budget.over"),
				i18n.Tf(lang, "alerts.budget.over.desc", a.Subject, a.Percent, a.Percent-100)
		}
		return i18n.T(lang, "alerts.budget.warn"),
			i18n.Tf(lang, "alerts.budget.warn.desc", a.Subject, a.Percent, 100-a.Percent)
	default:
		return i18n.T(lang, "alerts.progress"),
			i18n.Tf(lang, "alerts.progress.desc", a.Subject, a.Percent, a.Expected)
	}
}

// FormatResourceLoads renders per-resource allocation pressure.
func FormatResourceLoads(lang i18n.Lang, loads []metrics.ResourceLoad) string {
	if len(loads) == 0 {
		return i18n.T(lang, "resources.noAllocations")
	}

	headers := []string{
		i18n.T(lang, "resources.members"),
		i18n.T(lang, "resources.capacity"),
		i18n.T(lang, "resources.allocation"),
		i18n.T(lang, "resources.available"),
	}
	rows := make([][]string, 0, len(loads))
	for _, l := range loads {
		rows = append(rows, []string{
			l.Resource.Name,
			fmt.Sprintf("%.0f%%", l.Resource.Capacity),
			LoadStyle(l.Status).Render(fmt.Sprintf("%.0f%%", l.Allocated)),
			fmt.Sprintf("%.0f%%", l.Available),
		})
	}
	return RenderTable(headers, rows)
}
