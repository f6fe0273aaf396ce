package formatter

import (
	"fmt"
	"strings"

	"github.com/saintgo7/web-abada-pamout/internal/i18n"
	"github.com/saintgo7/web-abada-pamout/internal/service"
)

const (
	ganttWidth  = 28
	ganttFill   = "▓"
	ganttEmpty  = "·"
	ganttMarker = "◆"
)

// FormatBoard renders a schedule window as a terminal Gantt chart.
// Each visible project becomes one bar row; milestone markers overlay
// the bar at their position in the window.
func FormatBoard(lang i18n.Lang, board service.ScheduleBoard) string {
	var b strings.Builder

	title := fmt.Sprintf("%s  %s → %s",
		i18n.T(lang, "schedule.title"),
		board.Window.Start.Format(dateLayout),
		board.Window.End().Format(dateLayout))
	b.WriteString(Header(title) + "\n")

	nameWidth := 0
	visible := 0
	for _, row := range board.Rows {
		if !row.Visible {
			continue
		}
		visible++
		if len(row.Project.Name) > nameWidth {
			nameWidth = len(row.Project.Name)
		}
	}
	if visible == 0 {
		b.WriteString(i18n.T(lang, "schedule.noData") + "\n")
		return b.String()
	}

	for _, row := range board.Rows {
		if !row.Visible {
			continue
		}

		cells := make([]string, ganttWidth)
		for i := range cells {
			cells[i] = ganttEmpty
		}

		from := int(row.Bar.Left / 100 * ganttWidth)
		span := int(row.Bar.Width / 100 * ganttWidth)
		if span < 1 {
			span = 1
		}
		for i := from; i < from+span && i < ganttWidth; i++ {
			cells[i] = StyleBlue.Render(ganttFill)
		}

		for _, m := range row.Markers {
			pos := int(m.Left / 100 * ganttWidth)
			if pos >= ganttWidth {
				pos = ganttWidth - 1
			}
			cells[pos] = StylePurple.Render(ganttMarker)
		}

		b.WriteString(fmt.Sprintf("%-*s  %s  %s\n",
			nameWidth,
			row.Project.Name,
			strings.Join(cells, ""),
			Dim(fmt.Sprintf("%.0f%%", row.Project.Progress))))
	}

	var markers []string
	for _, row := range board.Rows {
		for _, m := range row.Markers {
			markers = append(markers, fmt.Sprintf("  %s %s (%s)",
				StylePurple.Render(ganttMarker),
				m.Milestone.Name,
				m.Milestone.Date.Format(dateLayout)))
		}
	}
	if len(markers) > 0 {
		b.WriteString("\n" + Header(i18n.T(lang, "schedule.milestones")) + "\n")
		b.WriteString(strings.Join(markers, "\n") + "\n")
	}

	return b.String()
}
