package formatter

import (
	"fmt"
	"strings"

	"github.com/saintgo7/web-abada-pamout/internal/domain"
	"github.com/saintgo7/web-abada-pamout/internal/i18n"
)

const dateLayout = "2006-01-02"

// FormatProgramList renders programs as a table.
func FormatProgramList(lang i18n.Lang, programs []domain.Program) string {
	if len(programs) == 0 {
		return i18n.T(lang, "programs.none")
	}

	headers := []string{
		"ID", "NAME", "STATUS",
		i18n.T(lang, "programs.budget"),
		i18n.T(lang, "programs.spent"),
		i18n.T(lang, "programs.progress"),
	}

	rows := make([][]string, 0, len(programs))
	for _, p := range programs {
		rows = append(rows, []string{
			shortID(p.ID),
			p.Name,
			StatusStyle(p.Status).Render(string(p.Status)),
			Money(lang, p.Budget),
			Money(lang, p.Spent),
			RenderProgress(p.Progress, 10),
		})
	}

	return RenderTable(headers, rows)
}

// FormatProgram renders one program with its projects underneath.
func FormatProgram(lang i18n.Lang, p domain.Program, projects []domain.Project) string {
	var b strings.Builder

	b.WriteString(Header(p.Name) + "\n")
	b.WriteString(Dim(p.Description) + "\n\n")

	write := func(label, value string) {
		b.WriteString(fmt.Sprintf("%-14s %s\n", Bold(label), value))
	}
	write("ID", p.ID)
	write("Status", StatusStyle(p.Status).Render(string(p.Status)))
	write(i18n.T(lang, "programs.start"), p.StartDate.Format(dateLayout))
	write(i18n.T(lang, "programs.end"), p.EndDate.Format(dateLayout))
	write(i18n.T(lang, "programs.budget"), Money(lang, p.Budget))
	write(i18n.T(lang, "programs.spent"), Money(lang, p.Spent))
	write(i18n.T(lang, "programs.progress"), RenderProgress(p.Progress, 20))
	write(i18n.T(lang, "programs.owner"), p.OwnerID)

	if len(projects) > 0 {
		b.WriteString("\n" + Header(i18n.T(lang, "schedule.projects")) + "\n")
		for _, proj := range projects {
			b.WriteString(fmt.Sprintf("  %s %s  %s  %s\n",
				Dim(shortID(proj.ID)),
				proj.Name,
				Dim(string(proj.Status)),
				RenderProgress(proj.Progress, 10)))
		}
	}

	return b.String()
}

// FormatProjectList renders projects as a table.
func FormatProjectList(lang i18n.Lang, projects []domain.Project) string {
	if len(projects) == 0 {
		return i18n.T(lang, "schedule.noData")
	}

	headers := []string{"ID", "NAME", "STATUS", "PRIORITY", i18n.T(lang, "programs.progress")}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			shortID(p.ID),
			p.Name,
			string(p.Status),
			string(p.Priority),
			RenderProgress(p.Progress, 10),
		})
	}
	return RenderTable(headers, rows)
}

// FormatTaskList renders tasks as a table.
func FormatTaskList(lang i18n.Lang, tasks []domain.Task) string {
	if len(tasks) == 0 {
		return i18n.T(lang, "schedule.noData")
	}

	headers := []string{"ID", "NAME", "STATUS", "ASSIGNEE", i18n.T(lang, "programs.progress")}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			shortID(t.ID),
			t.Name,
			string(t.Status),
			t.AssigneeID,
			RenderProgress(t.Progress, 10),
		})
	}
	return RenderTable(headers, rows)
}

// shortID trims UUIDs for display; seeded fixture ids pass through.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
