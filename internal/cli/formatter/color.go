package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/saintgo7/web-abada-pamout/internal/domain"
	"github.com/saintgo7/web-abada-pamout/internal/metrics"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SeverityStyle maps an alert severity to its display style.
func SeverityStyle(s metrics.Severity) lipgloss.Style {
	switch s {
	case metrics.SeverityCritical:
		return StyleRed
	case metrics.SeverityWarning:
		return StyleYellow
	default:
		return StyleBlue
	}
}

// SeverityBadge renders a colored marker such as "● CRITICAL".
func SeverityBadge(s metrics.Severity) string {
	return SeverityStyle(s).Render("● " + strings.ToUpper(string(s)))
}

// StatusStyle maps a program status to a display style.
func StatusStyle(s domain.ProgramStatus) lipgloss.Style {
	switch s {
	case domain.ProgramActive:
		return StyleGreen
	case domain.ProgramPlanning:
		return StyleBlue
	case domain.ProgramOnHold:
		return StyleYellow
	case domain.ProgramCancelled:
		return StyleRed
	default:
		return StyleDim
	}
}

// LoadStyle maps a resource load status to a display style.
func LoadStyle(s metrics.LoadStatus) lipgloss.Style {
	switch s {
	case metrics.LoadOverAllocated:
		return StyleRed
	case metrics.LoadWarning:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
