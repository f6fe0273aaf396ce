package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/saintgo7/web-abada-pamout/internal/assist"
	"github.com/saintgo7/web-abada-pamout/internal/i18n"
	"github.com/saintgo7/web-abada-pamout/internal/service"
)

// App holds references to all services used by CLI commands.
type App struct {
	Programs  service.ProgramService
	Projects  service.ProjectService
	Resources service.ResourceService
	Tracking  service.TrackingService
	Dashboard service.DashboardService

	// Nil when no API key is configured; commands degrade with a
	// configuration hint instead of failing at startup.
	Chat  *assist.ChatService
	Video *assist.VideoService

	Lang i18n.Lang
}

// IsInteractive reports whether stdin is attached to a terminal.
func IsInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// NewRootCmd creates the top-level "pamout" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var langFlag string

	root := &cobra.Command{
		Use:   "pamout",
		Short: "Program and project management with a generative assistant",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lang, err := i18n.Parse(langFlag)
			if err != nil {
				return err
			}
			app.Lang = lang
			return nil
		},
	}

	root.PersistentFlags().StringVar(&langFlag, "lang", "en", "Output language (en or ko)")

	root.AddCommand(
		newProgramCmd(app),
		newProjectCmd(app),
		newTaskCmd(app),
		newResourceCmd(app),
		newAllocateCmd(app),
		newBudgetCmd(app),
		newRiskCmd(app),
		newMilestoneCmd(app),
		newDashboardCmd(app),
		newAlertsCmd(app),
		newScheduleCmd(app),
		newChatCmd(app),
		newVideoCmd(app),
	)

	return root
}
