package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/saintgo7/web-abada-pamout/internal/cli/formatter"
	"github.com/saintgo7/web-abada-pamout/internal/schedule"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the portfolio dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := app.Dashboard.Summary(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSummary(app.Lang, *sum))
			return nil
		},
	}
}

func newAlertsCmd(app *App) *cobra.Command {
	var max int

	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Show portfolio alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			alerts, err := app.Dashboard.Alerts(context.Background(), max)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatAlerts(app.Lang, alerts))
			return nil
		},
	}

	cmd.Flags().IntVar(&max, "max", 0, "Maximum number of alerts (0 for all)")

	return cmd
}

func newScheduleCmd(app *App) *cobra.Command {
	var zoom, anchor string
	var shift int

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show the schedule board",
		RunE: func(cmd *cobra.Command, args []string) error {
			var z schedule.Zoom
			switch zoom {
			case "day":
				z = schedule.ZoomDay
			case "week":
				z = schedule.ZoomWeek
			case "month":
				z = schedule.ZoomMonth
			default:
				return fmt.Errorf("invalid zoom %q: use day, week, or month", zoom)
			}

			if shift != 0 {
				base := time.Now()
				if anchor != "" {
					var err error
					base, err = time.Parse("2006-01-02", anchor)
					if err != nil {
						return fmt.Errorf("invalid anchor date %q: %w", anchor, err)
					}
				}
				for ; shift > 0; shift-- {
					base = schedule.Next(z, base)
				}
				for ; shift < 0; shift++ {
					base = schedule.Previous(z, base)
				}
				anchor = base.Format("2006-01-02")
			}

			board, err := app.Dashboard.Board(context.Background(), z, anchor)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatBoard(app.Lang, *board))
			return nil
		},
	}

	cmd.Flags().StringVar(&zoom, "zoom", "month", "Zoom level (day|week|month)")
	cmd.Flags().StringVar(&anchor, "anchor", "", "Anchor date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().IntVar(&shift, "shift", 0, "Shift the window by N zoom units (negative for back)")

	return cmd
}
