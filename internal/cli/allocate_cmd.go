package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/saintgo7/web-abada-pamout/internal/cli/formatter"
	"github.com/saintgo7/web-abada-pamout/internal/domain"
	"github.com/saintgo7/web-abada-pamout/internal/i18n"
)

func newAllocateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Manage resource allocations",
	}

	cmd.AddCommand(
		newAllocateAddCmd(app),
		newAllocateListCmd(app),
		newAllocateUpdateCmd(app),
		newAllocateRemoveCmd(app),
	)

	return cmd
}

func newAllocateAddCmd(app *App) *cobra.Command {
	var resource, project, task, start, end string
	var percent float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Allocate a resource to a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := parseDate(start, "start")
			if err != nil {
				return err
			}
			endDate, err := parseDate(end, "end")
			if err != nil {
				return err
			}

			a := &domain.ResourceAllocation{
				ResourceID:        resource,
				ProjectID:         project,
				TaskID:            task,
				AllocationPercent: percent,
				StartDate:         startDate,
				EndDate:           endDate,
			}
			if err := app.Resources.Allocate(context.Background(), a); err != nil {
				return err
			}

			fmt.Printf("Allocated %s to %s at %.0f%% [%s]\n",
				shortID(resource), shortID(project), percent, a.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&resource, "resource", "", "Resource ID")
	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	cmd.Flags().StringVar(&task, "task", "", "Task ID (optional)")
	cmd.Flags().Float64Var(&percent, "percent", 0, "Allocation percentage")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("resource")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("percent")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newAllocateListCmd(app *App) *cobra.Command {
	var resource string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List allocations of a resource",
		RunE: func(cmd *cobra.Command, args []string) error {
			allocations, err := app.Resources.ListAllocations(context.Background(), resource)
			if err != nil {
				return err
			}
			if len(allocations) == 0 {
				fmt.Println(i18n.T(app.Lang, "resources.noAllocations"))
				return nil
			}

			headers := []string{
				"ID",
				i18n.T(app.Lang, "resources.project"),
				i18n.T(app.Lang, "resources.allocation"),
				i18n.T(app.Lang, "resources.period"),
			}
			rows := make([][]string, 0, len(allocations))
			for _, a := range allocations {
				rows = append(rows, []string{
					shortID(a.ID),
					shortID(a.ProjectID),
					formatter.Percent(app.Lang, a.AllocationPercent),
					a.StartDate.Format("2006-01-02") + " ~ " + a.EndDate.Format("2006-01-02"),
				})
			}
			fmt.Println(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&resource, "resource", "", "Resource ID")
	_ = cmd.MarkFlagRequired("resource")

	return cmd
}

func newAllocateUpdateCmd(app *App) *cobra.Command {
	var percentStr, start, end string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update an allocation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.AllocationPatch
			if cmd.Flags().Changed("percent") {
				v, err := strconv.ParseFloat(percentStr, 64)
				if err != nil {
					return fmt.Errorf("invalid percent %q: %w", percentStr, err)
				}
				patch.AllocationPercent = &v
			}
			if cmd.Flags().Changed("start") {
				t, err := parseDate(start, "start")
				if err != nil {
					return err
				}
				patch.StartDate = &t
			}
			if cmd.Flags().Changed("end") {
				t, err := parseDate(end, "end")
				if err != nil {
					return err
				}
				patch.EndDate = &t
			}

			a, err := app.Resources.UpdateAllocation(context.Background(), args[0], patch)
			if err != nil {
				return err
			}
			fmt.Printf("Updated allocation %s (%.0f%%)\n", shortID(a.ID), a.AllocationPercent)
			return nil
		},
	}

	cmd.Flags().StringVar(&percentStr, "percent", "", "New allocation percentage")
	cmd.Flags().StringVar(&start, "start", "", "New start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "New end date (YYYY-MM-DD)")

	return cmd
}

func newAllocateRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an allocation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Resources.Deallocate(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed allocation %s\n", args[0])
			return nil
		},
	}
}
