package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/saintgo7/web-abada-pamout/internal/cli/formatter"
	"github.com/saintgo7/web-abada-pamout/internal/domain"
)

func parseDate(value, flag string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s date %q: %w", flag, value, err)
	}
	return t, nil
}

func validateDate(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	_, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateAmount(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}

func newProgramCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "program",
		Short: "Manage programs",
	}

	cmd.AddCommand(
		newProgramAddCmd(app),
		newProgramListCmd(app),
		newProgramInspectCmd(app),
		newProgramUpdateCmd(app),
		newProgramRemoveCmd(app),
	)

	return cmd
}

func newProgramAddCmd(app *App) *cobra.Command {
	var name, description, start, end, owner, budgetStr string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new program",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without --name an interactive terminal gets a form.
			if name == "" {
				if !IsInteractive() {
					return fmt.Errorf("program name is required (use --name)")
				}
				form := programForm(&name, &description, &start, &end, &budgetStr)
				if err := form.Run(); err != nil {
					return err
				}
			}

			startDate, err := parseDate(start, "start")
			if err != nil {
				return err
			}
			endDate, err := parseDate(end, "end")
			if err != nil {
				return err
			}

			var budget float64
			if budgetStr != "" {
				budget, err = strconv.ParseFloat(budgetStr, 64)
				if err != nil {
					return fmt.Errorf("invalid budget %q: %w", budgetStr, err)
				}
			}

			p := &domain.Program{
				Name:        name,
				Description: description,
				StartDate:   startDate,
				EndDate:     endDate,
				Budget:      budget,
				OwnerID:     owner,
			}
			if err := app.Programs.Create(context.Background(), p); err != nil {
				return err
			}

			fmt.Printf("Created program %s [%s]\n", p.Name, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Program name")
	cmd.Flags().StringVar(&description, "description", "", "Program description")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&owner, "owner", "", "Owner ID")
	cmd.Flags().StringVar(&budgetStr, "budget", "", "Total budget")

	return cmd
}

func programForm(name, description, start, end, budget *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(name),
			huh.NewInput().Title("Description").Value(description),
			huh.NewInput().Title("Start Date").Placeholder("2026-01-01").Value(start).Validate(validateDate),
			huh.NewInput().Title("End Date").Placeholder("2026-12-31").Value(end).Validate(validateDate),
			huh.NewInput().Title("Budget").Placeholder("1000000").Value(budget).Validate(validateAmount),
		),
	).WithTheme(pamoutHuhTheme()).WithShowHelp(false)
}

func newProgramListCmd(app *App) *cobra.Command {
	var status, owner string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List programs",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := domain.ProgramFilter{
				Status:  domain.ProgramStatus(status),
				OwnerID: owner,
			}
			programs, err := app.Programs.List(context.Background(), filter)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatProgramList(app.Lang, programs))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status")
	cmd.Flags().StringVar(&owner, "owner", "", "Filter by owner ID")

	return cmd
}

func newProgramInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show program details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Programs.GetByID(ctx, args[0])
			if err != nil {
				return err
			}
			projects, err := app.Projects.ListByProgram(ctx, p.ID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatProgram(app.Lang, *p, projects))
			return nil
		},
	}
}

func newProgramUpdateCmd(app *App) *cobra.Command {
	var name, description, status, progressStr, spentStr string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update program fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.ProgramPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("status") {
				s := domain.ProgramStatus(status)
				if !domain.ValidProgramStatuses[status] {
					return fmt.Errorf("invalid status %q", status)
				}
				patch.Status = &s
			}
			if cmd.Flags().Changed("progress") {
				pct, err := strconv.ParseFloat(progressStr, 64)
				if err != nil {
					return fmt.Errorf("invalid progress %q: %w", progressStr, err)
				}
				patch.Progress = &pct
			}
			if cmd.Flags().Changed("spent") {
				amount, err := strconv.ParseFloat(spentStr, 64)
				if err != nil {
					return fmt.Errorf("invalid spent %q: %w", spentStr, err)
				}
				patch.Spent = &amount
			}

			p, err := app.Programs.Update(context.Background(), args[0], patch)
			if err != nil {
				return err
			}
			fmt.Printf("Updated program %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&status, "status", "", "New status")
	cmd.Flags().StringVar(&progressStr, "progress", "", "Progress percentage")
	cmd.Flags().StringVar(&spentStr, "spent", "", "Spent amount")

	return cmd
}

func newProgramRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a program and everything under it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Programs.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed program %s\n", args[0])
			return nil
		},
	}
}
