package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/saintgo7/web-abada-pamout/internal/cli/formatter"
	"github.com/saintgo7/web-abada-pamout/internal/domain"
)

func newBudgetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage project budget lines",
	}

	cmd.AddCommand(
		newBudgetAddCmd(app),
		newBudgetListCmd(app),
		newBudgetUpdateCmd(app),
		newBudgetRemoveCmd(app),
	)

	return cmd
}

func newBudgetAddCmd(app *App) *cobra.Command {
	var project, category string
	var planned, actual float64
	var fiscalYear, quarter int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a budget line to a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := &domain.Budget{
				ProjectID:     project,
				Category:      category,
				PlannedAmount: planned,
				ActualAmount:  actual,
				FiscalYear:    fiscalYear,
				Quarter:       quarter,
			}
			if err := app.Tracking.AddBudget(context.Background(), b); err != nil {
				return err
			}
			fmt.Printf("Added budget line %s [%s]\n", b.Category, b.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	cmd.Flags().StringVar(&category, "category", "", "Budget category")
	cmd.Flags().Float64Var(&planned, "planned", 0, "Planned amount")
	cmd.Flags().Float64Var(&actual, "actual", 0, "Actual amount")
	cmd.Flags().IntVar(&fiscalYear, "year", 0, "Fiscal year")
	cmd.Flags().IntVar(&quarter, "quarter", 0, "Quarter (1-4, 0 for whole year)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newBudgetListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List budget lines of a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			budgets, err := app.Tracking.ListBudgets(context.Background(), project)
			if err != nil {
				return err
			}
			if len(budgets) == 0 {
				fmt.Println("No budget lines")
				return nil
			}

			headers := []string{"ID", "Category", "Planned", "Actual", "FY"}
			rows := make([][]string, 0, len(budgets))
			for _, b := range budgets {
				fy := ""
				if b.FiscalYear > 0 {
					fy = strconv.Itoa(b.FiscalYear)
					if b.Quarter > 0 {
						fy += fmt.Sprintf(" Q%d", b.Quarter)
					}
				}
				rows = append(rows, []string{
					shortID(b.ID),
					b.Category,
					formatter.Money(app.Lang, b.PlannedAmount),
					formatter.Money(app.Lang, b.ActualAmount),
					fy,
				})
			}
			fmt.Println(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newBudgetUpdateCmd(app *App) *cobra.Command {
	var category, plannedStr, actualStr string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a budget line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.BudgetPatch
			if cmd.Flags().Changed("category") {
				patch.Category = &category
			}
			if cmd.Flags().Changed("planned") {
				v, err := strconv.ParseFloat(plannedStr, 64)
				if err != nil {
					return fmt.Errorf("invalid planned amount %q: %w", plannedStr, err)
				}
				patch.PlannedAmount = &v
			}
			if cmd.Flags().Changed("actual") {
				v, err := strconv.ParseFloat(actualStr, 64)
				if err != nil {
					return fmt.Errorf("invalid actual amount %q: %w", actualStr, err)
				}
				patch.ActualAmount = &v
			}

			b, err := app.Tracking.UpdateBudget(context.Background(), args[0], patch)
			if err != nil {
				return err
			}
			fmt.Printf("Updated budget line %s\n", b.Category)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "New category")
	cmd.Flags().StringVar(&plannedStr, "planned", "", "New planned amount")
	cmd.Flags().StringVar(&actualStr, "actual", "", "New actual amount")

	return cmd
}

func newBudgetRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a budget line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tracking.DeleteBudget(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed budget line %s\n", args[0])
			return nil
		},
	}
}

func newRiskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Manage project risks",
	}

	cmd.AddCommand(
		newRiskAddCmd(app),
		newRiskListCmd(app),
		newRiskUpdateCmd(app),
		newRiskRemoveCmd(app),
	)

	return cmd
}

func newRiskAddCmd(app *App) *cobra.Command {
	var project, title, description, probability, impact, mitigation, owner, due string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a risk against a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &domain.Risk{
				ProjectID:      project,
				Title:          title,
				Description:    description,
				Probability:    domain.RiskRating(probability),
				Impact:         domain.RiskRating(impact),
				MitigationPlan: mitigation,
				Owner:          owner,
				IdentifiedDate: time.Now().UTC(),
			}
			if due != "" {
				t, err := parseDate(due, "due")
				if err != nil {
					return err
				}
				r.DueDate = &t
			}
			if err := app.Tracking.AddRisk(context.Background(), r); err != nil {
				return err
			}
			fmt.Printf("Recorded risk %s [%s]\n", r.Title, r.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	cmd.Flags().StringVar(&title, "title", "", "Risk title")
	cmd.Flags().StringVar(&description, "description", "", "Risk description")
	cmd.Flags().StringVar(&probability, "probability", "medium", "Probability (low|medium|high)")
	cmd.Flags().StringVar(&impact, "impact", "medium", "Impact (low|medium|high)")
	cmd.Flags().StringVar(&mitigation, "mitigation", "", "Mitigation plan")
	cmd.Flags().StringVar(&owner, "owner", "", "Risk owner")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newRiskListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List risks of a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			risks, err := app.Tracking.ListRisks(context.Background(), project)
			if err != nil {
				return err
			}
			if len(risks) == 0 {
				fmt.Println("No risks recorded")
				return nil
			}

			headers := []string{"ID", "Title", "Probability", "Impact", "Status", "Due"}
			rows := make([][]string, 0, len(risks))
			for _, r := range risks {
				due := ""
				if r.DueDate != nil {
					due = r.DueDate.Format("2006-01-02")
				}
				rows = append(rows, []string{
					shortID(r.ID),
					r.Title,
					string(r.Probability),
					string(r.Impact),
					string(r.Status),
					due,
				})
			}
			fmt.Println(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newRiskUpdateCmd(app *App) *cobra.Command {
	var title, status, probability, impact, mitigation, owner, due string
	var clearDue bool

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a risk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.RiskPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("status") {
				if !domain.ValidRiskStatuses[status] {
					return fmt.Errorf("invalid status %q", status)
				}
				s := domain.RiskStatus(status)
				patch.Status = &s
			}
			if cmd.Flags().Changed("probability") {
				if !domain.ValidRiskRatings[probability] {
					return fmt.Errorf("invalid probability %q", probability)
				}
				p := domain.RiskRating(probability)
				patch.Probability = &p
			}
			if cmd.Flags().Changed("impact") {
				if !domain.ValidRiskRatings[impact] {
					return fmt.Errorf("invalid impact %q", impact)
				}
				i := domain.RiskRating(impact)
				patch.Impact = &i
			}
			if cmd.Flags().Changed("mitigation") {
				patch.MitigationPlan = &mitigation
			}
			if cmd.Flags().Changed("owner") {
				patch.Owner = &owner
			}
			switch {
			case clearDue:
				var noDate *time.Time
				patch.DueDate = &noDate
			case cmd.Flags().Changed("due"):
				t, err := parseDate(due, "due")
				if err != nil {
					return err
				}
				d := &t
				patch.DueDate = &d
			}

			r, err := app.Tracking.UpdateRisk(context.Background(), args[0], patch)
			if err != nil {
				return err
			}
			fmt.Printf("Updated risk %s\n", r.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&status, "status", "", "New status (open|mitigated|closed)")
	cmd.Flags().StringVar(&probability, "probability", "", "New probability")
	cmd.Flags().StringVar(&impact, "impact", "", "New impact")
	cmd.Flags().StringVar(&mitigation, "mitigation", "", "New mitigation plan")
	cmd.Flags().StringVar(&owner, "owner", "", "New owner")
	cmd.Flags().StringVar(&due, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&clearDue, "clear-due", false, "Clear the due date")

	return cmd
}

func newRiskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a risk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tracking.DeleteRisk(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed risk %s\n", args[0])
			return nil
		},
	}
}

func newMilestoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milestone",
		Short: "Manage project milestones",
	}

	cmd.AddCommand(
		newMilestoneAddCmd(app),
		newMilestoneListCmd(app),
		newMilestoneUpdateCmd(app),
		newMilestoneRemoveCmd(app),
	)

	return cmd
}

func newMilestoneAddCmd(app *App) *cobra.Command {
	var project, name, description, date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a milestone to a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDate(date, "date")
			if err != nil {
				return err
			}
			m := &domain.Milestone{
				ProjectID:   project,
				Name:        name,
				Description: description,
				Date:        d,
			}
			if err := app.Tracking.AddMilestone(context.Background(), m); err != nil {
				return err
			}
			fmt.Printf("Added milestone %s [%s]\n", m.Name, m.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	cmd.Flags().StringVar(&name, "name", "", "Milestone name")
	cmd.Flags().StringVar(&description, "description", "", "Milestone description")
	cmd.Flags().StringVar(&date, "date", "", "Milestone date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newMilestoneListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List milestones of a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			milestones, err := app.Tracking.ListMilestones(context.Background(), project)
			if err != nil {
				return err
			}
			if len(milestones) == 0 {
				fmt.Println("No milestones")
				return nil
			}

			headers := []string{"ID", "Name", "Date", "Status"}
			rows := make([][]string, 0, len(milestones))
			for _, m := range milestones {
				rows = append(rows, []string{
					shortID(m.ID),
					m.Name,
					m.Date.Format("2006-01-02"),
					string(m.Status),
				})
			}
			fmt.Println(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newMilestoneUpdateCmd(app *App) *cobra.Command {
	var name, description, date, status string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a milestone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.MilestonePatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("date") {
				t, err := parseDate(date, "date")
				if err != nil {
					return err
				}
				patch.Date = &t
			}
			if cmd.Flags().Changed("status") {
				if !domain.ValidMilestoneStatuses[status] {
					return fmt.Errorf("invalid status %q", status)
				}
				s := domain.MilestoneStatus(status)
				patch.Status = &s
			}

			m, err := app.Tracking.UpdateMilestone(context.Background(), args[0], patch)
			if err != nil {
				return err
			}
			fmt.Printf("Updated milestone %s\n", m.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&date, "date", "", "New date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "New status (pending|completed|overdue)")

	return cmd
}

func newMilestoneRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a milestone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tracking.DeleteMilestone(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed milestone %s\n", args[0])
			return nil
		},
	}
}
