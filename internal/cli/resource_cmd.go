package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saintgo7/web-abada-pamout/internal/cli/formatter"
	"github.com/saintgo7/web-abada-pamout/internal/domain"
	"github.com/saintgo7/web-abada-pamout/internal/i18n"
)

func newResourceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource",
		Short: "Manage resources",
	}

	cmd.AddCommand(
		newResourceAddCmd(app),
		newResourceListCmd(app),
		newResourceInspectCmd(app),
		newResourceUpdateCmd(app),
		newResourceRemoveCmd(app),
		newResourceLoadsCmd(app),
	)

	return cmd
}

func newResourceAddCmd(app *App) *cobra.Command {
	var name, email, role, department, skills string
	var capacity, rate float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a resource",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &domain.Resource{
				Name:       name,
				Email:      email,
				Role:       role,
				Department: department,
				Skills:     splitSkills(skills),
				Capacity:   capacity,
				HourlyRate: rate,
			}
			if err := app.Resources.Create(context.Background(), r); err != nil {
				return err
			}

			fmt.Printf("Registered resource %s [%s]\n", r.Name, r.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Resource name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&role, "role", "", "Role title")
	cmd.Flags().StringVar(&department, "department", "", "Department")
	cmd.Flags().StringVar(&skills, "skills", "", "Comma-separated skills")
	cmd.Flags().Float64Var(&capacity, "capacity", 100, "Capacity percentage (0-100)")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Hourly rate")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// shortID trims UUIDs for display; seeded fixture ids pass through.
func shortID(id string) string {
	if len(id) > 8 && strings.Count(id, "-") == 4 {
		return id[:8]
	}
	return id
}

func splitSkills(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func newResourceListCmd(app *App) *cobra.Command {
	var department, skill, availability string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := domain.ResourceFilter{
				Department:   department,
				Skill:        skill,
				Availability: domain.AvailabilityBucket(availability),
			}
			resources, err := app.Resources.List(context.Background(), filter)
			if err != nil {
				return err
			}
			if len(resources) == 0 {
				fmt.Println(i18n.T(app.Lang, "resources.empty"))
				return nil
			}

			headers := []string{
				i18n.T(app.Lang, "resources.name"),
				i18n.T(app.Lang, "resources.role"),
				i18n.T(app.Lang, "resources.department"),
				i18n.T(app.Lang, "resources.capacity"),
			}
			rows := make([][]string, 0, len(resources))
			for _, r := range resources {
				rows = append(rows, []string{
					r.Name, r.Role, r.Department,
					formatter.Percent(app.Lang, r.Capacity),
				})
			}
			fmt.Println(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&department, "department", "", "Filter by department")
	cmd.Flags().StringVar(&skill, "skill", "", "Filter by skill")
	cmd.Flags().StringVar(&availability, "availability", "", "Filter by availability (available|fully-allocated|over-allocated)")

	return cmd
}

func newResourceInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show resource details, remaining capacity, and allocations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			r, err := app.Resources.GetByID(ctx, args[0])
			if err != nil {
				return err
			}
			available, err := app.Resources.AvailableCapacity(ctx, r.ID)
			if err != nil {
				return err
			}
			allocations, err := app.Resources.ListAllocations(ctx, r.ID)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header(r.Name))
			fmt.Printf("%s %s  %s %s\n",
				formatter.Bold(i18n.T(app.Lang, "resources.role")), r.Role,
				formatter.Bold(i18n.T(app.Lang, "resources.department")), r.Department)
			if len(r.Skills) > 0 {
				fmt.Println(formatter.Dim(strings.Join(r.Skills, ", ")))
			}
			fmt.Printf("%s %s / %s\n",
				formatter.Bold(i18n.T(app.Lang, "resources.available")),
				formatter.Percent(app.Lang, available),
				formatter.Percent(app.Lang, r.Capacity))

			if len(allocations) > 0 {
				fmt.Println()
				headers := []string{
					i18n.T(app.Lang, "resources.project"),
					i18n.T(app.Lang, "resources.allocation"),
					i18n.T(app.Lang, "resources.period"),
				}
				rows := make([][]string, 0, len(allocations))
				for _, a := range allocations {
					rows = append(rows, []string{
						shortID(a.ProjectID),
						formatter.Percent(app.Lang, a.AllocationPercent),
						a.StartDate.Format("2006-01-02") + " ~ " + a.EndDate.Format("2006-01-02"),
					})
				}
				fmt.Println(formatter.RenderTable(headers, rows))
			}
			return nil
		},
	}
}

func newResourceUpdateCmd(app *App) *cobra.Command {
	var name, email, role, department, skills, capacityStr, rateStr string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update resource fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.ResourcePatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("email") {
				patch.Email = &email
			}
			if cmd.Flags().Changed("role") {
				patch.Role = &role
			}
			if cmd.Flags().Changed("department") {
				patch.Department = &department
			}
			if cmd.Flags().Changed("skills") {
				list := splitSkills(skills)
				patch.Skills = &list
			}
			if cmd.Flags().Changed("capacity") {
				v, err := strconv.ParseFloat(capacityStr, 64)
				if err != nil {
					return fmt.Errorf("invalid capacity %q: %w", capacityStr, err)
				}
				patch.Capacity = &v
			}
			if cmd.Flags().Changed("rate") {
				v, err := strconv.ParseFloat(rateStr, 64)
				if err != nil {
					return fmt.Errorf("invalid rate %q: %w", rateStr, err)
				}
				patch.HourlyRate = &v
			}

			r, err := app.Resources.Update(context.Background(), args[0], patch)
			if err != nil {
				return err
			}
			fmt.Printf("Updated resource %s\n", r.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&email, "email", "", "New email")
	cmd.Flags().StringVar(&role, "role", "", "New role")
	cmd.Flags().StringVar(&department, "department", "", "New department")
	cmd.Flags().StringVar(&skills, "skills", "", "Comma-separated skills (replaces the list)")
	cmd.Flags().StringVar(&capacityStr, "capacity", "", "Capacity percentage")
	cmd.Flags().StringVar(&rateStr, "rate", "", "Hourly rate")

	return cmd
}

func newResourceRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a resource and its allocations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Resources.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed resource %s\n", args[0])
			return nil
		},
	}
}

func newResourceLoadsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "loads",
		Short: "Show current allocation load per resource",
		RunE: func(cmd *cobra.Command, args []string) error {
			loads, err := app.Dashboard.ResourceLoads(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatResourceLoads(app.Lang, loads))
			return nil
		},
	}
}
