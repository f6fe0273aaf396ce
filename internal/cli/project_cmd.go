package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/saintgo7/web-abada-pamout/internal/cli/formatter"
	"github.com/saintgo7/web-abada-pamout/internal/domain"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectUpdateCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, description, program, priority, manager, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a project under a program",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := parseDate(start, "start")
			if err != nil {
				return err
			}
			endDate, err := parseDate(end, "end")
			if err != nil {
				return err
			}

			p := &domain.Project{
				Name:        name,
				Description: description,
				ProgramID:   program,
				Priority:    domain.Priority(priority),
				ManagerID:   manager,
				StartDate:   startDate,
				EndDate:     endDate,
			}
			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}

			fmt.Printf("Created project %s [%s]\n", p.Name, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&description, "description", "", "Project description")
	cmd.Flags().StringVar(&program, "program", "", "Parent program ID")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high|critical)")
	cmd.Flags().StringVar(&manager, "manager", "", "Manager resource ID")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("program")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var program, status, priority, manager string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := domain.ProjectFilter{
				ProgramID: program,
				Status:    domain.ProjectStatus(status),
				Priority:  domain.Priority(priority),
				ManagerID: manager,
			}
			projects, err := app.Projects.List(context.Background(), filter)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatProjectList(app.Lang, projects))
			return nil
		},
	}

	cmd.Flags().StringVar(&program, "program", "", "Filter by program ID")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status")
	cmd.Flags().StringVar(&priority, "priority", "", "Filter by priority")
	cmd.Flags().StringVar(&manager, "manager", "", "Filter by manager ID")

	return cmd
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show project details and tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Projects.GetByID(ctx, args[0])
			if err != nil {
				return err
			}
			tasks, err := app.Projects.ListTasks(ctx, p.ID)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header(p.Name))
			fmt.Println(formatter.Dim(p.Description))
			fmt.Printf("%s %s  %s %s  %s\n",
				formatter.Bold("Status"), string(p.Status),
				formatter.Bold("Priority"), string(p.Priority),
				formatter.RenderProgress(p.Progress, 20))
			if len(tasks) > 0 {
				fmt.Println()
				fmt.Println(formatter.FormatTaskList(app.Lang, tasks))
			}
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var name, status, priority, progressStr string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update project fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.ProjectPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("status") {
				if !domain.ValidProjectStatuses[status] {
					return fmt.Errorf("invalid status %q", status)
				}
				s := domain.ProjectStatus(status)
				patch.Status = &s
			}
			if cmd.Flags().Changed("priority") {
				if !domain.ValidPriorities[priority] {
					return fmt.Errorf("invalid priority %q", priority)
				}
				pr := domain.Priority(priority)
				patch.Priority = &pr
			}
			if cmd.Flags().Changed("progress") {
				pct, err := strconv.ParseFloat(progressStr, 64)
				if err != nil {
					return fmt.Errorf("invalid progress %q: %w", progressStr, err)
				}
				patch.Progress = &pct
			}

			p, err := app.Projects.Update(context.Background(), args[0], patch)
			if err != nil {
				return err
			}
			fmt.Printf("Updated project %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&status, "status", "", "New status")
	cmd.Flags().StringVar(&priority, "priority", "", "New priority")
	cmd.Flags().StringVar(&progressStr, "progress", "", "Progress percentage")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a project and its tasks, allocations and tracking records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Projects.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed project %s\n", args[0])
			return nil
		},
	}
}
