package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/saintgo7/web-abada-pamout/internal/cli/formatter"
	"github.com/saintgo7/web-abada-pamout/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks within projects",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskUpdateCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var name, description, project, priority, assignee, start, end, dependsOn string
	var lagDays int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task under a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := parseDate(start, "start")
			if err != nil {
				return err
			}
			endDate, err := parseDate(end, "end")
			if err != nil {
				return err
			}

			t := &domain.Task{
				Name:        name,
				Description: description,
				ProjectID:   project,
				Priority:    domain.Priority(priority),
				AssigneeID:  assignee,
				StartDate:   startDate,
				EndDate:     endDate,
			}
			if dependsOn != "" {
				t.Dependencies = []domain.TaskDependency{{
					DependsOnTaskID: dependsOn,
					Type:            domain.FinishToStart,
					LagDays:         lagDays,
				}}
			}
			if err := app.Projects.CreateTask(context.Background(), t); err != nil {
				return err
			}

			fmt.Printf("Created task %s [%s]\n", t.Name, t.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&project, "project", "", "Parent project ID")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high|critical)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee resource ID")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dependsOn, "depends-on", "", "Predecessor task ID")
	cmd.Flags().IntVar(&lagDays, "lag", 0, "Dependency lag in days (negative for lead)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks of a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Projects.ListTasks(context.Background(), project)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatTaskList(app.Lang, tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var name, status, priority, assignee, progressStr string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update task fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.TaskPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("status") {
				if !domain.ValidTaskStatuses[status] {
					return fmt.Errorf("invalid status %q", status)
				}
				s := domain.TaskStatus(status)
				patch.Status = &s
			}
			if cmd.Flags().Changed("priority") {
				if !domain.ValidPriorities[priority] {
					return fmt.Errorf("invalid priority %q", priority)
				}
				pr := domain.Priority(priority)
				patch.Priority = &pr
			}
			if cmd.Flags().Changed("assignee") {
				patch.AssigneeID = &assignee
			}
			if cmd.Flags().Changed("progress") {
				pct, err := strconv.ParseFloat(progressStr, 64)
				if err != nil {
					return fmt.Errorf("invalid progress %q: %w", progressStr, err)
				}
				patch.Progress = &pct
			}

			t, err := app.Projects.UpdateTask(context.Background(), args[0], patch)
			if err != nil {
				return err
			}
			fmt.Printf("Updated task %s\n", t.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&status, "status", "", "New status")
	cmd.Flags().StringVar(&priority, "priority", "", "New priority")
	cmd.Flags().StringVar(&assignee, "assignee", "", "New assignee resource ID")
	cmd.Flags().StringVar(&progressStr, "progress", "", "Progress percentage")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Projects.DeleteTask(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed task %s\n", args[0])
			return nil
		},
	}
}
