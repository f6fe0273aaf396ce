package service

import (
	"context"

	"github.com/saintgo7/web-abada-pamout/internal/domain"
	"github.com/saintgo7/web-abada-pamout/internal/metrics"
	"github.com/saintgo7/web-abada-pamout/internal/schedule"
)

type ProgramService interface {
	Create(ctx context.Context, p *domain.Program) error
	GetByID(ctx context.Context, id string) (*domain.Program, error)
	List(ctx context.Context, filter domain.ProgramFilter) ([]domain.Program, error)
	Update(ctx context.Context, id string, patch domain.ProgramPatch) (*domain.Program, error)
	Delete(ctx context.Context, id string) error
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error)
	ListByProgram(ctx context.Context, programID string) ([]domain.Project, error)
	Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error)
	Delete(ctx context.Context, id string) error

	CreateTask(ctx context.Context, t *domain.Task) error
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	ListTasks(ctx context.Context, projectID string) ([]domain.Task, error)
	UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

type ResourceService interface {
	Create(ctx context.Context, r *domain.Resource) error
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	List(ctx context.Context, filter domain.ResourceFilter) ([]domain.Resource, error)
	Update(ctx context.Context, id string, patch domain.ResourcePatch) (*domain.Resource, error)
	Delete(ctx context.Context, id string) error
	AvailableCapacity(ctx context.Context, id string) (float64, error)

	Allocate(ctx context.Context, a *domain.ResourceAllocation) error
	ListAllocations(ctx context.Context, resourceID string) ([]domain.ResourceAllocation, error)
	UpdateAllocation(ctx context.Context, id string, patch domain.AllocationPatch) (*domain.ResourceAllocation, error)
	Deallocate(ctx context.Context, id string) error
}

// TrackingService manages the per-project tracking records: budget
// lines, risks, and milestones.
type TrackingService interface {
	AddBudget(ctx context.Context, b *domain.Budget) error
	ListBudgets(ctx context.Context, projectID string) ([]domain.Budget, error)
	UpdateBudget(ctx context.Context, id string, patch domain.BudgetPatch) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, id string) error

	AddRisk(ctx context.Context, r *domain.Risk) error
	ListRisks(ctx context.Context, projectID string) ([]domain.Risk, error)
	UpdateRisk(ctx context.Context, id string, patch domain.RiskPatch) (*domain.Risk, error)
	DeleteRisk(ctx context.Context, id string) error

	AddMilestone(ctx context.Context, m *domain.Milestone) error
	ListMilestones(ctx context.Context, projectID string) ([]domain.Milestone, error)
	UpdateMilestone(ctx context.Context, id string, patch domain.MilestonePatch) (*domain.Milestone, error)
	DeleteMilestone(ctx context.Context, id string) error
}

// ScheduleRow is one project bar positioned inside a schedule window,
// with the project's milestones marked where they fall in view.
type ScheduleRow struct {
	Project domain.Project
	Bar     schedule.BarPosition
	Visible bool
	Markers []ScheduleMarker
}

type ScheduleMarker struct {
	Milestone domain.Milestone
	Left      float64
}

// ScheduleBoard is a fully laid out schedule view for one window.
type ScheduleBoard struct {
	Window schedule.Window
	Zoom   schedule.Zoom
	Rows   []ScheduleRow
}

// DashboardService produces the portfolio-level read models: summary
// metrics, alerts, resource loads, and the schedule layout.
type DashboardService interface {
	Summary(ctx context.Context) (*metrics.Summary, error)
	Alerts(ctx context.Context, max int) ([]metrics.Alert, error)
	ResourceLoads(ctx context.Context) ([]metrics.ResourceLoad, error)
	Board(ctx context.Context, zoom schedule.Zoom, anchor string) (*ScheduleBoard, error)
}
