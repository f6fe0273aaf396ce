// Package testutil provides entity builders for tests. Builders fill in
// sane defaults and accept option funcs for the fields a test cares about.
package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/saintgo7/web-abada-pamout/internal/domain"
)

var idCounter atomic.Int64

func nextID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, idCounter.Add(1))
}

// Base date for relative test dates: a fixed Wednesday.
var Anchor = time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC)

// Day returns Anchor shifted by the given number of days.
func Day(offset int) time.Time {
	return Anchor.AddDate(0, 0, offset)
}

type ProgramOption func(*domain.Program)

func WithProgramStatus(s domain.ProgramStatus) ProgramOption {
	return func(p *domain.Program) { p.Status = s }
}

func WithProgramDates(start, end time.Time) ProgramOption {
	return func(p *domain.Program) { p.StartDate, p.EndDate = start, end }
}

func WithBudget(budget, spent float64) ProgramOption {
	return func(p *domain.Program) { p.Budget, p.Spent = budget, spent }
}

func WithProgress(pct float64) ProgramOption {
	return func(p *domain.Program) { p.Progress = pct }
}

func WithOwner(ownerID string) ProgramOption {
	return func(p *domain.Program) { p.OwnerID = ownerID }
}

func NewProgram(name string, opts ...ProgramOption) domain.Program {
	p := domain.Program{
		ID:          nextID("prog"),
		Name:        name,
		Description: name + " description",
		Status:      domain.ProgramActive,
		StartDate:   Day(-30),
		EndDate:     Day(60),
		Budget:      1000000,
		Spent:       250000,
		Progress:    40,
		OwnerID:     "user-1",
		CreatedAt:   Anchor,
		UpdatedAt:   Anchor,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) { p.Status = s }
}

func WithPriority(pr domain.Priority) ProjectOption {
	return func(p *domain.Project) { p.Priority = pr }
}

func WithManager(managerID string) ProjectOption {
	return func(p *domain.Project) { p.ManagerID = managerID }
}

func WithProjectDates(start, end time.Time) ProjectOption {
	return func(p *domain.Project) { p.StartDate, p.EndDate = start, end }
}

func NewProject(programID, name string, opts ...ProjectOption) domain.Project {
	p := domain.Project{
		ID:          nextID("proj"),
		ProgramID:   programID,
		Name:        name,
		Description: name + " description",
		Status:      domain.ProjectInProgress,
		StartDate:   Day(-14),
		EndDate:     Day(28),
		Budget:      300000,
		Spent:       90000,
		Progress:    30,
		Priority:    domain.PriorityMedium,
		ManagerID:   "res-1",
		CreatedAt:   Anchor,
		UpdatedAt:   Anchor,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

type TaskOption func(*domain.Task)

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) { t.Status = s }
}

func WithAssignee(resourceID string) TaskOption {
	return func(t *domain.Task) { t.AssigneeID = resourceID }
}

func WithDependency(dependsOn string, typ domain.DependencyType, lagDays int) TaskOption {
	return func(t *domain.Task) {
		t.Dependencies = append(t.Dependencies, domain.TaskDependency{
			ID:              nextID("dep"),
			TaskID:          t.ID,
			DependsOnTaskID: dependsOn,
			Type:            typ,
			LagDays:         lagDays,
		})
	}
}

func NewTask(projectID, name string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:        nextID("task"),
		ProjectID: projectID,
		Name:      name,
		Status:    domain.TaskTodo,
		StartDate: Day(-7),
		EndDate:   Day(7),
		Progress:  0,
		Priority:  domain.PriorityMedium,
		CreatedAt: Anchor,
		UpdatedAt: Anchor,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

type ResourceOption func(*domain.Resource)

func WithCapacity(pct float64) ResourceOption {
	return func(r *domain.Resource) { r.Capacity = pct }
}

func WithDepartment(dept string) ResourceOption {
	return func(r *domain.Resource) { r.Department = dept }
}

func WithSkills(skills ...string) ResourceOption {
	return func(r *domain.Resource) { r.Skills = skills }
}

func NewResource(name string, opts ...ResourceOption) domain.Resource {
	r := domain.Resource{
		ID:         nextID("res"),
		Name:       name,
		Email:      name + "@abada.example",
		Role:       "Engineer",
		Department: "Engineering",
		Skills:     []string{"Go"},
		Capacity:   100,
		HourlyRate: 85,
		CreatedAt:  Anchor,
		UpdatedAt:  Anchor,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

type AllocationOption func(*domain.ResourceAllocation)

func WithPercent(pct float64) AllocationOption {
	return func(a *domain.ResourceAllocation) { a.AllocationPercent = pct }
}

func WithAllocationTask(taskID string) AllocationOption {
	return func(a *domain.ResourceAllocation) { a.TaskID = taskID }
}

func NewAllocation(resourceID, projectID string, opts ...AllocationOption) domain.ResourceAllocation {
	a := domain.ResourceAllocation{
		ID:                nextID("alloc"),
		ResourceID:        resourceID,
		ProjectID:         projectID,
		AllocationPercent: 50,
		StartDate:         Day(-14),
		EndDate:           Day(28),
		CreatedAt:         Anchor,
		UpdatedAt:         Anchor,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

func NewBudget(projectID, category string, planned, actual float64) domain.Budget {
	return domain.Budget{
		ID:            nextID("budget"),
		ProjectID:     projectID,
		Category:      category,
		PlannedAmount: planned,
		ActualAmount:  actual,
		FiscalYear:    2026,
		CreatedAt:     Anchor,
		UpdatedAt:     Anchor,
	}
}

func NewRisk(projectID, title string) domain.Risk {
	return domain.Risk{
		ID:             nextID("risk"),
		ProjectID:      projectID,
		Title:          title,
		Description:    title + " description",
		Probability:    domain.RatingMedium,
		Impact:         domain.RatingHigh,
		MitigationPlan: "Monitor weekly",
		Owner:          "user-1",
		Status:         domain.RiskOpen,
		IdentifiedDate: Day(-10),
		CreatedAt:      Anchor,
		UpdatedAt:      Anchor,
	}
}

type MilestoneOption func(*domain.Milestone)

func WithMilestoneDate(d time.Time) MilestoneOption {
	return func(m *domain.Milestone) { m.Date = d }
}

func WithMilestoneStatus(s domain.MilestoneStatus) MilestoneOption {
	return func(m *domain.Milestone) { m.Status = s }
}

func NewMilestone(projectID, name string, opts ...MilestoneOption) domain.Milestone {
	m := domain.Milestone{
		ID:        nextID("ms"),
		ProjectID: projectID,
		Name:      name,
		Date:      Day(14),
		Status:    domain.MilestonePending,
		CreatedAt: Anchor,
		UpdatedAt: Anchor,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}
