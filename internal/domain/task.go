package domain

import "time"

// Task is a unit of work inside a project. Dependencies are recorded
// but not evaluated: no constraint propagation or critical-path logic
// consumes them.
type Task struct {
	ID           string
	ProjectID    string
	Name         string
	Description  string
	Status       TaskStatus
	StartDate    time.Time
	EndDate      time.Time
	Progress     float64 // 0-100
	Priority     Priority
	AssigneeID   string // optional Resource reference, empty when unassigned
	Dependencies []TaskDependency
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TaskDependency links a task to a predecessor. LagDays may be negative
// (a lead). Stored as inert data.
type TaskDependency struct {
	ID              string
	TaskID          string
	DependsOnTaskID string
	Type            DependencyType
	LagDays         int
}

type TaskPatch struct {
	Name         *string
	Description  *string
	Status       *TaskStatus
	StartDate    *time.Time
	EndDate      *time.Time
	Progress     *float64
	Priority     *Priority
	AssigneeID   *string
	Dependencies *[]TaskDependency
}
