package domain

import (
	"fmt"
	"time"
)

// Project is a funded initiative under exactly one program, decomposed
// into tasks. ManagerID references a Resource.
type Project struct {
	ID          string
	ProgramID   string
	Name        string
	Description string
	Status      ProjectStatus
	StartDate   time.Time
	EndDate     time.Time
	Budget      float64
	Spent       float64
	Progress    float64 // 0-100
	Priority    Priority
	ManagerID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if p.ProgramID == "" {
		return fmt.Errorf("project must belong to a program")
	}
	if p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("end date %s is before start date %s",
			p.EndDate.Format("2006-01-02"), p.StartDate.Format("2006-01-02"))
	}
	return nil
}

// IsActive reports whether the project counts toward the dashboard's
// active-projects KPI.
func (p *Project) IsActive() bool {
	return p.Status == ProjectInProgress || p.Status == ProjectNotStarted
}

type ProjectPatch struct {
	Name        *string
	Description *string
	Status      *ProjectStatus
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *float64
	Spent       *float64
	Progress    *float64
	Priority    *Priority
	ManagerID   *string
}
