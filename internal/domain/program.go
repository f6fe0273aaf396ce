package domain

import (
	"fmt"
	"time"
)

// Program is a top-level portfolio grouping of projects with its own
// budget and timeline. Spent and Budget are independent fields: spending
// past the budget is a derived condition, never rejected at write time.
type Program struct {
	ID          string
	Name        string
	Description string
	Status      ProgramStatus
	StartDate   time.Time
	EndDate     time.Time
	Budget      float64
	Spent       float64
	Progress    float64 // 0-100
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the form-boundary rules for a program: name and
// description are required and the end date must not precede the start.
func (p *Program) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("program name is required")
	}
	if p.Description == "" {
		return fmt.Errorf("program description is required")
	}
	if p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("end date %s is before start date %s",
			p.EndDate.Format("2006-01-02"), p.StartDate.Format("2006-01-02"))
	}
	return nil
}

// DurationDays returns the total span of the program in whole days,
// never less than 1.
func (p *Program) DurationDays() int {
	d := int(p.EndDate.Sub(p.StartDate).Hours() / 24)
	if d < 1 {
		return 1
	}
	return d
}

// ProgramPatch carries partial updates for a program. Nil fields are
// left untouched by the store.
type ProgramPatch struct {
	Name        *string
	Description *string
	Status      *ProgramStatus
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *float64
	Spent       *float64
	Progress    *float64
	OwnerID     *string
}
