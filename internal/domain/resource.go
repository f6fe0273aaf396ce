package domain

import (
	"fmt"
	"time"
)

// Resource is a staff member with finite allocation capacity, expressed
// as a percentage of full-time availability.
type Resource struct {
	ID         string
	Name       string
	Email      string
	Role       string
	Department string
	Skills     []string
	Capacity   float64 // 0-100
	HourlyRate float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r *Resource) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("resource name is required")
	}
	if r.Capacity < 0 || r.Capacity > 100 {
		return fmt.Errorf("capacity %.0f%% is outside 0-100", r.Capacity)
	}
	return nil
}

// HasSkill reports whether the resource lists the given skill.
func (r *Resource) HasSkill(skill string) bool {
	for _, s := range r.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

type ResourcePatch struct {
	Name       *string
	Email      *string
	Role       *string
	Department *string
	Skills     *[]string
	Capacity   *float64
	HourlyRate *float64
}

// ResourceAllocation assigns a resource to a project (and optionally a
// task) at a percentage of capacity for a date range. Many-to-many join
// between resources and projects.
type ResourceAllocation struct {
	ID                string
	ResourceID        string
	ProjectID         string
	TaskID            string // optional, empty when project-level
	AllocationPercent float64
	StartDate         time.Time
	EndDate           time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type AllocationPatch struct {
	ResourceID        *string
	ProjectID         *string
	TaskID            *string
	AllocationPercent *float64
	StartDate         *time.Time
	EndDate           *time.Time
}
