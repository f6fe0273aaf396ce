package domain

import "time"

// AvailabilityBucket classifies a resource by remaining capacity.
type AvailabilityBucket string

const (
	// Available means more than 20% of capacity is unallocated.
	Available AvailabilityBucket = "available"
	// FullyAllocated means remaining capacity is in (0, 20].
	FullyAllocated AvailabilityBucket = "fully-allocated"
	// OverAllocated means allocations meet or exceed capacity.
	OverAllocated AvailabilityBucket = "over-allocated"
)

// DateRange bounds a filter to programs whose whole span falls inside it.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ProgramFilter narrows program queries. Zero-valued fields are not
// filtered on; set fields are ANDed.
type ProgramFilter struct {
	Status    ProgramStatus
	OwnerID   string
	DateRange *DateRange
}

type ProjectFilter struct {
	ProgramID string
	Status    ProjectStatus
	Priority  Priority
	ManagerID string
}

type ResourceFilter struct {
	Department   string
	Skill        string
	Availability AvailabilityBucket
}
