// Package metrics computes derived portfolio aggregates from a store
// snapshot. Everything here is a pure function: no caching, recomputed
// on every call, with every division guarded so a zero denominator
// yields 0 rather than NaN or Inf.
package metrics

import (
	"math"

	"github.com/saintgo7/web-abada-pamout/internal/domain"
)

// LoadStatus classifies a resource by its total allocated percentage.
type LoadStatus string

const (
	// LoadAvailable means total allocation is below 80%.
	LoadAvailable LoadStatus = "available"
	// LoadWarning means total allocation is in the 80-100% band.
	LoadWarning LoadStatus = "warning"
	// LoadOverAllocated means total allocation exceeds 100%.
	LoadOverAllocated LoadStatus = "over-allocated"
)

// ResourceLoad is the per-resource utilization view.
type ResourceLoad struct {
	Resource  domain.Resource
	Allocated float64 // sum of allocation percentages
	Available float64 // capacity minus allocated, may be negative
	Status    LoadStatus
}

// ResourceLoads computes the allocation sum for each resource across
// all of its allocations, with no date-window filtering.
func ResourceLoads(resources []domain.Resource, allocations []domain.ResourceAllocation) []ResourceLoad {
	byResource := make(map[string]float64, len(resources))
	for _, a := range allocations {
		byResource[a.ResourceID] += a.AllocationPercent
	}

	loads := make([]ResourceLoad, 0, len(resources))
	for _, r := range resources {
		allocated := byResource[r.ID]
		loads = append(loads, ResourceLoad{
			Resource:  r,
			Allocated: allocated,
			Available: r.Capacity - allocated,
			Status:    classifyLoad(allocated),
		})
	}
	return loads
}

func classifyLoad(allocated float64) LoadStatus {
	switch {
	case allocated > 100:
		return LoadOverAllocated
	case allocated >= 80:
		return LoadWarning
	default:
		return LoadAvailable
	}
}

// AggregateUtilization is the portfolio-wide utilization percentage:
// round(total allocated / total capacity x 100). Zero capacity yields 0.
func AggregateUtilization(resources []domain.Resource, allocations []domain.ResourceAllocation) float64 {
	var totalCapacity float64
	for _, r := range resources {
		totalCapacity += r.Capacity
	}
	if totalCapacity == 0 {
		return 0
	}
	var totalAllocated float64
	for _, a := range allocations {
		totalAllocated += a.AllocationPercent
	}
	return math.Round(totalAllocated / totalCapacity * 100)
}

// AverageUtilization is the mean of per-resource utilization ratios
// (allocated/capacity), as shown on the resource allocator screen.
// Zero-capacity resources contribute 0.
func AverageUtilization(resources []domain.Resource, allocations []domain.ResourceAllocation) float64 {
	if len(resources) == 0 {
		return 0
	}
	loads := ResourceLoads(resources, allocations)
	var sum float64
	for _, l := range loads {
		if l.Resource.Capacity > 0 {
			sum += l.Allocated / l.Resource.Capacity * 100
		}
	}
	return sum / float64(len(resources))
}
