package store

import "github.com/saintgo7/web-abada-pamout/internal/domain"

func (s *Store) SetResources(resources []domain.Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources = make([]domain.Resource, 0, len(resources))
	for _, r := range resources {
		s.resources = append(s.resources, copyResource(r))
	}
}

func (s *Store) AddResource(r domain.Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources = append(s.resources, copyResource(r))
}

func (s *Store) UpdateResource(id string, patch domain.ResourcePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.resources {
		if s.resources[i].ID != id {
			continue
		}
		r := &s.resources[i]
		if patch.Name != nil {
			r.Name = *patch.Name
		}
		if patch.Email != nil {
			r.Email = *patch.Email
		}
		if patch.Role != nil {
			r.Role = *patch.Role
		}
		if patch.Department != nil {
			r.Department = *patch.Department
		}
		if patch.Skills != nil {
			r.Skills = append([]string(nil), (*patch.Skills)...)
		}
		if patch.Capacity != nil {
			r.Capacity = *patch.Capacity
		}
		if patch.HourlyRate != nil {
			r.HourlyRate = *patch.HourlyRate
		}
		r.UpdatedAt = s.now()
		return
	}
}

// DeleteResource removes the resource and cascades to its allocations.
func (s *Store) DeleteResource(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.resources[:0]
	for _, r := range s.resources {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.resources = kept

	allocations := s.allocations[:0]
	for _, a := range s.allocations {
		if a.ResourceID != id {
			allocations = append(allocations, a)
		}
	}
	s.allocations = allocations
}

func (s *Store) ResourceByID(id string) (domain.Resource, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.resources {
		if r.ID == id {
			return copyResource(r), true
		}
	}
	return domain.Resource{}, false
}

func (s *Store) Resources() []domain.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Resource, 0, len(s.resources))
	for _, r := range s.resources {
		out = append(out, copyResource(r))
	}
	return out
}

// AvailableCapacity returns capacity minus the sum of the resource's
// allocation percentages. Negative when over-allocated; 0 for an
// unknown resource.
func (s *Store) AvailableCapacity(resourceID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.availableCapacityLocked(resourceID)
}

func (s *Store) availableCapacityLocked(resourceID string) float64 {
	var res *domain.Resource
	for i := range s.resources {
		if s.resources[i].ID == resourceID {
			res = &s.resources[i]
			break
		}
	}
	if res == nil {
		return 0
	}
	var allocated float64
	for _, a := range s.allocations {
		if a.ResourceID == resourceID {
			allocated += a.AllocationPercent
		}
	}
	return res.Capacity - allocated
}

// FilterResources returns resources matching every set criterion. The
// availability buckets follow the allocator UI: available when more
// than 20% of capacity remains, fully-allocated when (0, 20] remains,
// over-allocated when nothing remains.
func (s *Store) FilterResources(f domain.ResourceFilter) []domain.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Resource
	for _, r := range s.resources {
		if f.Department != "" && r.Department != f.Department {
			continue
		}
		if f.Skill != "" && !r.HasSkill(f.Skill) {
			continue
		}
		if f.Availability != "" {
			available := s.availableCapacityLocked(r.ID)
			var bucket domain.AvailabilityBucket
			switch {
			case available > 20:
				bucket = domain.Available
			case available > 0:
				bucket = domain.FullyAllocated
			default:
				bucket = domain.OverAllocated
			}
			if bucket != f.Availability {
				continue
			}
		}
		out = append(out, copyResource(r))
	}
	return out
}
