package store

import "github.com/saintgo7/web-abada-pamout/internal/domain"

func (s *Store) SetAllocations(allocations []domain.ResourceAllocation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allocations = append([]domain.ResourceAllocation(nil), allocations...)
}

func (s *Store) AddAllocation(a domain.ResourceAllocation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allocations = append(s.allocations, a)
}

func (s *Store) UpdateAllocation(id string, patch domain.AllocationPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.allocations {
		if s.allocations[i].ID != id {
			continue
		}
		a := &s.allocations[i]
		if patch.ResourceID != nil {
			a.ResourceID = *patch.ResourceID
		}
		if patch.ProjectID != nil {
			a.ProjectID = *patch.ProjectID
		}
		if patch.TaskID != nil {
			a.TaskID = *patch.TaskID
		}
		if patch.AllocationPercent != nil {
			a.AllocationPercent = *patch.AllocationPercent
		}
		if patch.StartDate != nil {
			a.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			a.EndDate = *patch.EndDate
		}
		a.UpdatedAt = s.now()
		return
	}
}

func (s *Store) DeleteAllocation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.allocations[:0]
	for _, a := range s.allocations {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.allocations = kept
}

func (s *Store) AllocationByID(id string) (domain.ResourceAllocation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.allocations {
		if a.ID == id {
			return a, true
		}
	}
	return domain.ResourceAllocation{}, false
}

func (s *Store) Allocations() []domain.ResourceAllocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ResourceAllocation(nil), s.allocations...)
}

// AllocationsByResource returns every allocation for the resource, with
// no date-window filtering: allocations outside today's date count too.
func (s *Store) AllocationsByResource(resourceID string) []domain.ResourceAllocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.ResourceAllocation
	for _, a := range s.allocations {
		if a.ResourceID == resourceID {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) AllocationsByProject(projectID string) []domain.ResourceAllocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.ResourceAllocation
	for _, a := range s.allocations {
		if a.ProjectID == projectID {
			out = append(out, a)
		}
	}
	return out
}
