package store

import "github.com/saintgo7/web-abada-pamout/internal/domain"

// SetPrograms replaces the whole program collection. Used at seeding.
func (s *Store) SetPrograms(programs []domain.Program) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.programs = append([]domain.Program(nil), programs...)
}

func (s *Store) AddProgram(p domain.Program) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.programs = append(s.programs, p)
}

// UpdateProgram merges non-nil patch fields into the matching program
// and stamps UpdatedAt. Silent no-op when the id is not found.
func (s *Store) UpdateProgram(id string, patch domain.ProgramPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.programs {
		if s.programs[i].ID != id {
			continue
		}
		p := &s.programs[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.StartDate != nil {
			p.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			p.EndDate = *patch.EndDate
		}
		if patch.Budget != nil {
			p.Budget = *patch.Budget
		}
		if patch.Spent != nil {
			p.Spent = *patch.Spent
		}
		if patch.Progress != nil {
			p.Progress = *patch.Progress
		}
		if patch.OwnerID != nil {
			p.OwnerID = *patch.OwnerID
		}
		p.UpdatedAt = s.now()
		return
	}
}

// DeleteProgram removes the program and cascades to its projects, and
// through them to tasks, allocations, budgets, risks and milestones.
// The whole cascade happens under one lock.
func (s *Store) DeleteProgram(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.programs[:0]
	for _, p := range s.programs {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.programs = kept

	var doomed []string
	remaining := s.projects[:0]
	for _, p := range s.projects {
		if p.ProgramID == id {
			doomed = append(doomed, p.ID)
		} else {
			remaining = append(remaining, p)
		}
	}
	s.projects = remaining

	for _, projectID := range doomed {
		s.deleteProjectChildren(projectID)
	}
}

// ProgramByID returns the program and true, or a zero value and false.
// Never an error: absence is an expected outcome.
func (s *Store) ProgramByID(id string) (domain.Program, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.programs {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Program{}, false
}

// Programs returns all programs in insertion order.
func (s *Store) Programs() []domain.Program {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Program(nil), s.programs...)
}

// FilterPrograms returns programs matching every set criterion. The
// date range matches programs whose whole span lies inside it.
func (s *Store) FilterPrograms(f domain.ProgramFilter) []domain.Program {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Program
	for _, p := range s.programs {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.OwnerID != "" && p.OwnerID != f.OwnerID {
			continue
		}
		if f.DateRange != nil {
			if p.StartDate.Before(f.DateRange.Start) || p.EndDate.After(f.DateRange.End) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}
