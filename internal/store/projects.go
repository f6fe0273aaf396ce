package store

import "github.com/saintgo7/web-abada-pamout/internal/domain"

func (s *Store) SetProjects(projects []domain.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append([]domain.Project(nil), projects...)
}

func (s *Store) AddProject(p domain.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append(s.projects, p)
}

func (s *Store) UpdateProject(id string, patch domain.ProjectPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		p := &s.projects[i]
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
		if patch.Priority != nil {
			p.Priority = *patch.Priority
		}
		if patch.ManagerID != nil {
			p.ManagerID = *patch.ManagerID
		}
		p.UpdatedAt = s.now()
		return
	}
}

// DeleteProject removes the project and cascades to its tasks,
// allocations, budgets, risks and milestones in one atomic step.
func (s *Store) DeleteProject(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.projects[:0]
	for _, p := range s.projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.projects = kept
	s.deleteProjectChildren(id)
}

// deleteProjectChildren drops every child record of a project. Caller
// must hold the write lock.
func (s *Store) deleteProjectChildren(projectID string) {
	tasks := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ProjectID != projectID {
			tasks = append(tasks, t)
		}
	}
	s.tasks = tasks

	allocations := s.allocations[:0]
	for _, a := range s.allocations {
		if a.ProjectID != projectID {
			allocations = append(allocations, a)
		}
	}
	s.allocations = allocations

	budgets := s.budgets[:0]
	for _, b := range s.budgets {
		if b.ProjectID != projectID {
			budgets = append(budgets, b)
		}
	}
	s.budgets = budgets

	risks := s.risks[:0]
	for _, r := range s.risks {
		if r.ProjectID != projectID {
			risks = append(risks, r)
		}
	}
	s.risks = risks

	milestones := s.milestones[:0]
	for _, m := range s.milestones {
		if m.ProjectID != projectID {
			milestones = append(milestones, m)
		}
	}
	s.milestones = milestones
}

func (s *Store) ProjectByID(id string) (domain.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Project{}, false
}

func (s *Store) Projects() []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Project(nil), s.projects...)
}

// ProjectsByProgram returns the program's projects in insertion order.
func (s *Store) ProjectsByProgram(programID string) []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Project
	for _, p := range s.projects {
		if p.ProgramID == programID {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) FilterProjects(f domain.ProjectFilter) []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Project
	for _, p := range s.projects {
		if f.ProgramID != "" && p.ProgramID != f.ProgramID {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Priority != "" && p.Priority != f.Priority {
			continue
		}
		if f.ManagerID != "" && p.ManagerID != f.ManagerID {
			continue
		}
		out = append(out, p)
	}
	return out
}
