package store

import "github.com/saintgo7/web-abada-pamout/internal/domain"

func (s *Store) SetTasks(tasks []domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		s.tasks = append(s.tasks, copyTask(t))
	}
}

func (s *Store) AddTask(t domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, copyTask(t))
}

func (s *Store) UpdateTask(id string, patch domain.TaskPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := &s.tasks[i]
		if patch.Name != nil {
			t.Name = *patch.Name
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}
		if patch.StartDate != nil {
			t.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			t.EndDate = *patch.EndDate
		}
		if patch.Progress != nil {
			t.Progress = *patch.Progress
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.AssigneeID != nil {
			t.AssigneeID = *patch.AssigneeID
		}
		if patch.Dependencies != nil {
			t.Dependencies = append([]domain.TaskDependency(nil), (*patch.Dependencies)...)
		}
		t.UpdatedAt = s.now()
		return
	}
}

func (s *Store) DeleteTask(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
}

func (s *Store) TaskByID(id string) (domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return copyTask(t), true
		}
	}
	return domain.Task{}, false
}

func (s *Store) Tasks() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, copyTask(t))
	}
	return out
}

func (s *Store) TasksByProject(projectID string) []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Task
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			out = append(out, copyTask(t))
		}
	}
	return out
}
