package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/saintgo7/web-abada-pamout/internal/domain"
	"github.com/saintgo7/web-abada-pamout/internal/store"
)

type projectService struct {
	store *store.Store
}

func NewProjectService(st *store.Store) ProjectService {
	return &projectService{store: st}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, ok := s.store.ProgramByID(p.ProgramID); !ok {
		return fmt.Errorf("program %s: %w", p.ProgramID, ErrMissingParent)
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.ProjectNotStarted
	}
	if p.Priority == "" {
		p.Priority = domain.PriorityMedium
	}
	s.store.AddProject(*p)
	return nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	p, ok := s.store.ProjectByID(id)
	if !ok {
		return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	return &p, nil
}

func (s *projectService) List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	return s.store.FilterProjects(filter), nil
}

func (s *projectService) ListByProgram(ctx context.Context, programID string) ([]domain.Project, error) {
	return s.store.ProjectsByProgram(programID), nil
}

func (s *projectService) Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	if _, ok := s.store.ProjectByID(id); !ok {
		return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	s.store.UpdateProject(id, patch)
	p, _ := s.store.ProjectByID(id)
	return &p, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	if _, ok := s.store.ProjectByID(id); !ok {
		return fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	s.store.DeleteProject(id)
	return nil
}

func (s *projectService) CreateTask(ctx context.Context, t *domain.Task) error {
	if t.Name == "" {
		return fmt.Errorf("task name is required")
	}
	if _, ok := s.store.ProjectByID(t.ProjectID); !ok {
		return fmt.Errorf("project %s: %w", t.ProjectID, ErrMissingParent)
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Status == "" {
		t.Status = domain.TaskTodo
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	for i := range t.Dependencies {
		if t.Dependencies[i].ID == "" {
			t.Dependencies[i].ID = uuid.New().String()
		}
		t.Dependencies[i].TaskID = t.ID
	}
	s.store.AddTask(*t)
	return nil
}

func (s *projectService) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	t, ok := s.store.TaskByID(id)
	if !ok {
		return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return &t, nil
}

func (s *projectService) ListTasks(ctx context.Context, projectID string) ([]domain.Task, error) {
	return s.store.TasksByProject(projectID), nil
}

func (s *projectService) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	if _, ok := s.store.TaskByID(id); !ok {
		return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	s.store.UpdateTask(id, patch)
	t, _ := s.store.TaskByID(id)
	return &t, nil
}

func (s *projectService) DeleteTask(ctx context.Context, id string) error {
	if _, ok := s.store.TaskByID(id); !ok {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	s.store.DeleteTask(id)
	return nil
}
