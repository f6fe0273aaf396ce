package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/saintgo7/web-abada-pamout/internal/domain"
	"github.com/saintgo7/web-abada-pamout/internal/store"
)

type trackingService struct {
	store *store.Store
}

func NewTrackingService(st *store.Store) TrackingService {
	return &trackingService{store: st}
}

func (s *trackingService) requireProject(id string) error {
	if _, ok := s.store.ProjectByID(id); !ok {
		return fmt.Errorf("project %s: %w", id, ErrMissingParent)
	}
	return nil
}

func (s *trackingService) AddBudget(ctx context.Context, b *domain.Budget) error {
	if err := s.requireProject(b.ProjectID); err != nil {
		return err
	}
	if b.Category == "" {
		return fmt.Errorf("budget category is required")
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	s.store.AddBudget(*b)
	return nil
}

func (s *trackingService) ListBudgets(ctx context.Context, projectID string) ([]domain.Budget, error) {
	return s.store.BudgetsByProject(projectID), nil
}

func (s *trackingService) UpdateBudget(ctx context.Context, id string, patch domain.BudgetPatch) (*domain.Budget, error) {
	if _, ok := s.store.BudgetByID(id); !ok {
		return nil, fmt.Errorf("budget %s: %w", id, ErrNotFound)
	}
	s.store.UpdateBudget(id, patch)
	b, _ := s.store.BudgetByID(id)
	return &b, nil
}

func (s *trackingService) DeleteBudget(ctx context.Context, id string) error {
	if _, ok := s.store.BudgetByID(id); !ok {
		return fmt.Errorf("budget %s: %w", id, ErrNotFound)
	}
	s.store.DeleteBudget(id)
	return nil
}

func (s *trackingService) AddRisk(ctx context.Context, r *domain.Risk) error {
	if err := s.requireProject(r.ProjectID); err != nil {
		return err
	}
	if r.Title == "" {
		return fmt.Errorf("risk title is required")
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	if r.Status == "" {
		r.Status = domain.RiskOpen
	}
	s.store.AddRisk(*r)
	return nil
}

func (s *trackingService) ListRisks(ctx context.Context, projectID string) ([]domain.Risk, error) {
	return s.store.RisksByProject(projectID), nil
}

func (s *trackingService) UpdateRisk(ctx context.Context, id string, patch domain.RiskPatch) (*domain.Risk, error) {
	if _, ok := s.store.RiskByID(id); !ok {
		return nil, fmt.Errorf("risk %s: %w", id, ErrNotFound)
	}
	s.store.UpdateRisk(id, patch)
	r, _ := s.store.RiskByID(id)
	return &r, nil
}

func (s *trackingService) DeleteRisk(ctx context.Context, id string) error {
	if _, ok := s.store.RiskByID(id); !ok {
		return fmt.Errorf("risk %s: %w", id, ErrNotFound)
	}
	s.store.DeleteRisk(id)
	return nil
}

func (s *trackingService) AddMilestone(ctx context.Context, m *domain.Milestone) error {
	if err := s.requireProject(m.ProjectID); err != nil {
		return err
	}
	if m.Name == "" {
		return fmt.Errorf("milestone name is required")
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	if m.Status == "" {
		m.Status = domain.MilestonePending
	}
	s.store.AddMilestone(*m)
	return nil
}

func (s *trackingService) ListMilestones(ctx context.Context, projectID string) ([]domain.Milestone, error) {
	return s.store.MilestonesByProject(projectID), nil
}

func (s *trackingService) UpdateMilestone(ctx context.Context, id string, patch domain.MilestonePatch) (*domain.Milestone, error) {
	if _, ok := s.store.MilestoneByID(id); !ok {
		return nil, fmt.Errorf("milestone %s: %w", id, ErrNotFound)
	}
	s.store.UpdateMilestone(id, patch)
	m, _ := s.store.MilestoneByID(id)
	return &m, nil
}

func (s *trackingService) DeleteMilestone(ctx context.Context, id string) error {
	if _, ok := s.store.MilestoneByID(id); !ok {
		return fmt.Errorf("milestone %s: %w", id, ErrNotFound)
	}
	s.store.DeleteMilestone(id)
	return nil
}
