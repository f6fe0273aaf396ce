package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/saintgo7/web-abada-pamout/internal/domain"
	"github.com/saintgo7/web-abada-pamout/internal/store"
)

type resourceService struct {
	store *store.Store
}

func NewResourceService(st *store.Store) ResourceService {
	return &resourceService{store: st}
}

func (s *resourceService) Create(ctx context.Context, r *domain.Resource) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	s.store.AddResource(*r)
	return nil
}

func (s *resourceService) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	r, ok := s.store.ResourceByID(id)
	if !ok {
		return nil, fmt.Errorf("resource %s: %w", id, ErrNotFound)
	}
	return &r, nil
}

func (s *resourceService) List(ctx context.Context, filter domain.ResourceFilter) ([]domain.Resource, error) {
	return s.store.FilterResources(filter), nil
}

func (s *resourceService) Update(ctx context.Context, id string, patch domain.ResourcePatch) (*domain.Resource, error) {
	if _, ok := s.store.ResourceByID(id); !ok {
		return nil, fmt.Errorf("resource %s: %w", id, ErrNotFound)
	}
	s.store.UpdateResource(id, patch)
	r, _ := s.store.ResourceByID(id)
	return &r, nil
}

func (s *resourceService) Delete(ctx context.Context, id string) error {
	if _, ok := s.store.ResourceByID(id); !ok {
		return fmt.Errorf("resource %s: %w", id, ErrNotFound)
	}
	s.store.DeleteResource(id)
	return nil
}

func (s *resourceService) AvailableCapacity(ctx context.Context, id string) (float64, error) {
	if _, ok := s.store.ResourceByID(id); !ok {
		return 0, fmt.Errorf("resource %s: %w", id, ErrNotFound)
	}
	return s.store.AvailableCapacity(id), nil
}

func (s *resourceService) Allocate(ctx context.Context, a *domain.ResourceAllocation) error {
	if _, ok := s.store.ResourceByID(a.ResourceID); !ok {
		return fmt.Errorf("resource %s: %w", a.ResourceID, ErrMissingParent)
	}
	if _, ok := s.store.ProjectByID(a.ProjectID); !ok {
		return fmt.Errorf("project %s: %w", a.ProjectID, ErrMissingParent)
	}
	if a.AllocationPercent <= 0 {
		return fmt.Errorf("allocation percent must be positive")
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	s.store.AddAllocation(*a)
	return nil
}

func (s *resourceService) ListAllocations(ctx context.Context, resourceID string) ([]domain.ResourceAllocation, error) {
	return s.store.AllocationsByResource(resourceID), nil
}

func (s *resourceService) UpdateAllocation(ctx context.Context, id string, patch domain.AllocationPatch) (*domain.ResourceAllocation, error) {
	if _, ok := s.store.AllocationByID(id); !ok {
		return nil, fmt.Errorf("allocation %s: %w", id, ErrNotFound)
	}
	s.store.UpdateAllocation(id, patch)
	a, _ := s.store.AllocationByID(id)
	return &a, nil
}

func (s *resourceService) Deallocate(ctx context.Context, id string) error {
	if _, ok := s.store.AllocationByID(id); !ok {
		return fmt.Errorf("allocation %s: %w", id, ErrNotFound)
	}
	s.store.DeleteAllocation(id)
	return nil
}
