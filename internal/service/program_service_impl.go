package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/saintgo7/web-abada-pamout/internal/domain"
	"github.com/saintgo7/web-abada-pamout/internal/store"
)

type programService struct {
	store *store.Store
}

func NewProgramService(st *store.Store) ProgramService {
	return &programService{store: st}
}

func (s *programService) Create(ctx context.Context, p *domain.Program) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.ProgramPlanning
	}
	s.store.AddProgram(*p)
	return nil
}

func (s *programService) GetByID(ctx context.Context, id string) (*domain.Program, error) {
	p, ok := s.store.ProgramByID(id)
	if !ok {
		return nil, fmt.Errorf("program %s: %w", id, ErrNotFound)
	}
	return &p, nil
}

func (s *programService) List(ctx context.Context, filter domain.ProgramFilter) ([]domain.Program, error) {
	return s.store.FilterPrograms(filter), nil
}

func (s *programService) Update(ctx context.Context, id string, patch domain.ProgramPatch) (*domain.Program, error) {
	if _, ok := s.store.ProgramByID(id); !ok {
		return nil, fmt.Errorf("program %s: %w", id, ErrNotFound)
	}
	s.store.UpdateProgram(id, patch)
	p, _ := s.store.ProgramByID(id)
	return &p, nil
}

func (s *programService) Delete(ctx context.Context, id string) error {
	if _, ok := s.store.ProgramByID(id); !ok {
		return fmt.Errorf("program %s: %w", id, ErrNotFound)
	}
	s.store.DeleteProgram(id)
	return nil
}
