// Package store holds the in-memory entity collections for a portfolio
// session. Nothing is persisted: the store lives for the process and is
// discarded on exit. Collections keep insertion order, reads return
// copies, and cascade deletes are applied under a single lock so no
// reader ever observes a partially-applied cascade.
package store

import (
	"sync"
	"time"

	"github.com/saintgo7/web-abada-pamout/internal/domain"
)

type Store struct {
	mu sync.RWMutex

	programs    []domain.Program
	projects    []domain.Project
	tasks       []domain.Task
	resources   []domain.Resource
	allocations []domain.ResourceAllocation
	budgets     []domain.Budget
	risks       []domain.Risk
	milestones  []domain.Milestone

	selectedProgramID  string
	selectedProjectID  string
	selectedResourceID string

	now func() time.Time
}

func New() *Store {
	return &Store{now: func() time.Time { return time.Now().UTC() }}
}

// NewWithClock returns a store whose UpdatedAt stamping uses the given
// clock. Tests use this to make timestamps deterministic.
func NewWithClock(clock func() time.Time) *Store {
	return &Store{now: clock}
}

// SelectProgram records the currently selected program id. An empty id
// clears the selection.
func (s *Store) SelectProgram(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedProgramID = id
}

func (s *Store) SelectProject(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedProjectID = id
}

func (s *Store) SelectResource(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedResourceID = id
}

// Selections returns the currently selected program, project and
// resource ids, any of which may be empty.
func (s *Store) Selections() (programID, projectID, resourceID string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedProgramID, s.selectedProjectID, s.selectedResourceID
}

func (s *Store) ClearSelections() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedProgramID = ""
	s.selectedProjectID = ""
	s.selectedResourceID = ""
}

// Reset drops every collection and selection, returning the store to
// its empty startup state.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.programs = nil
	s.projects = nil
	s.tasks = nil
	s.resources = nil
	s.allocations = nil
	s.budgets = nil
	s.risks = nil
	s.milestones = nil
	s.selectedProgramID = ""
	s.selectedProjectID = ""
	s.selectedResourceID = ""
}

// copyTask clones a task including its dependency slice so callers
// cannot alias store-owned memory.
func copyTask(t domain.Task) domain.Task {
	out := t
	if t.Dependencies != nil {
		out.Dependencies = make([]domain.TaskDependency, len(t.Dependencies))
		copy(out.Dependencies, t.Dependencies)
	}
	return out
}

func copyResource(r domain.Resource) domain.Resource {
	out := r
	if r.Skills != nil {
		out.Skills = make([]string, len(r.Skills))
		copy(out.Skills, r.Skills)
	}
	return out
}
