package store

import "github.com/saintgo7/web-abada-pamout/internal/domain"

func (s *Store) SetBudgets(budgets []domain.Budget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budgets = append([]domain.Budget(nil), budgets...)
}

func (s *Store) AddBudget(b domain.Budget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budgets = append(s.budgets, b)
}

func (s *Store) UpdateBudget(id string, patch domain.BudgetPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.budgets {
		if s.budgets[i].ID != id {
			continue
		}
		b := &s.budgets[i]
		if patch.Category != nil {
			b.Category = *patch.Category
		}
		if patch.PlannedAmount != nil {
			b.PlannedAmount = *patch.PlannedAmount
		}
		if patch.ActualAmount != nil {
			b.ActualAmount = *patch.ActualAmount
		}
		if patch.FiscalYear != nil {
			b.FiscalYear = *patch.FiscalYear
		}
		if patch.Quarter != nil {
			b.Quarter = *patch.Quarter
		}
		b.UpdatedAt = s.now()
		return
	}
}

func (s *Store) DeleteBudget(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.budgets[:0]
	for _, b := range s.budgets {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.budgets = kept
}

func (s *Store) BudgetByID(id string) (domain.Budget, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.budgets {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Budget{}, false
}

func (s *Store) Budgets() []domain.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Budget(nil), s.budgets...)
}

func (s *Store) BudgetsByProject(projectID string) []domain.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Budget
	for _, b := range s.budgets {
		if b.ProjectID == projectID {
			out = append(out, b)
		}
	}
	return out
}

func (s *Store) SetRisks(risks []domain.Risk) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.risks = append([]domain.Risk(nil), risks...)
}

func (s *Store) AddRisk(r domain.Risk) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.risks = append(s.risks, r)
}

func (s *Store) UpdateRisk(id string, patch domain.RiskPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.risks {
		if s.risks[i].ID != id {
			continue
		}
		r := &s.risks[i]
		if patch.Title != nil {
			r.Title = *patch.Title
		}
		if patch.Description != nil {
			r.Description = *patch.Description
		}
		if patch.Probability != nil {
			r.Probability = *patch.Probability
		}
		if patch.Impact != nil {
			r.Impact = *patch.Impact
		}
		if patch.MitigationPlan != nil {
			r.MitigationPlan = *patch.MitigationPlan
		}
		if patch.Owner != nil {
			r.Owner = *patch.Owner
		}
		if patch.Status != nil {
			r.Status = *patch.Status
		}
		if patch.DueDate != nil {
			r.DueDate = *patch.DueDate
		}
		r.UpdatedAt = s.now()
		return
	}
}

func (s *Store) DeleteRisk(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.risks[:0]
	for _, r := range s.risks {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.risks = kept
}

func (s *Store) RiskByID(id string) (domain.Risk, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.risks {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Risk{}, false
}

func (s *Store) Risks() []domain.Risk {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Risk(nil), s.risks...)
}

func (s *Store) RisksByProject(projectID string) []domain.Risk {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Risk
	for _, r := range s.risks {
		if r.ProjectID == projectID {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) SetMilestones(milestones []domain.Milestone) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.milestones = append([]domain.Milestone(nil), milestones...)
}

func (s *Store) AddMilestone(m domain.Milestone) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.milestones = append(s.milestones, m)
}

func (s *Store) UpdateMilestone(id string, patch domain.MilestonePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.milestones {
		if s.milestones[i].ID != id {
			continue
		}
		m := &s.milestones[i]
		if patch.Name != nil {
			m.Name = *patch.Name
		}
		if patch.Description != nil {
			m.Description = *patch.Description
		}
		if patch.Date != nil {
			m.Date = *patch.Date
		}
		if patch.Status != nil {
			m.Status = *patch.Status
		}
		m.UpdatedAt = s.now()
		return
	}
}

func (s *Store) DeleteMilestone(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.milestones[:0]
	for _, m := range s.milestones {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	s.milestones = kept
}

func (s *Store) MilestoneByID(id string) (domain.Milestone, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.milestones {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Milestone{}, false
}

func (s *Store) Milestones() []domain.Milestone {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Milestone(nil), s.milestones...)
}

func (s *Store) MilestonesByProject(projectID string) []domain.Milestone {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Milestone
	for _, m := range s.milestones {
		if m.ProjectID == projectID {
			out = append(out, m)
		}
	}
	return out
}
