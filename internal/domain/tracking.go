package domain

import "time"

// Budget is a categorized budget line within a project (personnel,
// equipment, materials, overhead, ...).
type Budget struct {
	ID            string
	ProjectID     string
	Category      string
	PlannedAmount float64
	ActualAmount  float64
	FiscalYear    int
	Quarter       int // 0 when not quarter-scoped
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type BudgetPatch struct {
	Category      *string
	PlannedAmount *float64
	ActualAmount  *float64
	FiscalYear    *int
	Quarter       *int
}

// Risk is an identified threat to a project with a mitigation plan.
type Risk struct {
	ID             string
	ProjectID      string
	Title          string
	Description    string
	Probability    RiskRating
	Impact         RiskRating
	MitigationPlan string
	Owner          string
	Status         RiskStatus
	IdentifiedDate time.Time
	DueDate        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type RiskPatch struct {
	Title          *string
	Description    *string
	Probability    *RiskRating
	Impact         *RiskRating
	MitigationPlan *string
	Owner          *string
	Status         *RiskStatus
	DueDate        **time.Time
}

// Milestone is a dated checkpoint within a project's timeline,
// independent of tasks.
type Milestone struct {
	ID          string
	ProjectID   string
	Name        string
	Description string
	Date        time.Time
	Status      MilestoneStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type MilestonePatch struct {
	Name        *string
	Description *string
	Date        *time.Time
	Status      *MilestoneStatus
}
