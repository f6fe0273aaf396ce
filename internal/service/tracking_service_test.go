package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saintgo7/web-abada-pamout/internal/domain"
	"github.com/saintgo7/web-abada-pamout/internal/store"
	"github.com/saintgo7/web-abada-pamout/internal/testutil"
)

func newTrackingFixture(t *testing.T) (*store.Store, TrackingService, domain.Project) {
	t.Helper()
	st := store.New()
	prog := testutil.NewProgram("P")
	st.AddProgram(prog)
	proj := testutil.NewProject(prog.ID, "Proj")
	st.AddProject(proj)
	return st, NewTrackingService(st), proj
}

func TestAddBudget_RequiresProjectAndCategory(t *testing.T) {
	_, svc, proj := newTrackingFixture(t)

	err := svc.AddBudget(context.Background(), &domain.Budget{ProjectID: "missing", Category: "personnel"})
	assert.ErrorIs(t, err, ErrMissingParent)

	err = svc.AddBudget(context.Background(), &domain.Budget{ProjectID: proj.ID})
	assert.Error(t, err)

	b := &domain.Budget{ProjectID: proj.ID, Category: "personnel", PlannedAmount: 100000}
	require.NoError(t, svc.AddBudget(context.Background(), b))
	assert.NotEmpty(t, b.ID)
}

func TestUpdateBudget_PatchesActuals(t *testing.T) {
	st, svc, proj := newTrackingFixture(t)

	b := testutil.NewBudget(proj.ID, "equipment", 50000, 10000)
	st.AddBudget(b)

	actual := 42000.0
	got, err := svc.UpdateBudget(context.Background(), b.ID, domain.BudgetPatch{ActualAmount: &actual})
	require.NoError(t, err)
	assert.InDelta(t, 42000.0, got.ActualAmount, 0.001)
	assert.InDelta(t, 50000.0, got.PlannedAmount, 0.001)

	require.NoError(t, svc.DeleteBudget(context.Background(), b.ID))
	_, err = svc.UpdateBudget(context.Background(), b.ID, domain.BudgetPatch{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddRisk_DefaultsToOpen(t *testing.T) {
	_, svc, proj := newTrackingFixture(t)

	r := &domain.Risk{
		ProjectID:   proj.ID,
		Title:       "Schedule slip",
		Probability: domain.RatingMedium,
		Impact:      domain.RatingHigh,
	}
	require.NoError(t, svc.AddRisk(context.Background(), r))
	assert.Equal(t, domain.RiskOpen, r.Status)

	err := svc.AddRisk(context.Background(), &domain.Risk{ProjectID: proj.ID})
	assert.Error(t, err)
}

func TestUpdateRisk_StatusAndDueDate(t *testing.T) {
	st, svc, proj := newTrackingFixture(t)

	r := testutil.NewRisk(proj.ID, "Vendor delay")
	due := testutil.Day(14)
	r.DueDate = &due
	st.AddRisk(r)

	status := domain.RiskMitigated
	got, err := svc.UpdateRisk(context.Background(), r.ID, domain.RiskPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.RiskMitigated, got.Status)
	require.NotNil(t, got.DueDate)

	// The double pointer distinguishes "leave as is" from "clear".
	var noDate *time.Time
	got, err = svc.UpdateRisk(context.Background(), r.ID, domain.RiskPatch{DueDate: &noDate})
	require.NoError(t, err)
	assert.Nil(t, got.DueDate)
}

func TestAddMilestone_DefaultsToPending(t *testing.T) {
	_, svc, proj := newTrackingFixture(t)

	m := &domain.Milestone{ProjectID: proj.ID, Name: "Go-Live", Date: testutil.Day(30)}
	require.NoError(t, svc.AddMilestone(context.Background(), m))
	assert.Equal(t, domain.MilestonePending, m.Status)
}

func TestListTracking_ScopedToProject(t *testing.T) {
	st, svc, proj := newTrackingFixture(t)

	other := testutil.NewProject(proj.ProgramID, "Other")
	st.AddProject(other)

	st.AddBudget(testutil.NewBudget(proj.ID, "personnel", 1, 0))
	st.AddBudget(testutil.NewBudget(other.ID, "personnel", 2, 0))
	st.AddRisk(testutil.NewRisk(proj.ID, "R1"))
	st.AddMilestone(testutil.NewMilestone(proj.ID, "M1"))
	st.AddMilestone(testutil.NewMilestone(other.ID, "M2"))

	budgets, err := svc.ListBudgets(context.Background(), proj.ID)
	require.NoError(t, err)
	assert.Len(t, budgets, 1)

	risks, err := svc.ListRisks(context.Background(), proj.ID)
	require.NoError(t, err)
	assert.Len(t, risks, 1)

	milestones, err := svc.ListMilestones(context.Background(), proj.ID)
	require.NoError(t, err)
	assert.Len(t, milestones, 1)
	assert.Equal(t, "M1", milestones[0].Name)
}
