package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saintgo7/web-abada-pamout/internal/domain"
	"github.com/saintgo7/web-abada-pamout/internal/store"
	"github.com/saintgo7/web-abada-pamout/internal/testutil"
)

func TestResourceCreate_ValidatesCapacity(t *testing.T) {
	svc := NewResourceService(store.New())

	err := svc.Create(context.Background(), &domain.Resource{Name: "Over", Capacity: 150})
	assert.Error(t, err)

	r := &domain.Resource{Name: "Fine", Capacity: 80}
	require.NoError(t, svc.Create(context.Background(), r))
	assert.NotEmpty(t, r.ID)
}

func TestResourceDelete_CascadesAllocations(t *testing.T) {
	st := store.New()
	svc := NewResourceService(st)

	prog := testutil.NewProgram("P")
	st.AddProgram(prog)
	proj := testutil.NewProject(prog.ID, "Proj")
	st.AddProject(proj)
	res := testutil.NewResource("Dev")
	st.AddResource(res)
	alloc := testutil.NewAllocation(res.ID, proj.ID, testutil.WithPercent(50))
	st.AddAllocation(alloc)

	require.NoError(t, svc.Delete(context.Background(), res.ID))

	_, ok := st.AllocationByID(alloc.ID)
	assert.False(t, ok)
}

func TestAllocate_RequiresBothParents(t *testing.T) {
	st := store.New()
	svc := NewResourceService(st)

	prog := testutil.NewProgram("P")
	st.AddProgram(prog)
	proj := testutil.NewProject(prog.ID, "Proj")
	st.AddProject(proj)
	res := testutil.NewResource("Dev")
	st.AddResource(res)

	err := svc.Allocate(context.Background(), &domain.ResourceAllocation{
		ResourceID: "missing", ProjectID: proj.ID, AllocationPercent: 50,
	})
	assert.ErrorIs(t, err, ErrMissingParent)

	err = svc.Allocate(context.Background(), &domain.ResourceAllocation{
		ResourceID: res.ID, ProjectID: "missing", AllocationPercent: 50,
	})
	assert.ErrorIs(t, err, ErrMissingParent)

	err = svc.Allocate(context.Background(), &domain.ResourceAllocation{
		ResourceID: res.ID, ProjectID: proj.ID, AllocationPercent: 0,
	})
	assert.Error(t, err)

	a := &domain.ResourceAllocation{ResourceID: res.ID, ProjectID: proj.ID, AllocationPercent: 60}
	require.NoError(t, svc.Allocate(context.Background(), a))
	assert.NotEmpty(t, a.ID)
}

func TestAvailableCapacity_SubtractsAllocations(t *testing.T) {
	st := store.New()
	svc := NewResourceService(st)

	prog := testutil.NewProgram("P")
	st.AddProgram(prog)
	proj := testutil.NewProject(prog.ID, "Proj")
	st.AddProject(proj)
	res := testutil.NewResource("Dev", testutil.WithCapacity(90))
	st.AddResource(res)
	st.AddAllocation(testutil.NewAllocation(res.ID, proj.ID, testutil.WithPercent(40)))
	st.AddAllocation(testutil.NewAllocation(res.ID, proj.ID, testutil.WithPercent(30)))

	avail, err := svc.AvailableCapacity(context.Background(), res.ID)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, avail, 0.001)

	_, err = svc.AvailableCapacity(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateAllocation_PatchesPercent(t *testing.T) {
	st := store.New()
	svc := NewResourceService(st)

	prog := testutil.NewProgram("P")
	st.AddProgram(prog)
	proj := testutil.NewProject(prog.ID, "Proj")
	st.AddProject(proj)
	res := testutil.NewResource("Dev")
	st.AddResource(res)
	alloc := testutil.NewAllocation(res.ID, proj.ID, testutil.WithPercent(50))
	st.AddAllocation(alloc)

	pct := 75.0
	got, err := svc.UpdateAllocation(context.Background(), alloc.ID, domain.AllocationPatch{AllocationPercent: &pct})
	require.NoError(t, err)
	assert.InDelta(t, 75.0, got.AllocationPercent, 0.001)

	require.NoError(t, svc.Deallocate(context.Background(), alloc.ID))
	assert.ErrorIs(t, svc.Deallocate(context.Background(), alloc.ID), ErrNotFound)
}
