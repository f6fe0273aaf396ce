package store

import (
	"testing"
	"time"

	"github.com/saintgo7/web-abada-pamout/internal/domain"
	"github.com/saintgo7/web-abada-pamout/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddProgram_RoundTrip(t *testing.T) {
	s := New()
	p := testutil.NewProgram("Digital Transformation 2026")
	s.AddProgram(p)

	got, ok := s.ProgramByID(p.ID)
	require.True(t, ok)
	assert.Equal(t, p, got, "stored program should round-trip with all fields preserved")
}

func TestProgramByID_Miss(t *testing.T) {
	s := New()
	_, ok := s.ProgramByID("no-such-id")
	assert.False(t, ok, "a query miss returns false, never an error")
}

func TestUpdateProgram_MergesPatchAndStampsUpdatedAt(t *testing.T) {
	stamp := testutil.Day(5)
	s := NewWithClock(func() time.Time { return stamp })

	p := testutil.NewProgram("Original")
	s.AddProgram(p)

	name := "Renamed"
	spent := 999999.0
	s.UpdateProgram(p.ID, domain.ProgramPatch{Name: &name, Spent: &spent})

	got, ok := s.ProgramByID(p.ID)
	require.True(t, ok)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, 999999.0, got.Spent)
	assert.Equal(t, p.Description, got.Description, "unset patch fields stay untouched")
	assert.Equal(t, stamp, got.UpdatedAt)
}

func TestUpdateProgram_UnknownIDIsNoOp(t *testing.T) {
	s := New()
	p := testutil.NewProgram("Only")
	s.AddProgram(p)

	name := "Ghost"
	s.UpdateProgram("missing", domain.ProgramPatch{Name: &name})

	got, _ := s.ProgramByID(p.ID)
	assert.Equal(t, p.Name, got.Name)
}

func TestPrograms_InsertionOrder(t *testing.T) {
	s := New()
	a := testutil.NewProgram("A")
	b := testutil.NewProgram("B")
	c := testutil.NewProgram("C")
	s.AddProgram(a)
	s.AddProgram(b)
	s.AddProgram(c)

	got := s.Programs()
	require.Len(t, got, 3)
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestSetPrograms_ReplacesCollection(t *testing.T) {
	s := New()
	s.AddProgram(testutil.NewProgram("Old"))

	fresh := []domain.Program{testutil.NewProgram("New A"), testutil.NewProgram("New B")}
	s.SetPrograms(fresh)

	got := s.Programs()
	require.Len(t, got, 2)
	assert.Equal(t, "New A", got[0].Name)
}

func TestTaskReads_DoNotAliasStoreMemory(t *testing.T) {
	s := New()
	task := testutil.NewTask("proj-1", "Design",
		testutil.WithDependency("task-0", domain.FinishToStart, 2))
	s.AddTask(task)

	got, ok := s.TaskByID(task.ID)
	require.True(t, ok)
	got.Dependencies[0].LagDays = 99

	again, _ := s.TaskByID(task.ID)
	assert.Equal(t, 2, again.Dependencies[0].LagDays, "mutating a returned task must not touch the store")
}

func TestReset_ClearsEverything(t *testing.T) {
	s := New()
	prog := testutil.NewProgram("P")
	s.AddProgram(prog)
	s.AddResource(testutil.NewResource("R"))
	s.SelectProgram(prog.ID)

	s.Reset()

	assert.Empty(t, s.Programs())
	assert.Empty(t, s.Resources())
	progID, _, _ := s.Selections()
	assert.Empty(t, progID)
}

func TestSelections(t *testing.T) {
	s := New()
	s.SelectProgram("prog-9")
	s.SelectProject("proj-9")
	s.SelectResource("res-9")

	progID, projID, resID := s.Selections()
	assert.Equal(t, "prog-9", progID)
	assert.Equal(t, "proj-9", projID)
	assert.Equal(t, "res-9", resID)

	s.ClearSelections()
	progID, projID, resID = s.Selections()
	assert.Empty(t, progID)
	assert.Empty(t, projID)
	assert.Empty(t, resID)
}

func TestAvailableCapacity(t *testing.T) {
	s := New()
	r := testutil.NewResource("Dana", testutil.WithCapacity(100))
	s.AddResource(r)
	s.AddAllocation(testutil.NewAllocation(r.ID, "proj-1", testutil.WithPercent(60)))
	s.AddAllocation(testutil.NewAllocation(r.ID, "proj-2", testutil.WithPercent(50)))

	assert.Equal(t, -10.0, s.AvailableCapacity(r.ID), "60+50 against capacity 100 leaves -10")
	assert.Equal(t, 0.0, s.AvailableCapacity("missing"), "unknown resource reports zero")
}
