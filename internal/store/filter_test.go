package store

import (
	"testing"

	"github.com/saintgo7/web-abada-pamout/internal/domain"
	"github.com/saintgo7/web-abada-pamout/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterPrograms_StatusAndOwnerAreANDed(t *testing.T) {
	s := New()
	s.AddProgram(testutil.NewProgram("A",
		testutil.WithProgramStatus(domain.ProgramActive), testutil.WithOwner("u1")))
	s.AddProgram(testutil.NewProgram("B",
		testutil.WithProgramStatus(domain.ProgramActive), testutil.WithOwner("u2")))
	s.AddProgram(testutil.NewProgram("C",
		testutil.WithProgramStatus(domain.ProgramOnHold), testutil.WithOwner("u1")))

	got := s.FilterPrograms(domain.ProgramFilter{Status: domain.ProgramActive, OwnerID: "u1"})
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)
}

func TestFilterPrograms_EmptyFilterReturnsAll(t *testing.T) {
	s := New()
	s.AddProgram(testutil.NewProgram("A"))
	s.AddProgram(testutil.NewProgram("B"))

	got := s.FilterPrograms(domain.ProgramFilter{})
	assert.Len(t, got, 2)
}

func TestFilterPrograms_DateRange(t *testing.T) {
	s := New()
	inside := testutil.NewProgram("Inside",
		testutil.WithProgramDates(testutil.Day(0), testutil.Day(10)))
	straddling := testutil.NewProgram("Straddling",
		testutil.WithProgramDates(testutil.Day(-5), testutil.Day(10)))
	s.AddProgram(inside)
	s.AddProgram(straddling)

	got := s.FilterPrograms(domain.ProgramFilter{
		DateRange: &domain.DateRange{Start: testutil.Day(-1), End: testutil.Day(11)},
	})
	require.Len(t, got, 1, "only programs fully inside the range match")
	assert.Equal(t, "Inside", got[0].Name)
}

func TestFilterProjects(t *testing.T) {
	s := New()
	s.AddProject(testutil.NewProject("prog-1", "Hot",
		testutil.WithPriority(domain.PriorityCritical),
		testutil.WithProjectStatus(domain.ProjectInProgress)))
	s.AddProject(testutil.NewProject("prog-1", "Cool",
		testutil.WithPriority(domain.PriorityLow),
		testutil.WithProjectStatus(domain.ProjectInProgress)))
	s.AddProject(testutil.NewProject("prog-2", "Elsewhere",
		testutil.WithPriority(domain.PriorityCritical)))

	got := s.FilterProjects(domain.ProjectFilter{
		ProgramID: "prog-1",
		Priority:  domain.PriorityCritical,
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Hot", got[0].Name)
}

func TestProjectsByProgram_InsertionOrder(t *testing.T) {
	s := New()
	first := testutil.NewProject("prog-1", "First")
	second := testutil.NewProject("prog-1", "Second")
	s.AddProject(first)
	s.AddProject(testutil.NewProject("prog-2", "Noise"))
	s.AddProject(second)

	got := s.ProjectsByProgram("prog-1")
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
}

func TestFilterResources_DepartmentAndSkill(t *testing.T) {
	s := New()
	s.AddResource(testutil.NewResource("Go Dev",
		testutil.WithDepartment("Engineering"), testutil.WithSkills("Go", "AWS")))
	s.AddResource(testutil.NewResource("Designer",
		testutil.WithDepartment("Design"), testutil.WithSkills("Figma")))
	s.AddResource(testutil.NewResource("FE Dev",
		testutil.WithDepartment("Engineering"), testutil.WithSkills("React")))

	got := s.FilterResources(domain.ResourceFilter{Department: "Engineering", Skill: "Go"})
	require.Len(t, got, 1)
	assert.Equal(t, "Go Dev", got[0].Name)
}

func TestFilterResources_AvailabilityBuckets(t *testing.T) {
	s := New()

	free := testutil.NewResource("Free", testutil.WithCapacity(100))
	s.AddResource(free)
	s.AddAllocation(testutil.NewAllocation(free.ID, "p1", testutil.WithPercent(50)))

	tight := testutil.NewResource("Tight", testutil.WithCapacity(100))
	s.AddResource(tight)
	s.AddAllocation(testutil.NewAllocation(tight.ID, "p1", testutil.WithPercent(90)))

	over := testutil.NewResource("Over", testutil.WithCapacity(100))
	s.AddResource(over)
	s.AddAllocation(testutil.NewAllocation(over.ID, "p1", testutil.WithPercent(60)))
	s.AddAllocation(testutil.NewAllocation(over.ID, "p2", testutil.WithPercent(50)))

	available := s.FilterResources(domain.ResourceFilter{Availability: domain.Available})
	require.Len(t, available, 1)
	assert.Equal(t, "Free", available[0].Name)

	full := s.FilterResources(domain.ResourceFilter{Availability: domain.FullyAllocated})
	require.Len(t, full, 1)
	assert.Equal(t, "Tight", full[0].Name)

	overAlloc := s.FilterResources(domain.ResourceFilter{Availability: domain.OverAllocated})
	require.Len(t, overAlloc, 1)
	assert.Equal(t, "Over", overAlloc[0].Name)
}

func TestAllocationsByResource_NoDateWindowFiltering(t *testing.T) {
	s := New()
	r := testutil.NewResource("R")
	s.AddResource(r)

	past := testutil.NewAllocation(r.ID, "p1")
	past.StartDate = testutil.Day(-400)
	past.EndDate = testutil.Day(-300)
	s.AddAllocation(past)
	s.AddAllocation(testutil.NewAllocation(r.ID, "p2"))

	got := s.AllocationsByResource(r.ID)
	assert.Len(t, got, 2, "allocations outside today's date still count")
}
