package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(offset int) time.Time {
	return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestProgramValidate_Valid(t *testing.T) {
	p := &Program{Name: "Digital Transformation", Description: "Modernize legacy systems",
		StartDate: day(0), EndDate: day(90)}
	assert.NoError(t, p.Validate())
}

func TestProgramValidate_MissingName(t *testing.T) {
	p := &Program{Description: "desc", StartDate: day(0), EndDate: day(1)}
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestProgramValidate_EndBeforeStart(t *testing.T) {
	p := &Program{Name: "N", Description: "D", StartDate: day(10), EndDate: day(5)}
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before start date")
}

func TestProgramValidate_SameDayAllowed(t *testing.T) {
	p := &Program{Name: "N", Description: "D", StartDate: day(3), EndDate: day(3)}
	assert.NoError(t, p.Validate())
}

func TestProgramDurationDays(t *testing.T) {
	p := &Program{StartDate: day(0), EndDate: day(30)}
	assert.Equal(t, 30, p.DurationDays())

	// Zero-length spans count as a single day.
	p = &Program{StartDate: day(0), EndDate: day(0)}
	assert.Equal(t, 1, p.DurationDays())
}

func TestProjectValidate(t *testing.T) {
	p := &Project{Name: "Portal", ProgramID: "prog-1", StartDate: day(0), EndDate: day(14)}
	assert.NoError(t, p.Validate())

	p.ProgramID = ""
	require.Error(t, p.Validate())
}

func TestProjectIsActive(t *testing.T) {
	assert.True(t, (&Project{Status: ProjectInProgress}).IsActive())
	assert.True(t, (&Project{Status: ProjectNotStarted}).IsActive())
	assert.False(t, (&Project{Status: ProjectCompleted}).IsActive())
	assert.False(t, (&Project{Status: ProjectOnHold}).IsActive())
}

func TestResourceValidate_CapacityBounds(t *testing.T) {
	r := &Resource{Name: "Kim Min-ji", Capacity: 100}
	assert.NoError(t, r.Validate())

	r.Capacity = 120
	require.Error(t, r.Validate())

	r.Capacity = -5
	require.Error(t, r.Validate())
}

func TestResourceHasSkill(t *testing.T) {
	r := &Resource{Skills: []string{"Go", "React", "AWS"}}
	assert.True(t, r.HasSkill("React"))
	assert.False(t, r.HasSkill("Kubernetes"))
}
