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

func newProjectFixture(t *testing.T) (*store.Store, ProjectService, domain.Program) {
	t.Helper()
	st := store.New()
	prog := testutil.NewProgram("Host Program")
	st.AddProgram(prog)
	return st, NewProjectService(st), prog
}

func TestProjectCreate_RequiresExistingProgram(t *testing.T) {
	_, svc, _ := newProjectFixture(t)

	p := &domain.Project{
		Name:      "Orphan",
		ProgramID: "missing-program",
		StartDate: testutil.Day(0),
		EndDate:   testutil.Day(30),
	}
	err := svc.Create(context.Background(), p)
	assert.ErrorIs(t, err, ErrMissingParent)
}

func TestProjectCreate_Defaults(t *testing.T) {
	_, svc, prog := newProjectFixture(t)

	p := &domain.Project{
		Name:      "New Build",
		ProgramID: prog.ID,
		StartDate: testutil.Day(0),
		EndDate:   testutil.Day(30),
	}
	require.NoError(t, svc.Create(context.Background(), p))

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.ProjectNotStarted, p.Status)
	assert.Equal(t, domain.PriorityMedium, p.Priority)
}

func TestProjectUpdate_PatchKeepsUntouchedFields(t *testing.T) {
	st, svc, prog := newProjectFixture(t)

	p := testutil.NewProject(prog.ID, "Original", testutil.WithPriority(domain.PriorityHigh))
	st.AddProject(p)

	progress := 55.0
	got, err := svc.Update(context.Background(), p.ID, domain.ProjectPatch{Progress: &progress})
	require.NoError(t, err)

	assert.InDelta(t, 55.0, got.Progress, 0.001)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	assert.Equal(t, "Original", got.Name)
}

func TestProjectDelete_RemovesChildren(t *testing.T) {
	st, svc, prog := newProjectFixture(t)

	p := testutil.NewProject(prog.ID, "Doomed")
	st.AddProject(p)
	task := testutil.NewTask(p.ID, "Child Task")
	st.AddTask(task)
	ms := testutil.NewMilestone(p.ID, "Child Milestone")
	st.AddMilestone(ms)

	require.NoError(t, svc.Delete(context.Background(), p.ID))

	_, ok := st.TaskByID(task.ID)
	assert.False(t, ok)
	_, ok = st.MilestoneByID(ms.ID)
	assert.False(t, ok)
}

func TestTaskCreate_RequiresProjectAndName(t *testing.T) {
	st, svc, prog := newProjectFixture(t)

	p := testutil.NewProject(prog.ID, "Host")
	st.AddProject(p)

	err := svc.CreateTask(context.Background(), &domain.Task{ProjectID: p.ID})
	assert.Error(t, err)

	err = svc.CreateTask(context.Background(), &domain.Task{Name: "Orphan", ProjectID: "missing"})
	assert.ErrorIs(t, err, ErrMissingParent)
}

func TestTaskCreate_StampsDependencies(t *testing.T) {
	st, svc, prog := newProjectFixture(t)

	p := testutil.NewProject(prog.ID, "Host")
	st.AddProject(p)

	task := &domain.Task{
		Name:      "Dependent",
		ProjectID: p.ID,
		Dependencies: []domain.TaskDependency{
			{DependsOnTaskID: "some-other-task", Type: domain.FinishToStart},
		},
	}
	require.NoError(t, svc.CreateTask(context.Background(), task))

	require.Len(t, task.Dependencies, 1)
	assert.NotEmpty(t, task.Dependencies[0].ID)
	assert.Equal(t, task.ID, task.Dependencies[0].TaskID)
	assert.Equal(t, domain.TaskTodo, task.Status)
}

func TestTaskUpdate_ReplacesDependencyList(t *testing.T) {
	st, svc, prog := newProjectFixture(t)

	p := testutil.NewProject(prog.ID, "Host")
	st.AddProject(p)
	task := testutil.NewTask(p.ID, "T", testutil.WithDependency("upstream", domain.FinishToStart, 0))
	st.AddTask(task)

	empty := []domain.TaskDependency{}
	got, err := svc.UpdateTask(context.Background(), task.ID, domain.TaskPatch{Dependencies: &empty})
	require.NoError(t, err)
	assert.Empty(t, got.Dependencies)
}

func TestListTasks_ScopedToProject(t *testing.T) {
	st, svc, prog := newProjectFixture(t)

	p1 := testutil.NewProject(prog.ID, "P1")
	p2 := testutil.NewProject(prog.ID, "P2")
	st.AddProject(p1)
	st.AddProject(p2)
	st.AddTask(testutil.NewTask(p1.ID, "A"))
	st.AddTask(testutil.NewTask(p2.ID, "B"))
	st.AddTask(testutil.NewTask(p1.ID, "C"))

	got, err := svc.ListTasks(context.Background(), p1.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, "C", got[1].Name)
}
