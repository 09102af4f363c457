package a2a

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_NewTaskStartsSubmitted(t *testing.T) {
	task := NewTask("t-1", "ctx-1")
	assert.Equal(t, TaskSubmitted, task.Status.State)
	assert.False(t, task.IsComplete())
	assert.False(t, task.NeedsInput())
}

// S7 — full lifecycle: submitted -> working -> input-required -> working -> completed.
func TestTask_LifecycleScenario(t *testing.T) {
	task := NewTask("t-1", "ctx-1")

	require.NoError(t, task.SetStatus(TaskWorking, ""))
	require.NoError(t, task.SetStatus(TaskInputRequired, "need more info"))
	assert.True(t, task.NeedsInput())

	require.NoError(t, task.SetStatus(TaskWorking, ""))
	require.NoError(t, task.SetStatus(TaskCompleted, "done"))
	assert.True(t, task.IsComplete())
}

// Property 9 — terminal states reject further transitions.
func TestTask_TerminalTransitionRejected(t *testing.T) {
	task := NewTask("t-1", "ctx-1")
	require.NoError(t, task.SetStatus(TaskCompleted, "done"))

	err := task.SetStatus(TaskWorking, "")
	assert.ErrorIs(t, err, ErrTerminalTransition)
	assert.Equal(t, TaskCompleted, task.Status.State)
}

func TestTask_AddArtifactFlagsLateArrival(t *testing.T) {
	task := NewTask("t-1", "ctx-1")
	a := NewArtifact("result", []Part{Text("x")})

	late := task.AddArtifact(a)
	assert.False(t, late)

	require.NoError(t, task.SetStatus(TaskCompleted, ""))
	late = task.AddArtifact(NewArtifact("late", []Part{Text("y")}))
	assert.True(t, late)
	assert.Len(t, task.Artifacts, 2)
}

func TestTask_JSONRoundTrip(t *testing.T) {
	task := NewTask("t-1", "ctx-1")
	require.NoError(t, task.SetStatus(TaskWorking, "in progress"))
	task.AddArtifact(NewArtifact("partial", []Part{Text("x")}))

	data, err := ToJSON(task)
	require.NoError(t, err)

	got, err := TaskFromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, task, got)
}
