package a2a

import (
	"fmt"
	"time"
)

// TaskState is one step in a Task's lifecycle (spec §3 "States").
type TaskState string

const (
	TaskSubmitted     TaskState = "submitted"
	TaskWorking       TaskState = "working"
	TaskInputRequired TaskState = "input-required"
	TaskCompleted     TaskState = "completed"
	TaskFailed        TaskState = "failed"
	TaskCanceled      TaskState = "canceled"
)

// IsTerminal reports whether no further transitions are permitted
// from this state.
func (s TaskState) IsTerminal() bool {
	switch s {
	case TaskCompleted, TaskFailed, TaskCanceled:
		return true
	default:
		return false
	}
}

// TaskStatus is a Task's current state plus an optional human-readable
// message and the time of the transition into it.
type TaskStatus struct {
	State     TaskState `json:"state"`
	Message   string    `json:"message,omitempty"`
	Timestamp string    `json:"timestamp"`
}

// Task tracks a unit of work requested of an agent: its status,
// any artifacts it has produced, and the message history that led to
// it (spec §3 "Task").
type Task struct {
	ID        string     `json:"id"`
	ContextID string     `json:"contextId"`
	Status    TaskStatus `json:"status"`
	Artifacts []Artifact `json:"artifacts,omitempty"`
	History   []Message  `json:"history,omitempty"`
}

// ErrTerminalTransition is returned by SetStatus when called on a
// Task already in a terminal state (spec §3 "Transitions out of a
// terminal state are rejected").
var ErrTerminalTransition = fmt.Errorf("a2a: cannot transition out of a terminal task state")

// NewTask creates a Task in the Submitted state.
func NewTask(id, contextID string) *Task {
	return &Task{
		ID:        id,
		ContextID: contextID,
		Status: TaskStatus{
			State:     TaskSubmitted,
			Timestamp: now(),
		},
	}
}

// SetStatus replaces the task's status and stamps the transition
// time, rejecting any attempt to leave a terminal state.
func (t *Task) SetStatus(state TaskState, message string) error {
	if t.Status.State.IsTerminal() {
		return ErrTerminalTransition
	}
	t.Status = TaskStatus{State: state, Message: message, Timestamp: now()}
	return nil
}

// AddArtifact appends an artifact. Adding one after a terminal
// transition is permitted (late-delivered artifacts) but callers
// SHOULD treat it as noteworthy (spec §4.4); the returned bool
// reports whether the task was already terminal when this artifact
// arrived so callers can flag it.
func (t *Task) AddArtifact(a Artifact) (lateArrival bool) {
	lateArrival = t.Status.State.IsTerminal()
	t.Artifacts = append(t.Artifacts, a)
	return lateArrival
}

// IsComplete reports whether the task is in a terminal state.
func (t *Task) IsComplete() bool {
	return t.Status.State.IsTerminal()
}

// NeedsInput reports whether the task is waiting on the caller.
func (t *Task) NeedsInput() bool {
	return t.Status.State == TaskInputRequired
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
