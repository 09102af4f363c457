package a2a

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_CreateAssignsFreshIDs(t *testing.T) {
	m1 := UserText("hello")
	m2 := UserText("hello")

	assert.NotEmpty(t, m1.ContextID)
	assert.NotEmpty(t, m1.MessageID)
	assert.NotEqual(t, m1.ContextID, m2.ContextID)
	assert.NotEqual(t, m1.MessageID, m2.MessageID)
}

func TestMessage_WithContextAndTaskAreCopies(t *testing.T) {
	m := UserText("hi")
	bound := m.WithTask("task-1").WithContext("ctx-1")

	assert.Empty(t, m.TaskID)
	assert.NotEqual(t, m.ContextID, bound.ContextID)
	assert.Equal(t, "task-1", bound.TaskID)
	assert.Equal(t, "ctx-1", bound.ContextID)
}

func TestMessage_TextContentConcatenatesTextParts(t *testing.T) {
	m := Create(RoleAgent, []Part{
		Text("Hello, "),
		FileURI("text/plain", "file:///ignored"),
		Text("world!"),
	})
	assert.Equal(t, "Hello, world!", m.TextContent())
}

// Property 7 — round-tripping through JSON must reproduce the value.
func TestMessage_JSONRoundTrip(t *testing.T) {
	m := Create(RoleUser, []Part{Text("round trip me")}).WithTask("t-9")

	data, err := ToJSON(m)
	require.NoError(t, err)

	got, err := MessageFromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

// Unknown keys in the wire JSON must not cause a parse failure.
func TestMessage_FromJSONToleratesUnknownKeys(t *testing.T) {
	data := []byte(`{"role":"user","parts":[{"kind":"text","text":"hi"}],"contextId":"c","messageId":"m","futureField":42}`)
	got, err := MessageFromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, "hi", got.TextContent())
}
