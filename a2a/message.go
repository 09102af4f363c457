package a2a

import (
	"strings"

	"github.com/google/uuid"
)

// Message is a single turn in a conversation: a role, an ordered
// sequence of Parts, and the identifiers that group it into a
// conversation and, optionally, a task (spec §3 "A2A Message").
type Message struct {
	Role      Role                   `json:"role"`
	Parts     []Part                 `json:"parts"`
	ContextID string                 `json:"contextId"`
	MessageID string                 `json:"messageId"`
	TaskID    string                 `json:"taskId,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Create builds a Message with a fresh context id and message id.
func Create(role Role, parts []Part) Message {
	return Message{
		Role:      role,
		Parts:     parts,
		ContextID: uuid.NewString(),
		MessageID: uuid.NewString(),
	}
}

// UserText builds a single-text-part Message authored by the user.
func UserText(s string) Message {
	return Create(RoleUser, []Part{Text(s)})
}

// AgentText builds a single-text-part Message authored by the agent.
func AgentText(s string) Message {
	return Create(RoleAgent, []Part{Text(s)})
}

// WithContext returns a logically modified copy of m bound to
// contextID. Role and Parts are invariant once constructed (spec
// §4.4); only the grouping identifiers change.
func (m Message) WithContext(contextID string) Message {
	m.ContextID = contextID
	return m
}

// WithTask returns a copy of m linked to taskID.
func (m Message) WithTask(taskID string) Message {
	m.TaskID = taskID
	return m
}

// TextContent concatenates the text of every text-kind part, in
// order; the empty string if there are none (spec §4.4).
func (m Message) TextContent() string {
	var b strings.Builder
	for _, p := range m.Parts {
		if p.IsText() {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}
