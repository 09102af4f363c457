package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zameneing/mxp-go/a2a"
	"github.com/Zameneing/mxp-go/frame"
)

const textOnlyMessageSchema = `{
	"type": "object",
	"properties": {
		"role": {"type": "string", "enum": ["user", "agent"]}
	},
	"required": ["role"]
}`

func TestValidator_NoSchemaAlwaysPasses(t *testing.T) {
	v := NewValidator()
	result, err := FromMXP(mustToMXP(t, a2a.UserText("hi")))
	require.NoError(t, err)
	assert.NoError(t, v.Validate(result))
}

func TestValidator_SchemaAcceptsConformingMessage(t *testing.T) {
	v := NewValidator(WithSchemaValidation([]byte(textOnlyMessageSchema)))
	result, err := FromMXP(mustToMXP(t, a2a.UserText("hi")))
	require.NoError(t, err)
	assert.NoError(t, v.Validate(result))
}

func mustToMXP(t *testing.T, msg a2a.Message) frame.Frame {
	t.Helper()
	f, err := ToMXP(msg)
	require.NoError(t, err)
	return f
}
