package a2a

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalAgentCardSchema = `{
	"type": "object",
	"required": ["protocolVersion", "name", "url"],
	"properties": {
		"protocolVersion": {"type": "string", "minLength": 1},
		"name": {"type": "string", "minLength": 1},
		"url": {"type": "string", "minLength": 1}
	}
}`

func TestValidateAgentCardSchema_Valid(t *testing.T) {
	card := NewAgentCard("echo-agent", "d", "https://example.com/a2a")
	err := ValidateAgentCardSchema(card, []byte(minimalAgentCardSchema))
	require.NoError(t, err)
}

func TestValidateAgentCardSchema_Invalid(t *testing.T) {
	card := AgentCard{} // required fields present but empty
	err := ValidateAgentCardSchema(card, []byte(minimalAgentCardSchema))
	require.Error(t, err)

	var sverr *SchemaValidationError
	require.ErrorAs(t, err, &sverr)
	assert.Equal(t, "AgentCard", sverr.Context)
	assert.NotEmpty(t, sverr.Details)
}
