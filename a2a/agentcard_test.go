package a2a

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentCard_NewAgentCardDefaults(t *testing.T) {
	card := NewAgentCard("echo-agent", "Echoes messages back", "https://example.com/a2a")
	assert.Equal(t, ProtocolVersion, card.ProtocolVersion)
	assert.Equal(t, []string{"text/plain"}, card.DefaultInputModes)
	assert.Equal(t, []string{"text/plain"}, card.DefaultOutputModes)
}

// spec §6.5 — enabling MXP transport mirrors an entry into
// additionalInterfaces in addition to setting the capability flags.
func TestAgentCard_WithMXPTransportMirrorsInterface(t *testing.T) {
	card := NewAgentCard("echo-agent", "d", "https://example.com/a2a").
		WithMXPTransport("mxp://relay.example.com:9443/echo-agent")

	assert.True(t, card.Capabilities.MXPTransport)
	assert.Equal(t, "mxp://relay.example.com:9443/echo-agent", card.Capabilities.MXPEndpoint)
	require.Len(t, card.AdditionalInterfaces, 1)
	assert.Equal(t, "mxp", card.AdditionalInterfaces[0].Transport)
	assert.Equal(t, "mxp://relay.example.com:9443/echo-agent", card.AdditionalInterfaces[0].URL)
}

func TestAgentCard_JSONRoundTrip(t *testing.T) {
	card := NewAgentCard("echo-agent", "d", "https://example.com/a2a").
		WithMXPTransport("mxp://relay.example.com:9443/echo-agent")
	card.Skills = []AgentSkill{{ID: "echo", Name: "Echo", Description: "repeats input"}}
	card.SecuritySchemes = map[string]SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	data, err := ToJSON(card)
	require.NoError(t, err)

	got, err := AgentCardFromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, card, got)
}
