package a2a

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPart_TaggedUnionKinds(t *testing.T) {
	p := Text("hi")
	assert.True(t, p.IsText())
	assert.False(t, p.IsFile())
	assert.False(t, p.IsData())

	p = FileInline("image/png", "Zm9v")
	assert.True(t, p.IsFile())
	assert.True(t, p.File.IsInline())

	p = FileURI("image/png", "https://example.com/a.png")
	assert.True(t, p.IsFile())
	assert.False(t, p.File.IsInline())

	type payload struct {
		X int `json:"x"`
	}
	dp, err := Data(payload{X: 7})
	require.NoError(t, err)
	assert.True(t, dp.IsData())

	var out payload
	require.NoError(t, dp.DataInto(&out))
	assert.Equal(t, 7, out.X)
}

func TestPart_DataOwnership(t *testing.T) {
	v := map[string]int{"a": 1}
	p, err := Data(v)
	require.NoError(t, err)

	v["a"] = 2
	var out map[string]int
	require.NoError(t, p.DataInto(&out))
	assert.Equal(t, 1, out["a"])
}

func TestPart_JSONRoundTrip(t *testing.T) {
	parts := []Part{Text("hello"), FileURI("text/plain", "file:///x")}
	data, err := json.Marshal(parts)
	require.NoError(t, err)

	var got []Part
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, parts, got)
}
