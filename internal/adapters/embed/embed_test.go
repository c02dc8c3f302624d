package embed_test

import (
	"encoding/json"
	"testing"

	"github.com/alejandrodnm/spreadhunter/internal/adapters/embed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chain = `[{"strike":340.0,"price":0.67},{"strike":335.0,"price":2.21},{"strike":330.0,"price":5.59}]`

type envelope struct {
	Input struct {
		Symbol string  `json:"symbol"`
		Target float64 `json:"target"`
		Chain  []struct {
			Strike float64 `json:"strike"`
		} `json:"chain"`
	} `json:"input"`
	Output []map[string]any `json:"output"`
}

func TestHuntForCallButterflies(t *testing.T) {
	out := embed.HuntForCallButterflies("RANGERDAVE", 334.97, chain)
	require.NotEqual(t, embed.Problem, out)

	var env envelope
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	assert.Equal(t, "RANGERDAVE", env.Input.Symbol)
	assert.InDelta(t, 334.97, env.Input.Target, 1e-9)

	// El input se devuelve en el orden en que llegó
	require.Len(t, env.Input.Chain, 3)
	assert.Equal(t, 340.0, env.Input.Chain[0].Strike)

	require.Len(t, env.Output, 1)
	assert.Equal(t, map[string]any{"left": 0.0, "right": 2.0}, env.Output[0]["context"])
	assert.Equal(t, 5.0, env.Output[0]["shares"])
}

func TestHuntForCallCondors(t *testing.T) {
	out := embed.HuntForCallCondors("SPY", 331,
		`[{"strike":320,"price":3},{"strike":330,"price":2},{"strike":340,"price":1},{"strike":350,"price":0.5}]`)
	require.NotEqual(t, embed.Problem, out)

	var env envelope
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	require.Len(t, env.Output, 1)
	assert.Equal(t,
		map[string]any{"left": 0.0, "ileft": 1.0, "iright": 2.0, "right": 3.0},
		env.Output[0]["context"])
}

func TestHunt_FailuresCollapseToProblem(t *testing.T) {
	tests := []struct {
		name   string
		target float64
		chain  string
	}{
		{"malformed json", 334.97, `[{"strike":`},
		{"target beyond chain", 500, chain},
		{"target below chain", 100, chain},
		{"duplicate strikes", 334.97, `[{"strike":330,"price":1},{"strike":330,"price":2},{"strike":340,"price":1}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, embed.Problem, embed.HuntForCallButterflies("X", tt.target, tt.chain))
			assert.Equal(t, embed.Problem, embed.HuntForCallCondors("X", tt.target, tt.chain))
		})
	}
}
