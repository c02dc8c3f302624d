package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// condorChain son los 15 strikes 270..400 del escenario de referencia
// (incluye un 315 suelto que no encaja con ningún par).
func condorChain() Chain {
	return Chain{
		NewContract(270, 5.59),
		NewContract(280, 5.59),
		NewContract(290, 5.59),
		NewContract(300, 5.59),
		NewContract(310, 5.59),
		NewContract(315, 5.59),
		NewContract(320, 5.59),
		NewContract(330, 2.21),
		NewContract(340, 2.21),
		NewContract(350, 0.67),
		NewContract(360, 0.67),
		NewContract(370, 0.67),
		NewContract(380, 0.67),
		NewContract(390, 0.67),
		NewContract(400, 0.67),
	}
}

func TestNestedRanges_ReferenceChain(t *testing.T) {
	ranges := NestedRanges(condorChain(), 7)

	want := []StrikeRange{
		{7, 8}, {6, 9}, {4, 10}, {3, 11}, {2, 12}, {1, 13}, {0, 14},
	}
	assert.Equal(t, want, ranges)
}

func TestScanCondors_ReferenceScenario(t *testing.T) {
	out, err := ScanCondors(condorChain(), 333.97)
	require.NoError(t, err)
	require.Len(t, out, 21)

	assert.Equal(t, Condor{OuterLeft: 0, InnerLeft: 1, InnerRight: 13, OuterRight: 14}, out[0])
	assert.Equal(t, Condor{OuterLeft: 0, InnerLeft: 7, InnerRight: 8, OuterRight: 14}, out[5])
	assert.Equal(t, Condor{OuterLeft: 1, InnerLeft: 2, InnerRight: 12, OuterRight: 13}, out[6])
	assert.Equal(t, Condor{OuterLeft: 6, InnerLeft: 7, InnerRight: 8, OuterRight: 9}, out[20])

	// 315 (índice 5) nunca forma parte de un rango
	for _, c := range out {
		assert.NotEqual(t, 5, c.OuterLeft)
		assert.NotEqual(t, 5, c.InnerLeft)
	}
}

func TestScanCondors_IndexOrdering(t *testing.T) {
	out, err := ScanCondors(condorChain(), 333.97)
	require.NoError(t, err)

	for _, c := range out {
		assert.Less(t, c.OuterLeft, c.InnerLeft)
		assert.Less(t, c.InnerLeft, c.InnerRight)
		assert.Less(t, c.InnerRight, c.OuterRight)
	}
}

func TestScanCondors_NoRoomOutside(t *testing.T) {
	// body 335, par interior (1, 2) y no hay strike a la derecha de 340.
	out, err := ScanCondors(referenceChain(), 336)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestScanCondors_SingleShell(t *testing.T) {
	out, err := ScanCondors(chainOf(320, 330, 340, 350), 331)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, Condor{OuterLeft: 0, InnerLeft: 1, InnerRight: 2, OuterRight: 3}, out[0])
}

func TestScanCondors_TargetOutsideChain(t *testing.T) {
	_, err := ScanCondors(condorChain(), 410)
	assert.ErrorIs(t, err, ErrTargetNotInChain)

	_, err = ScanCondors(condorChain(), 260)
	assert.ErrorIs(t, err, ErrTargetNotInChain)
}

func TestCombineRanges_PairsEveryLaterRange(t *testing.T) {
	ranges := []StrikeRange{{0, 9}, {2, 7}, {4, 5}}

	out := CombineRanges(ranges)
	assert.Equal(t, []Condor{
		{OuterLeft: 0, InnerLeft: 2, InnerRight: 7, OuterRight: 9},
		{OuterLeft: 0, InnerLeft: 4, InnerRight: 5, OuterRight: 9},
		{OuterLeft: 2, InnerLeft: 4, InnerRight: 5, OuterRight: 7},
	}, out)

	assert.Empty(t, CombineRanges(ranges[:1]))
	assert.Empty(t, CombineRanges(nil))
}

func TestScanCondors_Deterministic(t *testing.T) {
	first, err := ScanCondors(condorChain(), 333.97)
	require.NoError(t, err)
	second, err := ScanCondors(condorChain(), 333.97)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
