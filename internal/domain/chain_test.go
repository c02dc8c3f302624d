package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContract_AskEqualsBid(t *testing.T) {
	c := NewContract(335, 2.21)
	assert.Equal(t, 335.0, c.Strike)
	assert.Equal(t, 2.21, c.Ask.Price)
	assert.Equal(t, 2.21, c.Bid.Price)
	assert.Zero(t, c.Ask.Volume)
	assert.Zero(t, c.Bid.Volume)
}

func TestNewChain_SortsByStrike(t *testing.T) {
	items := []ChainItem{
		{Strike: 340, Price: 0.67},
		{Strike: 330, Price: 5.59},
		{Strike: 335, Price: 2.21},
	}

	chain, err := NewChain(items)
	require.NoError(t, err)
	assert.Equal(t, []float64{330, 335, 340}, chain.Strikes())
	assert.Equal(t, 5.59, chain[0].Ask.Price)

	for i := 0; i+1 < len(chain); i++ {
		assert.Less(t, chain[i].Strike, chain[i+1].Strike)
	}

	// El input no se reordena
	assert.Equal(t, 340.0, items[0].Strike)
}

func TestNewChain_Empty(t *testing.T) {
	chain, err := NewChain(nil)
	require.NoError(t, err)
	assert.Empty(t, chain)
}

func TestNewChain_DuplicateStrike(t *testing.T) {
	_, err := NewChain([]ChainItem{
		{Strike: 330, Price: 5.59},
		{Strike: 335, Price: 2.21},
		{Strike: 330, Price: 5.00},
	})
	require.ErrorIs(t, err, ErrInvalidChain)
	assert.Contains(t, err.Error(), "duplicate strike 330")
}

func TestNewChain_NonFiniteValues(t *testing.T) {
	_, err := NewChain([]ChainItem{{Strike: math.NaN(), Price: 1}, {Strike: 330, Price: 1}})
	assert.ErrorIs(t, err, ErrInvalidChain)

	_, err = NewChain([]ChainItem{{Strike: 330, Price: math.Inf(1)}})
	assert.ErrorIs(t, err, ErrInvalidChain)
}

func TestChain_Validate_Unsorted(t *testing.T) {
	chain := Chain{NewContract(340, 1), NewContract(330, 1)}
	err := chain.Validate()
	require.ErrorIs(t, err, ErrInvalidChain)
	assert.Contains(t, err.Error(), "below previous")
}
