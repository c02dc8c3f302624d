package strategy_test

import (
	"context"
	"testing"

	"github.com/alejandrodnm/spreadhunter/internal/domain"
	"github.com/alejandrodnm/spreadhunter/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(target float64, strikes ...float64) domain.ScanRequest {
	items := make([]domain.ChainItem, 0, len(strikes))
	for _, s := range strikes {
		items = append(items, domain.ChainItem{Strike: s, Price: 1})
	}
	return domain.ScanRequest{Symbol: "TEST", Target: target, Chain: items}
}

func TestRegistry_Default(t *testing.T) {
	r := strategy.DefaultRegistry()
	assert.Equal(t, []string{"butterfly", "condor"}, r.Names())

	s, err := r.Lookup("condor")
	require.NoError(t, err)
	assert.Equal(t, strategy.CondorName, s.Name())
}

func TestRegistry_UnknownStrategy(t *testing.T) {
	_, err := strategy.DefaultRegistry().Lookup("iron_fly")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "iron_fly")
	assert.Contains(t, err.Error(), "butterfly")
}

func TestButterfly_Hunt_FillsReport(t *testing.T) {
	req := request(331, 350, 340, 330, 320, 310)

	report, err := strategy.NewButterfly().Hunt(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "butterfly", report.Strategy)
	assert.Equal(t, req, report.Input)
	assert.Equal(t, []float64{310, 320, 330, 340, 350}, report.Chain.Strikes())
	assert.Len(t, report.Butterflies, 2)
	assert.Empty(t, report.Condors)
	assert.Equal(t, 2, report.Found())
}

func TestCondor_Hunt_FillsReport(t *testing.T) {
	report, err := strategy.NewCondor().Hunt(context.Background(), request(331, 320, 330, 340, 350))
	require.NoError(t, err)

	assert.Equal(t, domain.StrategyCondor, report.Strategy)
	assert.Equal(t, []float64{320, 330, 340, 350}, report.Chain.Strikes())
	require.Len(t, report.Condors, 1)
	assert.Empty(t, report.Butterflies)
}

func TestHunt_PropagatesDomainErrors(t *testing.T) {
	_, err := strategy.NewButterfly().Hunt(context.Background(), request(999, 330, 335, 340))
	assert.ErrorIs(t, err, domain.ErrTargetNotInChain)

	_, err = strategy.NewCondor().Hunt(context.Background(), request(331, 330, 330, 340))
	assert.ErrorIs(t, err, domain.ErrInvalidChain)
}

func TestHunt_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := strategy.NewButterfly().Hunt(ctx, request(331, 320, 330, 340))
	assert.ErrorIs(t, err, context.Canceled)
}
