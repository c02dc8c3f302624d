package strategy

import (
	"context"
	"fmt"

	"github.com/alejandrodnm/spreadhunter/internal/application/facade"
	"github.com/alejandrodnm/spreadhunter/internal/domain"
)

// ButterflyName identifica la estrategia de butterflies de calls.
const ButterflyName = domain.StrategyButterfly

// Butterfly busca butterflies balanceadas de calls.
type Butterfly struct{}

// NewButterfly crea la estrategia.
func NewButterfly() *Butterfly {
	return &Butterfly{}
}

// Name implementa Strategy.
func (s *Butterfly) Name() string {
	return ButterflyName
}

// Hunt implementa Strategy.
func (s *Butterfly) Hunt(ctx context.Context, req domain.ScanRequest) (domain.Report, error) {
	report := domain.Report{Strategy: ButterflyName, Input: req}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	resp, err := facade.FindCallButterflies(req)
	if err != nil {
		return report, fmt.Errorf("butterfly: %w", err)
	}

	report.Chain = resp.Chain
	report.Butterflies = resp.Output
	return report, nil
}
