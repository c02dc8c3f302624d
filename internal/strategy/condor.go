package strategy

import (
	"context"
	"fmt"

	"github.com/alejandrodnm/spreadhunter/internal/application/facade"
	"github.com/alejandrodnm/spreadhunter/internal/domain"
)

// CondorName identifica la estrategia de condors de calls.
const CondorName = domain.StrategyCondor

// Condor busca condors de calls (solo geometría de índices).
type Condor struct{}

// NewCondor crea la estrategia.
func NewCondor() *Condor {
	return &Condor{}
}

// Name implementa Strategy.
func (s *Condor) Name() string {
	return CondorName
}

// Hunt implementa Strategy.
func (s *Condor) Hunt(ctx context.Context, req domain.ScanRequest) (domain.Report, error) {
	report := domain.Report{Strategy: CondorName, Input: req}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	resp, err := facade.FindCallCondors(req)
	if err != nil {
		return report, fmt.Errorf("condor: %w", err)
	}

	report.Chain = resp.Chain
	report.Condors = resp.Output
	return report, nil
}
