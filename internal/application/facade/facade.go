// Package facade expone las dos búsquedas de spreads sobre calls como funciones
// puras: normalizan la cadena, la ordenan, ejecutan el scanner y envuelven el
// request original junto con los resultados.
package facade

import (
	"fmt"

	"github.com/alejandrodnm/spreadhunter/internal/domain"
)

// FindCallButterflies busca butterflies de calls alrededor de req.Target.
func FindCallButterflies(req domain.ScanRequest) (domain.ButterflyResponse, error) {
	chain, err := domain.NewChain(req.Chain)
	if err != nil {
		return domain.ButterflyResponse{}, fmt.Errorf("facade.FindCallButterflies: %s: %w", req.Symbol, err)
	}

	out, err := domain.ScanButterflies(chain, req.Target)
	if err != nil {
		return domain.ButterflyResponse{}, fmt.Errorf("facade.FindCallButterflies: %s: %w", req.Symbol, err)
	}

	return domain.ButterflyResponse{Input: req, Chain: chain, Output: out}, nil
}

// FindCallCondors busca condors de calls alrededor de req.Target.
func FindCallCondors(req domain.ScanRequest) (domain.CondorResponse, error) {
	chain, err := domain.NewChain(req.Chain)
	if err != nil {
		return domain.CondorResponse{}, fmt.Errorf("facade.FindCallCondors: %s: %w", req.Symbol, err)
	}

	out, err := domain.ScanCondors(chain, req.Target)
	if err != nil {
		return domain.CondorResponse{}, fmt.Errorf("facade.FindCallCondors: %s: %w", req.Symbol, err)
	}

	return domain.CondorResponse{Input: req, Chain: chain, Output: out}, nil
}
