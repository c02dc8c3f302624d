// Package embed es la superficie que se expone a un host externo (un binding de
// otro lenguaje, un plugin): recibe símbolo, target y la cadena como JSON, y
// devuelve la respuesta como JSON. Cualquier fallo se aplana en Problem.
package embed

import (
	"log/slog"

	"github.com/alejandrodnm/spreadhunter/internal/adapters/wire"
	"github.com/alejandrodnm/spreadhunter/internal/application/facade"
	"github.com/alejandrodnm/spreadhunter/internal/domain"
)

// Problem es la respuesta opaca para cualquier error de decode o de búsqueda.
const Problem = "There was a problem"

// HuntForCallButterflies busca butterflies y devuelve la respuesta serializada.
// jsonChain es un array de {"strike", "price"}.
func HuntForCallButterflies(symbol string, target float64, jsonChain string) string {
	req, ok := buildRequest(symbol, target, jsonChain)
	if !ok {
		return Problem
	}

	resp, err := facade.FindCallButterflies(req)
	if err != nil {
		slog.Debug("embed: butterfly hunt failed", "symbol", symbol, "err", err)
		return Problem
	}

	out, err := wire.EncodeButterflies(resp)
	if err != nil {
		slog.Debug("embed: encode failed", "symbol", symbol, "err", err)
		return Problem
	}
	return string(out)
}

// HuntForCallCondors busca condors y devuelve la respuesta serializada.
func HuntForCallCondors(symbol string, target float64, jsonChain string) string {
	req, ok := buildRequest(symbol, target, jsonChain)
	if !ok {
		return Problem
	}

	resp, err := facade.FindCallCondors(req)
	if err != nil {
		slog.Debug("embed: condor hunt failed", "symbol", symbol, "err", err)
		return Problem
	}

	out, err := wire.EncodeCondors(resp)
	if err != nil {
		slog.Debug("embed: encode failed", "symbol", symbol, "err", err)
		return Problem
	}
	return string(out)
}

func buildRequest(symbol string, target float64, jsonChain string) (domain.ScanRequest, bool) {
	chain, err := wire.DecodeChain([]byte(jsonChain))
	if err != nil {
		slog.Debug("embed: bad chain", "symbol", symbol, "err", err)
		return domain.ScanRequest{}, false
	}
	return domain.ScanRequest{Symbol: symbol, Target: target, Chain: chain}, true
}
