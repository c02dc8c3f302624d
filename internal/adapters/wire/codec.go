// Package wire traduce entre el formato JSON de requests/respuestas y los tipos
// de domain.
//
// Request:  {"symbol": "...", "target": 334.97, "chain": [{"strike": 330, "price": 5.59}, ...]}
// Response: {"input": <request>, "output": [<butterfly|condor>, ...]}
//
// Los floats no finitos de la salida se escriben como null.
package wire

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/alejandrodnm/spreadhunter/internal/domain"
)

// DecodeRequest decodifica un único request.
func DecodeRequest(data []byte) (domain.ScanRequest, error) {
	var raw rawRequest
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.ScanRequest{}, fmt.Errorf("wire.DecodeRequest: %w", err)
	}
	req, err := mapRawRequest(raw)
	if err != nil {
		return domain.ScanRequest{}, fmt.Errorf("wire.DecodeRequest: %w", err)
	}
	return req, nil
}

// DecodeRequests acepta un request suelto o un array de requests.
func DecodeRequests(data []byte) ([]domain.ScanRequest, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("wire.DecodeRequests: empty input")
	}
	if trimmed[0] != '[' {
		req, err := DecodeRequest(trimmed)
		if err != nil {
			return nil, err
		}
		return []domain.ScanRequest{req}, nil
	}

	var raws []rawRequest
	if err := json.Unmarshal(trimmed, &raws); err != nil {
		return nil, fmt.Errorf("wire.DecodeRequests: %w", err)
	}
	reqs := make([]domain.ScanRequest, 0, len(raws))
	for i, raw := range raws {
		req, err := mapRawRequest(raw)
		if err != nil {
			return nil, fmt.Errorf("wire.DecodeRequests: request %d: %w", i, err)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// DecodeChain decodifica solo la cadena: un array de {"strike", "price"}.
func DecodeChain(data []byte) ([]domain.ChainItem, error) {
	var raw []rawChainItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("wire.DecodeChain: %w", err)
	}
	items, err := mapRawChain(raw)
	if err != nil {
		return nil, fmt.Errorf("wire.DecodeChain: %w", err)
	}
	return items, nil
}

// EncodeButterflies serializa una respuesta de butterflies.
func EncodeButterflies(resp domain.ButterflyResponse) ([]byte, error) {
	b, err := json.Marshal(toButterflyResponseDTO(resp))
	if err != nil {
		return nil, fmt.Errorf("wire.EncodeButterflies: %w", err)
	}
	return b, nil
}

// EncodeCondors serializa una respuesta de condors.
func EncodeCondors(resp domain.CondorResponse) ([]byte, error) {
	b, err := json.Marshal(toCondorResponseDTO(resp))
	if err != nil {
		return nil, fmt.Errorf("wire.EncodeCondors: %w", err)
	}
	return b, nil
}

// EncodeReport serializa un Report con la forma de respuesta de su estrategia.
// Un report fallido se escribe como {"input": ..., "error": "..."}.
func EncodeReport(r domain.Report) ([]byte, error) {
	if r.Err != nil {
		b, err := json.Marshal(failedReportDTO{Input: toRequestDTO(r.Input), Error: r.Err.Error()})
		if err != nil {
			return nil, fmt.Errorf("wire.EncodeReport: %w", err)
		}
		return b, nil
	}

	switch r.Strategy {
	case domain.StrategyButterfly:
		return EncodeButterflies(domain.ButterflyResponse{Input: r.Input, Output: r.Butterflies})
	case domain.StrategyCondor:
		return EncodeCondors(domain.CondorResponse{Input: r.Input, Output: r.Condors})
	default:
		return nil, fmt.Errorf("wire.EncodeReport: unknown strategy %q", r.Strategy)
	}
}
