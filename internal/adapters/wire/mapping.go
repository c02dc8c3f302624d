package wire

import (
	"fmt"

	"github.com/alejandrodnm/spreadhunter/internal/domain"
)

// mapRawRequest convierte el request decodificado a domain.ScanRequest.
// symbol puede faltar; target y cada strike/price son obligatorios.
func mapRawRequest(r rawRequest) (domain.ScanRequest, error) {
	if r.Target == nil {
		return domain.ScanRequest{}, fmt.Errorf("missing target")
	}
	chain, err := mapRawChain(r.Chain)
	if err != nil {
		return domain.ScanRequest{}, err
	}
	return domain.ScanRequest{
		Symbol: r.Symbol,
		Target: *r.Target,
		Chain:  chain,
	}, nil
}

// mapRawChain convierte los items crudos; el orden se conserva.
func mapRawChain(raw []rawChainItem) ([]domain.ChainItem, error) {
	items := make([]domain.ChainItem, 0, len(raw))
	for i, it := range raw {
		if it.Strike == nil || it.Price == nil {
			return nil, fmt.Errorf("chain[%d]: strike and price are required", i)
		}
		items = append(items, domain.ChainItem{Strike: *it.Strike, Price: *it.Price})
	}
	return items, nil
}

func toRequestDTO(req domain.ScanRequest) requestDTO {
	chain := make([]chainItemDTO, 0, len(req.Chain))
	for _, it := range req.Chain {
		chain = append(chain, chainItemDTO{Strike: number(it.Strike), Price: number(it.Price)})
	}
	return requestDTO{
		Symbol: req.Symbol,
		Target: number(req.Target),
		Chain:  chain,
	}
}

func toButterflyDTO(b domain.Butterfly) butterflyDTO {
	return butterflyDTO{
		Context: contextDTO{Left: b.Left, Right: b.Right},
		Space: spaceDTO{
			MaxLossLower:   number(b.Space.MaxLossLower),
			BreakevenLower: number(b.Space.BreakevenLower),
			Target:         number(b.Space.Target),
			BreakevenUpper: number(b.Space.BreakevenUpper),
			MaxLossUpper:   number(b.Space.MaxLossUpper),
		},
		VariableOnSize: variableOnSizeDTO{
			CostPerBundle: number(b.VariableOnSize.CostPerBundle),
			MaxGain:       number(b.VariableOnSize.MaxGain),
			GainPerCost:   number(b.VariableOnSize.GainPerCost),
		},
		Fixed: fixedDTO{
			BreakevenRange: number(b.Fixed.BreakevenRange),
			RangeToTarget:  number(b.Fixed.RangeToTarget),
			Slope:          number(b.Fixed.Slope),
		},
		Metric:    number(b.Metric),
		NewMetric: number(b.NewMetric),
		Shares:    b.Shares,
		Max:       number(b.Max),
	}
}

func toCondorDTO(c domain.Condor) condorDTO {
	return condorDTO{Context: condorContextDTO{
		Left:   c.OuterLeft,
		ILeft:  c.InnerLeft,
		IRight: c.InnerRight,
		Right:  c.OuterRight,
	}}
}

func toButterflyResponseDTO(resp domain.ButterflyResponse) butterflyResponseDTO {
	out := make([]butterflyDTO, 0, len(resp.Output))
	for _, b := range resp.Output {
		out = append(out, toButterflyDTO(b))
	}
	return butterflyResponseDTO{Input: toRequestDTO(resp.Input), Output: out}
}

func toCondorResponseDTO(resp domain.CondorResponse) condorResponseDTO {
	out := make([]condorDTO, 0, len(resp.Output))
	for _, c := range resp.Output {
		out = append(out, toCondorDTO(c))
	}
	return condorResponseDTO{Input: toRequestDTO(resp.Input), Output: out}
}
