package wire

import (
	"encoding/json"
	"math"
)

// DTOs del formato JSON de requests y respuestas. Solo se usan dentro de este
// paquete; la conversión a domain se hace en mapping.go.

// number es un float64 que se serializa como null cuando no es finito.
// encoding/json rechaza NaN e Inf, y un cost <= 0 los produce.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// --- Request ---

type requestDTO struct {
	Symbol string         `json:"symbol"`
	Target number         `json:"target"`
	Chain  []chainItemDTO `json:"chain"`
}

type chainItemDTO struct {
	Strike number `json:"strike"`
	Price  number `json:"price"`
}

// rawRequest y rawChainItem se usan al decodificar: number no implementa
// UnmarshalJSON y null debe fallar en vez de convertirse en 0.
type rawRequest struct {
	Symbol string         `json:"symbol"`
	Target *float64       `json:"target"`
	Chain  []rawChainItem `json:"chain"`
}

type rawChainItem struct {
	Strike *float64 `json:"strike"`
	Price  *float64 `json:"price"`
}

// --- Butterfly ---

type butterflyResponseDTO struct {
	Input  requestDTO     `json:"input"`
	Output []butterflyDTO `json:"output"`
}

type butterflyDTO struct {
	Context        contextDTO        `json:"context"`
	Space          spaceDTO          `json:"space"`
	VariableOnSize variableOnSizeDTO `json:"variable_on_size"`
	Fixed          fixedDTO          `json:"fixed"`
	Metric         number            `json:"metric"`
	NewMetric      number            `json:"new_metric"`
	Shares         int64             `json:"shares"`
	Max            number            `json:"max"`
}

type contextDTO struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

type spaceDTO struct {
	MaxLossLower   number `json:"max_loss_lower"`
	BreakevenLower number `json:"breakeven_lower"`
	Target         number `json:"target"`
	BreakevenUpper number `json:"breakeven_upper"`
	MaxLossUpper   number `json:"max_loss_upper"`
}

type variableOnSizeDTO struct {
	CostPerBundle number `json:"cost_per_bundle"`
	MaxGain       number `json:"max_gain"`
	GainPerCost   number `json:"gain_per_cost"`
}

type fixedDTO struct {
	BreakevenRange number `json:"breakeven_range"`
	RangeToTarget  number `json:"range_to_target"`
	Slope          number `json:"slope"`
}

// --- Condor ---

type condorResponseDTO struct {
	Input  requestDTO  `json:"input"`
	Output []condorDTO `json:"output"`
}

type condorDTO struct {
	Context condorContextDTO `json:"context"`
}

type condorContextDTO struct {
	Left   int `json:"left"`
	ILeft  int `json:"ileft"`
	IRight int `json:"iright"`
	Right  int `json:"right"`
}

// --- Error ---

// failedReportDTO es la línea que se emite para un request que falló.
type failedReportDTO struct {
	Input requestDTO `json:"input"`
	Error string     `json:"error"`
}
