package domain

import "math"

// BundleBudgetUSD es el capital fijo con el que se calcula cuántos bundles
// se pueden comprar (Shares) y la ganancia máxima total (Max).
const BundleBudgetUSD = 10.0

// Space es el perfil espacial de la posición sobre el precio del subyacente.
type Space struct {
	MaxLossLower   float64 // strike del ala inferior
	BreakevenLower float64
	Target         float64 // strike del body
	BreakevenUpper float64
	MaxLossUpper   float64 // strike del ala superior
}

// VariableOnSize agrupa las magnitudes que escalan con el tamaño de la posición.
type VariableOnSize struct {
	CostPerBundle float64
	MaxGain       float64
	GainPerCost   float64
}

// Fixed agrupa los ratios que no dependen del tamaño.
type Fixed struct {
	BreakevenRange float64
	RangeToTarget  float64
	Slope          float64
}

// Butterfly es una butterfly encontrada: índices de las alas + métricas.
type Butterfly struct {
	Left  int // índice del ala inferior en la cadena ordenada
	Body  int
	Right int // índice del ala superior

	Space          Space
	VariableOnSize VariableOnSize
	Fixed          Fixed

	Metric    float64 // GainPerCost / RangeToTarget
	NewMetric float64 // Metric × Slope
	Shares    int64   // floor(BundleBudgetUSD / cost)
	Max       float64 // floor(BundleBudgetUSD / cost) × MaxGain
}

// --- Funciones de cálculo ---
//
// Convención de coste: peor caso. Compramos las alas al ask y vendemos dos
// bodies al bid. Ningún cálculo protege contra cost <= 0: las divisiones
// producen ±Inf o NaN y se propagan tal cual.

// BundleCost calcula el coste neto de abrir una butterfly (1 ala + 1 ala − 2 bodies).
func BundleCost(left, body, right Contract) float64 {
	return left.Ask.Price + right.Ask.Price - 2*body.Bid.Price
}

// Breakevens devuelve los puntos de breakeven inferior y superior.
func Breakevens(left, right Contract, cost float64) (lower, upper float64) {
	return left.Strike + cost, right.Strike - cost
}

// Slope es coste / anchura del ala izquierda (rise / run).
func Slope(left, body Contract, cost float64) float64 {
	return cost / (body.Strike - left.Strike)
}

// SharesFor devuelve cuántos bundles caben en BundleBudgetUSD.
// Para cost <= 0 el cociente no es finito: +Inf satura a MaxInt64, −Inf a
// MinInt64 y NaN a 0, para que el resultado sea determinista.
func SharesFor(cost float64) int64 {
	n := math.Floor(BundleBudgetUSD / cost)
	switch {
	case math.IsNaN(n):
		return 0
	case n >= math.MaxInt64:
		return math.MaxInt64
	case n <= math.MinInt64:
		return math.MinInt64
	}
	return int64(n)
}

// EvaluateButterfly calcula todas las métricas para las alas (left, right)
// alrededor del body. Los índices se copian tal cual al resultado.
func EvaluateButterfly(chain Chain, left, body, right int) Butterfly {
	l, b, r := chain[left], chain[body], chain[right]

	cost := BundleCost(l, b, r)
	lowerBE, upperBE := Breakevens(l, r, cost)
	slope := Slope(l, b, cost)

	breakevenRange := upperBE - lowerBE
	maxGain := breakevenRange / 2
	gainPerCost := maxGain / cost
	rangeToTarget := breakevenRange / b.Strike
	metric := gainPerCost / rangeToTarget
	bundles := math.Floor(BundleBudgetUSD / cost)

	return Butterfly{
		Left:  left,
		Body:  body,
		Right: right,
		Space: Space{
			MaxLossLower:   l.Strike,
			BreakevenLower: lowerBE,
			Target:         b.Strike,
			BreakevenUpper: upperBE,
			MaxLossUpper:   r.Strike,
		},
		VariableOnSize: VariableOnSize{
			CostPerBundle: cost,
			MaxGain:       maxGain,
			GainPerCost:   gainPerCost,
		},
		Fixed: Fixed{
			BreakevenRange: breakevenRange,
			RangeToTarget:  rangeToTarget,
			Slope:          slope,
		},
		Metric:    metric,
		NewMetric: metric * slope,
		Shares:    SharesFor(cost),
		Max:       bundles * maxGain,
	}
}
