package domain

import (
	"fmt"
	"math"
)

// StrikeRange es un par de índices (izquierda, derecha) de la cadena.
type StrikeRange struct {
	Left  int
	Right int
}

// Condor es una condor encontrada. Solo geometría de índices: en este alcance
// no se calcula ninguna métrica de precio.
type Condor struct {
	OuterLeft  int
	InnerLeft  int
	InnerRight int
	OuterRight int
}

// ScanCondors busca condors alrededor de los dos strikes que rodean al target.
//
// Paso A: el par interior es (body, body+1). Dos punteros exteriores se abren
// igual que en ScanButterflies, pero la distancia se mide contra el par
// interior fijo: |outerLeft − innerLeft| frente a |outerRight − innerRight|.
// Cada coincidencia añade un rango más ancho a la lista.
//
// Paso B y C: la lista se recorre de fuera hacia dentro y cada rango se
// combina como carcasa exterior con cada rango posterior como interior.
func ScanCondors(chain Chain, target float64) ([]Condor, error) {
	body, err := LocateBody(chain, target)
	if err != nil {
		return nil, fmt.Errorf("domain.ScanCondors: %w", err)
	}
	if body < 1 {
		return nil, fmt.Errorf("domain.ScanCondors: no strike below body %v: %w",
			chain[body].Strike, ErrTargetNotInChain)
	}

	ranges := NestedRanges(chain, body)
	reverseRanges(ranges)
	return CombineRanges(ranges), nil
}

// NestedRanges devuelve el par interior (body, body+1) seguido de todos los
// pares exteriores equidistantes, del más estrecho al más ancho.
func NestedRanges(chain Chain, body int) []StrikeRange {
	inner := StrikeRange{Left: body, Right: body + 1}
	ranges := []StrikeRange{inner}

	innerLeft := chain[inner.Left].Strike
	innerRight := chain[inner.Right].Strike
	left, right := body-1, body+2

	// Igual que en ScanButterflies: llegar al borde de la cadena termina la búsqueda.
	for left >= 0 && right < len(chain) {
		leftDiff := math.Abs(chain[left].Strike - innerLeft)
		rightDiff := math.Abs(chain[right].Strike - innerRight)

		switch {
		case leftDiff < rightDiff:
			left--
		case leftDiff > rightDiff:
			right++
		default:
			ranges = append(ranges, StrikeRange{Left: left, Right: right})
			right++
		}
	}
	return ranges
}

// CombineRanges empareja cada rango x con cada rango y que va después en la
// lista: x aporta las alas exteriores e y las interiores.
// No comprueba que y esté realmente dentro de x; con rangos salidos de
// NestedRanges siempre lo está.
func CombineRanges(ranges []StrikeRange) []Condor {
	var out []Condor
	for i, x := range ranges {
		for _, y := range ranges[i+1:] {
			out = append(out, Condor{
				OuterLeft:  x.Left,
				InnerLeft:  y.Left,
				InnerRight: y.Right,
				OuterRight: x.Right,
			})
		}
	}
	return out
}

func reverseRanges(r []StrikeRange) {
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
}
