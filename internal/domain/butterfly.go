package domain

import (
	"fmt"
	"math"
)

// ScanButterflies busca butterflies balanceadas alrededor del strike más
// cercano al target.
//
// Dos punteros salen del body hacia fuera. Si el ala izquierda está más cerca
// del body que la derecha, se abre la izquierda; si está más lejos, se abre la
// derecha. Con distancias iguales se emite una butterfly y solo avanza la
// derecha. El bucle termina cuando cualquiera de los dos punteros sale de la
// cadena. Las butterflies salen de la más estrecha a la más ancha.
//
// La cadena debe venir ordenada y validada (ver NewChain).
func ScanButterflies(chain Chain, target float64) ([]Butterfly, error) {
	body, err := LocateBody(chain, target)
	if err != nil {
		return nil, fmt.Errorf("domain.ScanButterflies: %w", err)
	}
	if body < 1 {
		return nil, fmt.Errorf("domain.ScanButterflies: no strike below body %v: %w",
			chain[body].Strike, ErrTargetNotInChain)
	}

	bodyStrike := chain[body].Strike
	left, right := body-1, body+1

	var out []Butterfly
	// Salir de la cadena por cualquier lado termina la búsqueda, no es un error.
	for left >= 0 && right < len(chain) {
		leftDiff := math.Abs(chain[left].Strike - bodyStrike)
		rightDiff := math.Abs(chain[right].Strike - bodyStrike)

		switch {
		case leftDiff < rightDiff:
			left--
		case leftDiff > rightDiff:
			right++
		default:
			out = append(out, EvaluateButterfly(chain, left, body, right))
			right++
		}
	}
	return out, nil
}
