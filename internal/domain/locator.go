package domain

import "math"

// LocateBody devuelve el índice del contrato más cercano al target sin pasarse.
//
// Recorre la cadena de izquierda a derecha llevando la distancia mínima vista.
// Mientras la distancia baja sigue avanzando; en cuanto sube, el índice anterior
// es la respuesta. Un empate exacto con la mínima no cuenta como subida, así que
// un target justo entre dos strikes resuelve al de arriba si el siguiente se aleja.
//
// Si la distancia nunca sube (target en o más allá del último strike, o cadena
// con menos de dos contratos) devuelve ErrTargetNotInChain.
func LocateBody(chain Chain, target float64) (int, error) {
	minDistance := math.Inf(1)
	for i, ct := range chain {
		delta := math.Abs(target - ct.Strike)
		switch {
		case delta < minDistance:
			minDistance = delta
		case delta > minDistance:
			return i - 1, nil
		}
	}
	return 0, ErrTargetNotInChain
}
