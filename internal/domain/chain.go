package domain

import (
	"fmt"
	"math"
	"sort"
)

// Quote es un lado del libro para un contrato: precio y volumen.
type Quote struct {
	Price  float64
	Volume float64
}

// Contract es una opción call de la cadena: strike + mejor ask y mejor bid.
// Inmutable una vez construido.
type Contract struct {
	Strike float64
	Ask    Quote
	Bid    Quote
}

// NewContract construye un Contract a partir de un único precio cotizado.
// Ask y bid toman el mismo precio y los volúmenes quedan a cero: el input
// actual no trae libro, solo el último precio.
func NewContract(strike, price float64) Contract {
	return Contract{
		Strike: strike,
		Ask:    Quote{Price: price},
		Bid:    Quote{Price: price},
	}
}

// Chain es la cadena de opciones de un vencimiento, ordenada por strike ascendente.
// Todos los scanners asumen este orden.
type Chain []Contract

// ChainItem es un punto (strike, precio) tal como llega del caller.
type ChainItem struct {
	Strike float64
	Price  float64
}

// NewChain normaliza los items del request, los ordena por strike y valida
// la cadena resultante. No modifica items.
func NewChain(items []ChainItem) (Chain, error) {
	chain := make(Chain, 0, len(items))
	for _, it := range items {
		chain = append(chain, NewContract(it.Strike, it.Price))
	}
	sort.SliceStable(chain, func(i, j int) bool {
		return chain[i].Strike < chain[j].Strike
	})
	if err := chain.Validate(); err != nil {
		return nil, err
	}
	return chain, nil
}

// Validate comprueba que todos los strikes y precios son finitos y que los
// strikes son estrictamente crecientes (únicos y ordenados).
func (c Chain) Validate() error {
	for i, ct := range c {
		if !isFinite(ct.Strike) {
			return fmt.Errorf("%w: strike at %d is not finite (%v)", ErrInvalidChain, i, ct.Strike)
		}
		if !isFinite(ct.Ask.Price) || !isFinite(ct.Bid.Price) {
			return fmt.Errorf("%w: price for strike %v is not finite", ErrInvalidChain, ct.Strike)
		}
		if i == 0 {
			continue
		}
		prev := c[i-1].Strike
		switch {
		case ct.Strike == prev:
			return fmt.Errorf("%w: duplicate strike %v", ErrInvalidChain, ct.Strike)
		case ct.Strike < prev:
			return fmt.Errorf("%w: strike %v at %d is below previous %v", ErrInvalidChain, ct.Strike, i, prev)
		}
	}
	return nil
}

// Strikes devuelve los strikes en orden.
func (c Chain) Strikes() []float64 {
	out := make([]float64, len(c))
	for i, ct := range c {
		out[i] = ct.Strike
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
