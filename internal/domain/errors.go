package domain

import "errors"

var (
	// ErrTargetNotInChain indica que el target no cae estrictamente dentro
	// del rango de strikes de la cadena.
	ErrTargetNotInChain = errors.New("target not in chain")

	// ErrInvalidChain indica una cadena con strikes duplicados, desordenados
	// o valores no finitos.
	ErrInvalidChain = errors.New("invalid chain")
)
