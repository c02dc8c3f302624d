package strategy

import (
	"context"
	"fmt"
	"sort"

	"github.com/alejandrodnm/spreadhunter/internal/domain"
)

// Strategy define el contrato para buscar una estructura de spread en una cadena.
// Cada estrategia encapsula un scanner distinto.
type Strategy interface {
	// Name devuelve el identificador único de la estrategia.
	Name() string

	// Hunt ejecuta la búsqueda sobre el request y devuelve un Report con los
	// resultados y la cadena normalizada. Devuelve error si el request no se
	// puede escanear; en ese caso no hay resultados parciales.
	Hunt(ctx context.Context, req domain.ScanRequest) (domain.Report, error)
}

// Registry mantiene las estrategias disponibles indexadas por nombre.
type Registry map[string]Strategy

// NewRegistry crea un registry vacío.
func NewRegistry() Registry {
	return make(Registry)
}

// DefaultRegistry devuelve un registry con butterfly y condor registradas.
func DefaultRegistry() Registry {
	r := NewRegistry()
	r.Register(NewButterfly())
	r.Register(NewCondor())
	return r
}

// Register añade una estrategia al registry.
func (r Registry) Register(s Strategy) {
	r[s.Name()] = s
}

// Get devuelve la estrategia por nombre.
func (r Registry) Get(name string) (Strategy, bool) {
	s, ok := r[name]
	return s, ok
}

// Lookup devuelve la estrategia o un error que lista los nombres válidos.
func (r Registry) Lookup(name string) (Strategy, error) {
	if s, ok := r.Get(name); ok {
		return s, nil
	}
	return nil, fmt.Errorf("strategy: unknown %q (available: %v)", name, r.Names())
}

// Names devuelve los nombres registrados en orden alfabético.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for n := range r {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
