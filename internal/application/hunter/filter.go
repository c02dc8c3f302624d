package hunter

import (
	"fmt"
	"math"
	"sort"

	"github.com/alejandrodnm/spreadhunter/internal/domain"
)

// SortKey es la métrica por la que se ordenan las butterflies al presentarlas.
type SortKey string

const (
	SortNone      SortKey = "none"
	SortMetric    SortKey = "metric"
	SortNewMetric SortKey = "new_metric"
	SortMax       SortKey = "max"
)

// ParseSortKey valida un nombre de SortKey. Vacío equivale a SortNone.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case "", SortNone:
		return SortNone, nil
	case SortMetric, SortNewMetric, SortMax:
		return k, nil
	default:
		return "", fmt.Errorf("hunter: unknown sort key %q", s)
	}
}

// FilterConfig contiene los parámetros de presentación. El valor cero no
// cambia nada: mismo orden y todos los resultados.
type FilterConfig struct {
	// MinShares descarta butterflies que compran menos bundles que esto.
	MinShares int64
	// SortBy ordena las butterflies de mayor a menor por esta métrica.
	SortBy SortKey
	// Top limita los resultados por report (0 = sin límite).
	Top int
}

// Filter aplica el FilterConfig sobre los reports de una tanda.
type Filter struct {
	cfg FilterConfig
}

// NewFilter crea un Filter con la configuración dada.
func NewFilter(cfg FilterConfig) *Filter {
	return &Filter{cfg: cfg}
}

// Apply devuelve copias de los reports con los resultados filtrados,
// ordenados y recortados. Los reports fallidos pasan intactos.
func (f *Filter) Apply(reports []domain.Report) []domain.Report {
	out := make([]domain.Report, 0, len(reports))
	for _, r := range reports {
		if r.Err == nil {
			r.Butterflies = f.butterflies(r.Butterflies)
			r.Condors = f.condors(r.Condors)
		}
		out = append(out, r)
	}
	return out
}

func (f *Filter) butterflies(in []domain.Butterfly) []domain.Butterfly {
	if in == nil {
		return nil
	}
	kept := make([]domain.Butterfly, 0, len(in))
	for _, b := range in {
		if f.cfg.MinShares > 0 && b.Shares < f.cfg.MinShares {
			continue
		}
		kept = append(kept, b)
	}

	if key := f.cfg.SortBy; key != "" && key != SortNone {
		sort.SliceStable(kept, func(i, j int) bool {
			return descending(sortValue(kept[i], key), sortValue(kept[j], key))
		})
	}
	return truncate(kept, f.cfg.Top)
}

func (f *Filter) condors(in []domain.Condor) []domain.Condor {
	if in == nil {
		return nil
	}
	return truncate(append([]domain.Condor(nil), in...), f.cfg.Top)
}

func sortValue(b domain.Butterfly, key SortKey) float64 {
	switch key {
	case SortMetric:
		return b.Metric
	case SortNewMetric:
		return b.NewMetric
	case SortMax:
		return b.Max
	}
	return 0
}

// descending ordena de mayor a menor con NaN al final.
func descending(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}
	return a > b
}

func truncate[T any](s []T, top int) []T {
	if top > 0 && len(s) > top {
		return s[:top]
	}
	return s
}
