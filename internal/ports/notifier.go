package ports

import (
	"context"

	"github.com/alejandrodnm/spreadhunter/internal/domain"
)

// Notifier presenta los reports de una tanda al usuario.
type Notifier interface {
	// Notify muestra los reports en el orden recibido, incluidos los fallidos.
	// En la implementación de consola, imprime JSON o una tabla por report.
	Notify(ctx context.Context, reports []domain.Report) error
}
