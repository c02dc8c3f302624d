package ports

import (
	"context"

	"github.com/alejandrodnm/spreadhunter/internal/domain"
)

// RequestSource obtiene los ScanRequests a procesar en una tanda.
type RequestSource interface {
	// Requests devuelve todos los requests disponibles, en orden estable.
	Requests(ctx context.Context) ([]domain.ScanRequest, error)
}
