package filesource

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alejandrodnm/spreadhunter/internal/adapters/wire"
	"github.com/alejandrodnm/spreadhunter/internal/domain"
	"golang.org/x/sync/errgroup"
)

// maxOpenFiles limita las lecturas concurrentes.
const maxOpenFiles = 8

// Source implementa ports.RequestSource leyendo ficheros JSON.
// Cada fichero contiene un request o un array de requests.
// Sin paths, lee un único documento de stdin.
type Source struct {
	paths []string
	stdin io.Reader
}

// New crea un Source para los paths dados.
func New(paths []string) *Source {
	return &Source{paths: paths, stdin: os.Stdin}
}

// NewReader crea un Source que lee de r. Usado en tests.
func NewReader(r io.Reader) *Source {
	return &Source{stdin: r}
}

// Requests implementa ports.RequestSource. Los ficheros se leen en paralelo,
// pero los requests salen en el orden de los paths y, dentro de cada fichero,
// en el orden del array. El primer error cancela el resto.
func (s *Source) Requests(ctx context.Context) ([]domain.ScanRequest, error) {
	if len(s.paths) == 0 {
		data, err := io.ReadAll(s.stdin)
		if err != nil {
			return nil, fmt.Errorf("filesource.Requests: read stdin: %w", err)
		}
		reqs, err := wire.DecodeRequests(data)
		if err != nil {
			return nil, fmt.Errorf("filesource.Requests: stdin: %w", err)
		}
		return reqs, nil
	}

	perFile := make([][]domain.ScanRequest, len(s.paths))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(maxOpenFiles)
	for i, path := range s.paths {
		i, path := i, path
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("filesource.Requests: read %q: %w", path, err)
			}
			reqs, err := wire.DecodeRequests(data)
			if err != nil {
				return fmt.Errorf("filesource.Requests: %q: %w", path, err)
			}
			perFile[i] = reqs
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var all []domain.ScanRequest
	for _, reqs := range perFile {
		all = append(all, reqs...)
	}
	return all, nil
}
