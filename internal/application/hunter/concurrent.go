package hunter

// concurrent.go: worker pool para procesar tandas de requests.
//
// Cada request es independiente: normaliza su propia copia de la cadena y no
// comparte estado mutable, así que no hace falta coordinación más allá de
// escribir cada report en su índice.

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/alejandrodnm/spreadhunter/internal/domain"
	"github.com/alejandrodnm/spreadhunter/internal/strategy"
)

// huntConcurrent ejecuta strat sobre todos los requests usando un worker pool.
// El resultado conserva el orden de reqs.
//
// Si workers <= 0 usa runtime.NumCPU() × 2. Si el contexto se cancela se deja
// de despachar; los requests no despachados vuelven con Err = ctx.Err().
func huntConcurrent(
	ctx context.Context,
	strat strategy.Strategy,
	reqs []domain.ScanRequest,
	workers int,
) []domain.Report {
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	if workers > len(reqs) {
		workers = len(reqs)
	}

	type work struct {
		idx int
		req domain.ScanRequest
	}

	reports := make([]domain.Report, len(reqs))
	workCh := make(chan work)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for w := range workCh {
				report, err := strat.Hunt(ctx, w.req)
				if err != nil {
					slog.Debug("hunt failed", "symbol", w.req.Symbol, "err", err)
					report.Err = err
				} else {
					slog.Debug("hunt done", "symbol", w.req.Symbol, "found", report.Found())
				}
				reports[w.idx] = report
			}
		}()
	}

	queued := 0
dispatch:
	for i, req := range reqs {
		select {
		case <-ctx.Done():
			break dispatch
		case workCh <- work{idx: i, req: req}:
			queued++
		}
	}
	close(workCh)
	wg.Wait()

	for i := queued; i < len(reqs); i++ {
		reports[i] = domain.Report{Strategy: strat.Name(), Input: reqs[i], Err: ctx.Err()}
	}

	slog.Debug("concurrent hunt complete",
		"requests", len(reqs),
		"queued", queued,
		"workers", workers,
	)
	return reports
}
