package hunter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alejandrodnm/spreadhunter/internal/domain"
	"github.com/alejandrodnm/spreadhunter/internal/ports"
	"github.com/alejandrodnm/spreadhunter/internal/strategy"
	"github.com/google/uuid"
)

// Config contiene la configuración del hunter.
type Config struct {
	Workers int // goroutines para procesar requests en paralelo (0 = NumCPU*2)
	Filter  FilterConfig
}

// Summary resume una tanda.
type Summary struct {
	RunID    string
	Requests int
	Failed   int
	Found    int
}

// Hunter es el orquestador: carga requests, ejecuta la estrategia sobre cada
// uno, aplica el filtro de presentación y notifica.
type Hunter struct {
	cfg      Config
	source   ports.RequestSource
	notifier ports.Notifier
	strategy strategy.Strategy
	filter   *Filter
}

// New crea un Hunter con todas las dependencias inyectadas.
// La strategy se resuelve desde fuera (cmd/) contra el Registry.
func New(
	cfg Config,
	source ports.RequestSource,
	notifier ports.Notifier,
	strat strategy.Strategy,
) *Hunter {
	return &Hunter{
		cfg:      cfg,
		source:   source,
		notifier: notifier,
		strategy: strat,
		filter:   NewFilter(cfg.Filter),
	}
}

// Run ejecuta una tanda completa: source → hunt → filter → notify.
// Los requests fallidos no abortan la tanda; quedan en el report con Err.
func (h *Hunter) Run(ctx context.Context) (Summary, error) {
	start := time.Now()
	runID := uuid.New().String()
	log := slog.With("run_id", runID, "strategy", h.strategy.Name())

	reqs, err := h.source.Requests(ctx)
	if err != nil {
		return Summary{RunID: runID}, fmt.Errorf("hunter.Run: load requests: %w", err)
	}
	log.Debug("requests loaded", "count", len(reqs))

	reports := h.Hunt(ctx, reqs)
	summary := summarize(runID, reports)

	for _, r := range reports {
		if r.Err != nil {
			log.Warn("request failed", "symbol", r.Input.Symbol, "target", r.Input.Target, "err", r.Err)
		}
	}

	if err := h.notifier.Notify(ctx, h.filter.Apply(reports)); err != nil {
		log.Warn("notifier error", "err", err)
	}

	log.Info("hunt complete",
		"requests", summary.Requests,
		"failed", summary.Failed,
		"found", summary.Found,
		"duration", time.Since(start).Round(time.Millisecond),
	)

	if err := ctx.Err(); err != nil {
		return summary, fmt.Errorf("hunter.Run: %w", err)
	}
	return summary, nil
}

// Hunt ejecuta la estrategia sobre cada request y devuelve un report por
// request, en el mismo orden. No filtra ni notifica.
func (h *Hunter) Hunt(ctx context.Context, reqs []domain.ScanRequest) []domain.Report {
	return huntConcurrent(ctx, h.strategy, reqs, h.cfg.Workers)
}

func summarize(runID string, reports []domain.Report) Summary {
	s := Summary{RunID: runID, Requests: len(reports)}
	for _, r := range reports {
		if r.Err != nil {
			s.Failed++
			continue
		}
		s.Found += r.Found()
	}
	return s
}
