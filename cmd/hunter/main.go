package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alejandrodnm/spreadhunter/config"
	"github.com/alejandrodnm/spreadhunter/internal/adapters/filesource"
	"github.com/alejandrodnm/spreadhunter/internal/adapters/notify"
	"github.com/alejandrodnm/spreadhunter/internal/application/hunter"
	"github.com/alejandrodnm/spreadhunter/internal/strategy"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	strategyName := flag.String("strategy", "", "strategy: butterfly|condor (overrides config)")
	format := flag.String("format", "", "output format: json|table (overrides config)")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("log-format", "", "log format: text|json (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	if *strategyName != "" {
		cfg.Hunter.Strategy = *strategyName
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	setupLogger(cfg.Log)

	strat, err := strategy.DefaultRegistry().Lookup(cfg.Hunter.Strategy)
	if err != nil {
		slog.Error("unknown strategy", "err", err)
		os.Exit(1)
	}

	if cfg.Output.Format != notify.FormatJSON && cfg.Output.Format != notify.FormatTable {
		slog.Error("unknown output format", "format", cfg.Output.Format)
		os.Exit(1)
	}

	huntCfg := hunter.Config{Workers: cfg.Hunter.Workers}
	// JSON sale tal cual lo devuelve el scanner; el ranking es solo para tabla.
	if cfg.Output.Format == notify.FormatTable {
		sortBy, err := hunter.ParseSortKey(cfg.Hunter.SortBy)
		if err != nil {
			slog.Error("invalid sort key", "err", err)
			os.Exit(1)
		}
		huntCfg.Filter = hunter.FilterConfig{
			MinShares: cfg.Hunter.MinShares,
			SortBy:    sortBy,
			Top:       cfg.Hunter.Top,
		}
	}

	slog.Debug("spreadhunter starting",
		"config", *configPath,
		"strategy", strat.Name(),
		"format", cfg.Output.Format,
		"files", flag.NArg(),
	)

	var source *filesource.Source
	if flag.NArg() > 0 {
		source = filesource.New(flag.Args())
	} else {
		source = filesource.NewReader(os.Stdin)
	}
	notifier := notify.NewConsole(cfg.Output.Format)

	h := hunter.New(huntCfg, source, notifier, strat)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	summary, err := h.Run(ctx)
	if err != nil {
		slog.Error("hunter exited with error", "err", err, "run_id", summary.RunID)
		os.Exit(1)
	}
	if summary.Requests > 0 && summary.Failed == summary.Requests {
		os.Exit(1)
	}
}

// setupLogger escribe a stderr para no mezclar logs con el JSON de stdout.
func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
