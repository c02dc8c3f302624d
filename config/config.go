package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config es la configuración completa del hunter.
type Config struct {
	Hunter HunterConfig `yaml:"hunter"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// HunterConfig controla qué estrategia se ejecuta y cómo se presentan los resultados.
type HunterConfig struct {
	Strategy  string `yaml:"strategy"`   // butterfly | condor
	Workers   int    `yaml:"workers"`    // 0 = NumCPU*2
	Top       int    `yaml:"top"`        // resultados por request en modo tabla (0 = todos)
	MinShares int64  `yaml:"min_shares"` // descarta butterflies con menos bundles
	SortBy    string `yaml:"sort_by"`    // none | metric | new_metric | max
}

// OutputConfig controla el formato de salida de los reports.
type OutputConfig struct {
	Format string `yaml:"format"` // json | table
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si existe.
// Los valores del .env sobreescriben los del YAML para las keys que correspondan.
// Si path está vacío se usan solo entorno y defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	setDefaults(&cfg)

	return &cfg, nil
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("HUNTER_STRATEGY"); v != "" {
		cfg.Hunter.Strategy = v
	}
	if v := os.Getenv("HUNTER_OUTPUT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("HUNTER_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HUNTER_WORKERS: %w", err)
		}
		cfg.Hunter.Workers = n
	}
	return nil
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if cfg.Hunter.Strategy == "" {
		cfg.Hunter.Strategy = "butterfly"
	}
	if cfg.Hunter.SortBy == "" {
		cfg.Hunter.SortBy = "none"
	}
	if cfg.Hunter.Workers < 0 {
		cfg.Hunter.Workers = 0
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "json"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
