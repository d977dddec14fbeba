// Package config holds the solver's run configuration: hyperparameters,
// seed, parallelism and logging, with defaults, a YAML file layer and
// validation. Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/aco"
)

// ErrInvalidConfig is returned for unreadable or out-of-range configuration.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// StartFromInstance means "use the instance's own start node".
const StartFromInstance = -1

// Config is the full run configuration. Field names double as the YAML keys.
type Config struct {
	Ants       int     `mapstructure:"ants"`
	Iterations int     `mapstructure:"iterations"`
	Alpha      float64 `mapstructure:"alpha"`
	Beta       float64 `mapstructure:"beta"`
	Rho        float64 `mapstructure:"rho"`
	Q          float64 `mapstructure:"q"`
	Start      int     `mapstructure:"start"`
	Seed       int64   `mapstructure:"seed"`
	Workers    int     `mapstructure:"workers"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Default returns the reference parameters with the instance's start node,
// seed 0 (fixed default stream), serial construction and info-level text logs.
func Default() Config {
	return Config{
		Ants:       aco.DefaultAnts,
		Iterations: aco.DefaultIterations,
		Alpha:      aco.DefaultAlpha,
		Beta:       aco.DefaultBeta,
		Rho:        aco.DefaultRho,
		Q:          aco.DefaultQ,
		Start:      StartFromInstance,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load returns Default() overlaid with the YAML file at path.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	raw := map[string]any{}
	if err = yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if err = Decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Decode overlays raw onto cfg. Values are weakly typed ("10" is accepted
// for an int); unknown keys are rejected.
func Decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	if err = dec.Decode(raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Validate checks ranges that do not depend on the instance. The solver
// re-validates hyperparameters together with the matrix.
func (c Config) Validate() error {
	switch {
	case c.Ants < 1:
		return fmt.Errorf("%w: ants must be >= 1 (got %d)", ErrInvalidConfig, c.Ants)
	case c.Iterations < 1:
		return fmt.Errorf("%w: iterations must be >= 1 (got %d)", ErrInvalidConfig, c.Iterations)
	case c.Alpha < 0 || c.Beta < 0:
		return fmt.Errorf("%w: alpha and beta must be >= 0", ErrInvalidConfig)
	case c.Rho < 0 || c.Rho >= 1:
		return fmt.Errorf("%w: rho must be in [0, 1) (got %g)", ErrInvalidConfig, c.Rho)
	case c.Q < 0:
		return fmt.Errorf("%w: q must be >= 0 (got %g)", ErrInvalidConfig, c.Q)
	case c.Start < StartFromInstance:
		return fmt.Errorf("%w: start must be >= 0 (got %d)", ErrInvalidConfig, c.Start)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must be >= 0 (got %d)", ErrInvalidConfig, c.Workers)
	}
	if _, err := c.slogLevel(); err != nil {
		return err
	}
	if f := strings.ToLower(c.LogFormat); f != "text" && f != "json" {
		return fmt.Errorf("%w: log_format must be text or json (got %q)", ErrInvalidConfig, c.LogFormat)
	}

	return nil
}

// Options converts the configuration into solver options for an instance
// whose own start node is instanceStart.
func (c Config) Options(instanceStart int) []aco.Option {
	start := c.Start
	if start == StartFromInstance {
		start = instanceStart
	}

	return []aco.Option{
		aco.WithStart(start),
		aco.WithAnts(c.Ants),
		aco.WithIterations(c.Iterations),
		aco.WithAlpha(c.Alpha),
		aco.WithBeta(c.Beta),
		aco.WithRho(c.Rho),
		aco.WithQ(c.Q),
		aco.WithSeed(c.Seed),
		aco.WithWorkers(c.Workers),
	}
}

// Logger builds the slog.Logger described by LogLevel and LogFormat.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := c.slogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func (c Config) slogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}

	return level, nil
}
