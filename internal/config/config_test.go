package config_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/aco"
	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/internal/config"
	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Ants)
	assert.Equal(t, 100, cfg.Iterations)
	assert.Equal(t, 1.0, cfg.Alpha)
	assert.Equal(t, 1.0, cfg.Beta)
	assert.Equal(t, 0.01, cfg.Rho)
	assert.Equal(t, 10.0, cfg.Q)
	assert.Equal(t, config.StartFromInstance, cfg.Start)
}

func TestLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "aco.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
ants: 20
iterations: "50"
rho: 0.2
start: 3
log_level: debug
log_format: json
`), 0o600))

	cfg, err := config.Load(file)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20, cfg.Ants)
	assert.Equal(t, 50, cfg.Iterations)
	assert.Equal(t, 0.2, cfg.Rho)
	assert.Equal(t, 3, cfg.Start)
	assert.Equal(t, 1.0, cfg.Alpha) // untouched keys keep their defaults
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := config.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("ants: 3\ncolour: blue\n"), 0o600))
	_, err = config.Load(unknown)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("ants: [1\n"), 0o600))
	_, err = config.Load(broken)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"ants":       func(c *config.Config) { c.Ants = 0 },
		"iterations": func(c *config.Config) { c.Iterations = 0 },
		"alpha":      func(c *config.Config) { c.Alpha = -1 },
		"rho":        func(c *config.Config) { c.Rho = 1 },
		"q":          func(c *config.Config) { c.Q = -2 },
		"start":      func(c *config.Config) { c.Start = -5 },
		"workers":    func(c *config.Config) { c.Workers = -1 },
		"log level":  func(c *config.Config) { c.LogLevel = "loud" },
		"log format": func(c *config.Config) { c.LogFormat = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

// TestOptions feeds the converted options to a real colony.
func TestOptions(t *testing.T) {
	dist, err := matrix.NewDenseFromRows([][]float64{
		{0, 1, 2},
		{1, 0, 1},
		{2, 1, 0},
	})
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Iterations = 3
	res, err := aco.Solve(dist, cfg.Options(2)...)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Tour[0])
	assert.Len(t, res.History, 3)

	cfg.Start = 1
	res, err = aco.Solve(dist, cfg.Options(2)...)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Tour[0])
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.LogFormat = "json"
	cfg.LogLevel = "warn"

	logger, err := cfg.Logger(&buf)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
}
