package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtsp/config"
	"github.com/katalvlaran/lvtsp/tsp"
)

func TestDefault_MatchesEngineDefaults(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	opts := cfg.Options(tsp.BranchAndBound)
	d := tsp.DefaultOptions()
	assert.Equal(t, d.TimeLimit, opts.TimeLimit)
	assert.Equal(t, d.MaxFrontier, opts.MaxFrontier)
	assert.Equal(t, d.RandomAttempts, opts.RandomAttempts)
	assert.Equal(t, "bnb", cfg.Algorithm)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "run.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "greedy", cfg.Algorithm)
	assert.Equal(t, 2*time.Second, cfg.TimeLimit)
	assert.Equal(t, 500, cfg.MaxFrontier)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, tsp.DefaultRandomAttempts, cfg.RandomAttempts, "untouched keys keep defaults")
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv(config.EnvAlgorithm, "bnb")
	t.Setenv(config.EnvTimeLimit, "150ms")
	t.Setenv(config.EnvMaxFrontier, "7")
	t.Setenv(config.EnvSeed, "-3")
	t.Setenv(config.EnvLogLevel, "warn")

	cfg, err := config.Load(filepath.Join("testdata", "run.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "bnb", cfg.Algorithm)
	assert.Equal(t, 150*time.Millisecond, cfg.TimeLimit)
	assert.Equal(t, 7, cfg.MaxFrontier)
	assert.Equal(t, int64(-3), cfg.Seed)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)

	_, err = config.Load(filepath.Join("testdata", "unknown_field.yaml"))
	require.Error(t, err)

	_, err = config.Load(filepath.Join("testdata", "invalid.yaml"))
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoad_BadEnv(t *testing.T) {
	for key, val := range map[string]string{
		config.EnvTimeLimit:      "soon",
		config.EnvMaxFrontier:    "many",
		config.EnvSeed:           "0x",
		config.EnvRandomAttempts: "1.5",
	} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := config.Load("")
			require.ErrorIs(t, err, config.ErrEnv)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.TimeLimit = -time.Second
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)

	cfg = config.Default()
	cfg.Log.Format = "xml"
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)

	cfg = config.Default()
	cfg.TimeLimit = 0
	require.NoError(t, cfg.Validate(), "zero budget is a valid setting")
}

func TestAlgorithms(t *testing.T) {
	cfg := config.Default()
	cfg.Algorithm = config.AlgorithmAll
	algos, err := cfg.Algorithms()
	require.NoError(t, err)
	assert.Equal(t, []tsp.Algorithm{tsp.RandomTour, tsp.Greedy, tsp.CheapestInsertion, tsp.BranchAndBound}, algos)

	cfg.Algorithm = "random"
	algos, err = cfg.Algorithms()
	require.NoError(t, err)
	assert.Equal(t, []tsp.Algorithm{tsp.RandomTour}, algos)

	cfg.Algorithm = "insertion"
	require.NoError(t, cfg.Validate())
	algos, err = cfg.Algorithms()
	require.NoError(t, err)
	assert.Equal(t, []tsp.Algorithm{tsp.CheapestInsertion}, algos)

	cfg.Algorithm = "tabu"
	_, err = cfg.Algorithms()
	require.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)
}
