// Package config assembles lvtsp run settings.
//
// Values are layered with increasing priority: built-in defaults, an
// optional YAML file, LVTSP_* environment variables. The merged result is
// checked with struct-tag validation before use. Command-line flags are
// applied by the CLI on top of a loaded Config.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtsp/tsp"
)

// AlgorithmAll runs every strategy on the same instance.
const AlgorithmAll = "all"

// Environment variables read by Load.
const (
	EnvAlgorithm      = "LVTSP_ALGORITHM"
	EnvTimeLimit      = "LVTSP_TIME_LIMIT"
	EnvMaxFrontier    = "LVTSP_MAX_FRONTIER"
	EnvSeed           = "LVTSP_SEED"
	EnvRandomAttempts = "LVTSP_RANDOM_ATTEMPTS"
	EnvInstance       = "LVTSP_INSTANCE"
	EnvLogLevel       = "LVTSP_LOG_LEVEL"
	EnvLogFormat      = "LVTSP_LOG_FORMAT"
)

var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid")
	// ErrEnv is returned when an LVTSP_* variable cannot be parsed.
	ErrEnv = errors.New("config: bad environment value")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the merged run configuration.
type Config struct {
	Algorithm      string        `yaml:"algorithm" validate:"required,oneof=random greedy insertion bnb all"`
	TimeLimit      time.Duration `yaml:"time_limit" validate:"gte=0"`
	MaxFrontier    int           `yaml:"max_frontier" validate:"min=1"`
	Seed           int64         `yaml:"seed"`
	RandomAttempts int           `yaml:"random_attempts" validate:"min=1"`
	Instance       string        `yaml:"instance"`
	Metrics        bool          `yaml:"metrics"`
	Log            Log           `yaml:"log"`
}

// Log configures the CLI logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default mirrors tsp.DefaultOptions.
func Default() Config {
	d := tsp.DefaultOptions()

	return Config{
		Algorithm:      d.Algo.String(),
		TimeLimit:      d.TimeLimit,
		MaxFrontier:    d.MaxFrontier,
		Seed:           d.Seed,
		RandomAttempts: d.RandomAttempts,
		Log:            Log{Level: "info", Format: "text"},
	}
}

// Load merges defaults, the YAML file at path (skipped when path is empty)
// and the environment, then validates.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrEnv, key, v)
		}
		*dst = i
		return nil
	}

	str(EnvAlgorithm, &cfg.Algorithm)
	str(EnvInstance, &cfg.Instance)
	str(EnvLogLevel, &cfg.Log.Level)
	str(EnvLogFormat, &cfg.Log.Format)

	if v, ok := lookup(EnvTimeLimit); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrEnv, EnvTimeLimit, v)
		}
		cfg.TimeLimit = d
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrEnv, EnvSeed, v)
		}
		cfg.Seed = s
	}
	if err := num(EnvMaxFrontier, &cfg.MaxFrontier); err != nil {
		return err
	}

	return num(EnvRandomAttempts, &cfg.RandomAttempts)
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Algorithms expands the algorithm setting; "all" yields every strategy,
// constructive ones first.
func (c Config) Algorithms() ([]tsp.Algorithm, error) {
	if c.Algorithm == AlgorithmAll {
		return []tsp.Algorithm{tsp.RandomTour, tsp.Greedy, tsp.CheapestInsertion, tsp.BranchAndBound}, nil
	}
	a, err := tsp.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return nil, err
	}

	return []tsp.Algorithm{a}, nil
}

// Options converts the search settings for one algorithm. Logger and Hooks
// are left for the caller.
func (c Config) Options(algo tsp.Algorithm) tsp.Options {
	return tsp.Options{
		Algo:           algo,
		TimeLimit:      c.TimeLimit,
		MaxFrontier:    c.MaxFrontier,
		Seed:           c.Seed,
		RandomAttempts: c.RandomAttempts,
	}
}
