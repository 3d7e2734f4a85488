// Package config loads the command-line tool's settings from YAML (or JSON)
// files and CLOSESTPAIR_* environment variables, merges them over the
// defaults and validates the result.
//
// Priority, lowest to highest: Defaults, config file, environment, flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/closestpair"
	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/internal/pointio"
)

// ErrInvalidConfig indicates a config value outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds every tunable of the tool. Zero values (and nil pointers)
// mean "not set" so that Merge can layer partial configs.
type Config struct {
	Window    int    `yaml:"window"`
	EarlyExit *bool  `yaml:"early_exit"`
	LeafSize  int    `yaml:"leaf_size"`
	Precision int    `yaml:"precision"`
	LogLevel  string `yaml:"log_level"`
	Format    string `yaml:"format"`
}

// DefaultPrecision is the number of decimals printed for a distance.
const DefaultPrecision = 6

// Defaults returns the reference configuration.
func Defaults() Config {
	o := closestpair.DefaultOptions()
	return Config{
		Window:    o.Window,
		EarlyExit: boolPtr(o.EarlyExit),
		LeafSize:  o.LeafSize,
		Precision: DefaultPrecision,
		LogLevel:  "info",
		Format:    "auto",
	}
}

// Load decodes a config from raw bytes when given, else from the file at
// path. Unknown keys are rejected.
func Load(path string, raw []byte) (Config, error) {
	var cfg Config
	var r io.Reader
	switch {
	case len(raw) > 0:
		r = bytes.NewReader(raw)
	case path != "":
		f, err := os.Open(path)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		r = f
	default:
		return cfg, errors.New("config: no source provided")
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, nil
}

// Merge overlays the set fields of over onto base.
func Merge(base, over Config) Config {
	out := base
	if over.Window != 0 {
		out.Window = over.Window
	}
	if over.EarlyExit != nil {
		out.EarlyExit = boolPtr(*over.EarlyExit)
	}
	if over.LeafSize != 0 {
		out.LeafSize = over.LeafSize
	}
	if over.Precision != 0 {
		out.Precision = over.Precision
	}
	if over.LogLevel != "" {
		out.LogLevel = over.LogLevel
	}
	if over.Format != "" {
		out.Format = over.Format
	}

	return out
}

// Env variable names read by FromEnv.
const (
	EnvConfigFile = "CLOSESTPAIR_CONFIG"
	EnvWindow     = "CLOSESTPAIR_WINDOW"
	EnvEarlyExit  = "CLOSESTPAIR_EARLY_EXIT"
	EnvLeafSize   = "CLOSESTPAIR_LEAF_SIZE"
	EnvPrecision  = "CLOSESTPAIR_PRECISION"
	EnvLogLevel   = "CLOSESTPAIR_LOG_LEVEL"
)

// FromEnv builds a partial config from environment entries ("KEY=value").
func FromEnv(environ []string) (Config, error) {
	var cfg Config
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(k, "CLOSESTPAIR_") {
			continue
		}
		v = strings.TrimSpace(v)
		var err error
		switch k {
		case EnvWindow:
			cfg.Window, err = strconv.Atoi(v)
		case EnvLeafSize:
			cfg.LeafSize, err = strconv.Atoi(v)
		case EnvPrecision:
			cfg.Precision, err = strconv.Atoi(v)
		case EnvEarlyExit:
			var b bool
			b, err = strconv.ParseBool(v)
			cfg.EarlyExit = boolPtr(b)
		case EnvLogLevel:
			cfg.LogLevel = v
		}
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q: %w", k, v, ErrInvalidConfig)
		}
	}

	return cfg, nil
}

// Validate checks ranges: Window ≥ 7, LeafSize ≥ 1, Precision in [1,17],
// a known log level and a known input format.
func (c Config) Validate() error {
	if c.Window < closestpair.ProvableWindow {
		return fmt.Errorf("window=%d below %d: %w", c.Window, closestpair.ProvableWindow, ErrInvalidConfig)
	}
	if c.LeafSize < 1 {
		return fmt.Errorf("leaf_size=%d below 1: %w", c.LeafSize, ErrInvalidConfig)
	}
	if c.Precision < 1 || c.Precision > 17 {
		return fmt.Errorf("precision=%d outside [1,17]: %w", c.Precision, ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level=%q: %w", c.LogLevel, ErrInvalidConfig)
	}
	if _, err := pointio.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("format: %v: %w", err, ErrInvalidConfig)
	}

	return nil
}

// Options converts the solver-related fields to closestpair.Options.
func (c Config) Options() closestpair.Options {
	o := closestpair.Options{Window: c.Window, LeafSize: c.LeafSize}
	if c.EarlyExit != nil {
		o.EarlyExit = *c.EarlyExit
	}

	return o
}

func boolPtr(b bool) *bool { return &b }
