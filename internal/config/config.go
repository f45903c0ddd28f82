// SPDX-License-Identifier: MIT

// Package config loads the lvlalg command-line configuration.
//
// The file is TOML; every key is optional and falls back to Default():
//
//	precision       = 2        # decimals printed per value
//	style           = "plain"  # plain | gorgeous | box
//	pivot_threshold = 1e-5     # absolute pre-pivot threshold used by inversion
//	log_level       = "info"   # debug | info | warn | error
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/lvlalg/matrix"
)

// Style names accepted by the style key.
const (
	StylePlain    = "plain"
	StyleGorgeous = "gorgeous"
	StyleBox      = "box"
)

// maxPrecision mirrors the bound enforced by matrix.WithPrecision.
const maxPrecision = 17

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the effective CLI settings.
type Config struct {
	Precision      int     `toml:"precision"`
	Style          string  `toml:"style"`
	PivotThreshold float64 `toml:"pivot_threshold"`
	LogLevel       string  `toml:"log_level"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Precision:      matrix.DefaultPrecision,
		Style:          StylePlain,
		PivotThreshold: matrix.DefaultPivotThreshold,
		LogLevel:       "info",
	}
}

// Load decodes path on top of Default() and validates the result.
// Unknown keys are rejected so typos do not pass silently.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys %s: %w", strings.Join(keys, ", "), ErrInvalid)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field against its accepted range.
func (c *Config) Validate() error {
	if c.Precision < 0 || c.Precision > maxPrecision {
		return fmt.Errorf("precision %d not in [0, %d]: %w", c.Precision, maxPrecision, ErrInvalid)
	}
	switch c.Style {
	case StylePlain, StyleGorgeous, StyleBox:
	default:
		return fmt.Errorf("style %q: %w", c.Style, ErrInvalid)
	}
	if c.PivotThreshold < 0 || math.IsNaN(c.PivotThreshold) || math.IsInf(c.PivotThreshold, 0) {
		return fmt.Errorf("pivot_threshold %v: %w", c.PivotThreshold, ErrInvalid)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level maps log_level onto a slog level.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalid)
	}

	return lvl, nil
}

// MatrixOptions converts the numeric settings into matrix options.
// Call only after Validate succeeded; the option constructors panic otherwise.
func (c *Config) MatrixOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithPrecision(c.Precision),
		matrix.WithPivotThreshold(c.PivotThreshold),
	}
}

// Save writes c as TOML to path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return f.Close()
}
