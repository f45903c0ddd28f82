// SPDX-License-Identifier: MIT
package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvlalg/internal/config"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvlalg.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, matrix.DefaultPrecision, cfg.Precision)
	require.Equal(t, matrix.DefaultPivotThreshold, cfg.PivotThreshold)
	require.Equal(t, config.StylePlain, cfg.Style)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, lvl)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, "precision = 4\nstyle = \"gorgeous\"\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Precision)
	require.Equal(t, config.StyleGorgeous, cfg.Style)
	require.Equal(t, matrix.DefaultPivotThreshold, cfg.PivotThreshold)
	require.Equal(t, "info", cfg.LogLevel)

	o := matrix.NewOptions(cfg.MatrixOptions()...)
	require.Equal(t, 4, o.Precision())
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "precison = 3\n",
		"bad style":     "style = \"fancy\"\n",
		"bad precision": "precision = 40\n",
		"bad threshold": "pivot_threshold = -1.0\n",
		"bad level":     "log_level = \"loud\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, body))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Load(writeFile(t, "precision = [\n"))
	require.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSave_RoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Style = config.StyleBox
	cfg.LogLevel = "debug"
	cfg.PivotThreshold = 1e-8

	path := filepath.Join(t.TempDir(), "out.toml")
	require.NoError(t, cfg.Save(path))

	back, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, back)
}
