// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies that NewOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultPivotThreshold, o.PivotThreshold())
	require.Equal(t, matrix.DefaultPrecision, o.Precision())
	require.Equal(t, 1e-5, matrix.DefaultPivotThreshold)
	require.Equal(t, 2, matrix.DefaultPrecision)
}

// TestOptions_LastWriterWins ensures setters apply in order and nil setters are skipped.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewOptions(
		matrix.WithPrecision(4),
		nil,
		matrix.WithPrecision(6),
		matrix.WithPivotThreshold(0.5),
	)
	require.Equal(t, 6, o.Precision())
	require.Equal(t, 0.5, o.PivotThreshold())
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	for name, f := range map[string]func(){
		"negative threshold": func() { matrix.WithPivotThreshold(-1) },
		"NaN threshold":      func() { matrix.WithPivotThreshold(math.NaN()) },
		"Inf threshold":      func() { matrix.WithPivotThreshold(math.Inf(1)) },
		"negative precision": func() { matrix.WithPrecision(-1) },
		"huge precision":     func() { matrix.WithPrecision(18) },
	} {
		require.Panics(t, f, name)
	}
	require.NotPanics(t, func() { matrix.WithPivotThreshold(0) })
	require.NotPanics(t, func() { matrix.WithPrecision(17) })
}
