// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/katalvlaran/lvlalg/internal/chart"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/spf13/cobra"
)

func newTDMACmd(a *app) *cobra.Command {
	var (
		lower, diag, upper, rhs []float64
		plotPath                string
	)
	c := &cobra.Command{
		Use:   "tdma",
		Short: "Solve a tridiagonal system with the Thomas algorithm",
		Long: `Solves a_i·x_{i-1} + b_i·x_i + c_i·x_{i+1} = d_i for i = 1..n with x_0 = x_{n+1} = 0.

Every coefficient list has n+1 values; the first value is the unused boundary
slot. The solution is printed as the (n+2)×1 vector [0, x_1, ..., x_n, 0].

  lvlalg tdma --a 0,-1,-1,-1 --b 0,2,2,2 --c 0,-1,-1,-1 --d 0,0,0,1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			x, err := matrix.TDMA(lower, diag, upper, rhs)
			if err != nil {
				return err
			}
			a.log.Debug("tdma solved", "unknowns", len(diag)-1)
			if err = a.emitDense(cmd, x); err != nil {
				return err
			}
			if plotPath == "" {
				return nil
			}
			if err = chart.Save(plotPath, x, chart.Options{Title: "TDMA solution"}); err != nil {
				return err
			}
			a.log.Info("chart written", "path", plotPath)

			return nil
		},
	}
	f := c.Flags()
	f.Float64SliceVar(&lower, "a", nil, "sub-diagonal a_0..a_n")
	f.Float64SliceVar(&diag, "b", nil, "main diagonal b_0..b_n")
	f.Float64SliceVar(&upper, "c", nil, "super-diagonal c_0..c_n")
	f.Float64SliceVar(&rhs, "d", nil, "right-hand side d_0..d_n")
	f.StringVar(&plotPath, "plot", "", "also draw the solution to this image file (.png, .svg, .pdf)")
	for _, name := range []string{"a", "b", "c", "d"} {
		_ = c.MarkFlagRequired(name)
	}

	return c
}
