// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/spf13/cobra"
)

// binaryDense builds a command applying op to two dense documents.
func binaryDense(a *app, use, short string, op func(x, y matrix.Matrix) (*matrix.Dense, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.loadDense(args[0])
			if err != nil {
				return err
			}
			y, err := a.loadDense(args[1])
			if err != nil {
				return err
			}
			res, err := op(x, y)
			if err != nil {
				return err
			}

			return a.emitDense(cmd, res)
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Print a matrix document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadDense(args[0])
			if err != nil {
				return err
			}

			return a.emitDense(cmd, m)
		},
	}
}

func newAddCmd(a *app) *cobra.Command {
	return binaryDense(a, "add", "Element-wise sum A + B", matrix.Add)
}

func newSubCmd(a *app) *cobra.Command {
	return binaryDense(a, "sub", "Element-wise difference A − B", matrix.Sub)
}

func newMulCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mul A B [C...]",
		Short: "Matrix product, left to right",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms := make([]matrix.Matrix, len(args))
			for i, path := range args {
				m, err := a.loadDense(path)
				if err != nil {
					return err
				}
				ms[i] = m
			}
			res, err := matrix.MulChain(ms...)
			if err != nil {
				return err
			}

			return a.emitDense(cmd, res)
		},
	}
}

func newScaleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scale FILE ALPHA",
		Short: "Multiply every element by a scalar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			alpha, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("alpha %q: %w", args[1], err)
			}
			m, err := a.loadDense(args[0])
			if err != nil {
				return err
			}
			res, err := matrix.Scale(m, alpha)
			if err != nil {
				return err
			}

			return a.emitDense(cmd, res)
		},
	}
}

func newTransposeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "transpose FILE",
		Aliases: []string{"t"},
		Short:   "Swap rows and columns",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadDense(args[0])
			if err != nil {
				return err
			}
			res, err := matrix.Transpose(m)
			if err != nil {
				return err
			}

			return a.emitDense(cmd, res)
		},
	}
}

func newInvCmd(a *app) *cobra.Command {
	var check bool
	c := &cobra.Command{
		Use:   "inv FILE",
		Short: "Gauss–Jordan inverse with one-step pivoting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadDense(args[0])
			if err != nil {
				return err
			}
			opts := a.matrixOptions()
			swaps, err := matrix.PivotSwaps(m, opts...)
			if err != nil {
				return err
			}
			for _, sw := range swaps {
				a.log.Debug("pre-pivot swap", "p", sw.P, "q", sw.Q)
			}
			inv, err := matrix.Inverse(m, opts...)
			if err != nil {
				return err
			}
			if err = a.emitDense(cmd, inv); err != nil {
				return err
			}
			if !check {
				return nil
			}
			residual, err := matrix.InverseResidual(m, inv)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "residual max|A·A⁻¹ − I| = %.3e\n", residual)

			return err
		},
	}
	c.Flags().BoolVar(&check, "check", false, "print the residual of A·A⁻¹ against I")

	return c
}

func newIdentityCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "identity N",
		Short: "Print the N×N identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("size %q: %w", args[0], err)
			}
			id, err := matrix.NewIdentity(n)
			if err != nil {
				return err
			}

			return a.emitDense(cmd, id)
		},
	}
}

func newDiagCmd(a *app) *cobra.Command {
	var (
		k    int
		size int
	)
	c := &cobra.Command{
		Use:   "diag VECTOR",
		Short: "Place a row or column vector on diagonal k of a square zero matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.loadDense(args[0])
			if err != nil {
				return err
			}
			n := size
			if n == 0 {
				n = v.Len() + abs(k)
			}
			m, err := matrix.NewDense(n, n)
			if err != nil {
				return err
			}
			if err = m.SetDiag(v, k); err != nil {
				return err
			}

			return a.emitDense(cmd, m)
		},
	}
	c.Flags().IntVarP(&k, "k", "k", 0, "diagonal offset (>0 above, <0 below the main diagonal)")
	c.Flags().IntVar(&size, "size", 0, "matrix size (default len(VECTOR)+|k|)")

	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
