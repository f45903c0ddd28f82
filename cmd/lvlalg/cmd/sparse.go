// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/katalvlaran/lvlalg/sparse"
	"github.com/spf13/cobra"
)

func newSparseCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:     "sparse",
		Aliases: []string{"sp"},
		Short:   "Coordinate-list (COO) matrix operations",
		Long: `Sparse commands load documents as coordinate lists. Dense documents are
converted by dropping exact zeros. Output lists the stored entries (val, row,
col) followed by the dense grid.`,
	}
	c.AddCommand(
		&cobra.Command{
			Use:   "show FILE",
			Short: "Print the stored entries and the dense grid",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := a.loadSparse(args[0])
				if err != nil {
					return err
				}

				return a.emitSparse(cmd, s)
			},
		},
		binarySparse(a, "add", "Sum A + B (entry-wise accumulation)", sparse.Add),
		binarySparse(a, "sub", "Difference A − B (cancelled entries stay stored)", sparse.Sub),
		binarySparse(a, "mul", "Product A × B via dense multiplication", sparse.Mul),
		&cobra.Command{
			Use:   "inv FILE",
			Short: "Inverse via the dense Gauss–Jordan kernel",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := a.loadSparse(args[0])
				if err != nil {
					return err
				}
				inv, err := sparse.Inverse(s, a.matrixOptions()...)
				if err != nil {
					return err
				}

				return a.emitSparse(cmd, inv)
			},
		},
		&cobra.Command{
			Use:   "transpose FILE",
			Short: "Swap row and column of every entry",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := a.loadSparse(args[0])
				if err != nil {
					return err
				}
				t, err := sparse.Transpose(s)
				if err != nil {
					return err
				}

				return a.emitSparse(cmd, t)
			},
		},
	)

	return c
}

// binarySparse builds a command applying op to two sparse documents.
func binarySparse(a *app, use, short string, op func(x, y *sparse.Matrix) (*sparse.Matrix, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.loadSparse(args[0])
			if err != nil {
				return err
			}
			y, err := a.loadSparse(args[1])
			if err != nil {
				return err
			}
			res, err := op(x, y)
			if err != nil {
				return err
			}

			return a.emitSparse(cmd, res)
		},
	}
}
