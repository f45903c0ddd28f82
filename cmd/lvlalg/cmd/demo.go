// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvlalg/internal/render"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/sparse"
	"github.com/spf13/cobra"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "demo [dense|sparse]",
		Short:     "Walk through the dense and sparse kernels on a 3×3 example",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"dense", "sparse"},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			which := "all"
			if len(args) == 1 {
				which = args[0]
			}
			if which != "sparse" {
				if err := denseDemo(w, a.renderer, a.matrixOptions()); err != nil {
					return err
				}
			}
			if which != "dense" {
				if err := sparseDemo(w, a.renderer, a.matrixOptions()); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// step prints a heading, runs f and prints the matrix it returns.
func step(w io.Writer, r *render.Renderer, title string, f func() (*matrix.Dense, error)) (*matrix.Dense, error) {
	if err := r.Title(w, title); err != nil {
		return nil, err
	}
	m, err := f()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", title, err)
	}
	if err = r.Matrix(w, m); err != nil {
		return nil, err
	}
	_, err = fmt.Fprintln(w)

	return m, err
}

// denseDemo builds A = I with A(0,1) = A(1,0) = 2, inverts it and checks the
// usual identities.
func denseDemo(w io.Writer, r *render.Renderer, opts []matrix.Option) error {
	var A, B, sum *matrix.Dense
	var err error

	if A, err = step(w, r, "A(3, 3), all zero", func() (*matrix.Dense, error) { return matrix.NewDense(3, 3) }); err != nil {
		return err
	}
	if _, err = step(w, r, "A = I", func() (*matrix.Dense, error) { return A, A.SetIdentity() }); err != nil {
		return err
	}
	if _, err = step(w, r, "A(0, 1) = A(1, 0) = 2", func() (*matrix.Dense, error) {
		if err := A.Set(0, 1, 2); err != nil {
			return nil, err
		}
		return A, A.Set(1, 0, 2)
	}); err != nil {
		return err
	}
	if B, err = step(w, r, "B = A⁻¹", func() (*matrix.Dense, error) { return matrix.Inverse(A, opts...) }); err != nil {
		return err
	}
	if _, err = step(w, r, "A * B, the identity", func() (*matrix.Dense, error) { return matrix.Mul(A, B) }); err != nil {
		return err
	}
	if _, err = step(w, r, "A - A, the zero matrix", func() (*matrix.Dense, error) { return matrix.Sub(A, A) }); err != nil {
		return err
	}
	if sum, err = step(w, r, "A + A", func() (*matrix.Dense, error) { return matrix.Add(A, A) }); err != nil {
		return err
	}
	if _, err = step(w, r, "B * (A + A), 2 on the diagonal", func() (*matrix.Dense, error) { return matrix.Mul(B, sum) }); err != nil {
		return err
	}

	return nil
}

// sparseStep prints a heading, runs f and prints the sparse result.
func sparseStep(w io.Writer, r *render.Renderer, title string, f func() (*sparse.Matrix, error)) (*sparse.Matrix, error) {
	if err := r.Title(w, title); err != nil {
		return nil, err
	}
	s, err := f()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", title, err)
	}
	if err = r.Sparse(w, s); err != nil {
		return nil, err
	}
	_, err = fmt.Fprintln(w)

	return s, err
}

// sparseDemo repeats the dense walkthrough on the coordinate-list form.
func sparseDemo(w io.Writer, r *render.Renderer, opts []matrix.Option) error {
	var A, B, sum *sparse.Matrix
	var err error

	if A, err = sparseStep(w, r, "sparse A(3, 3), no entries", func() (*sparse.Matrix, error) { return sparse.New(3, 3) }); err != nil {
		return err
	}
	if _, err = sparseStep(w, r, "A = I", func() (*sparse.Matrix, error) { return A, A.SetIdentity() }); err != nil {
		return err
	}
	if _, err = sparseStep(w, r, "A(0, 1) = A(1, 0) = 2", func() (*sparse.Matrix, error) {
		if err := A.Set(0, 1, 2); err != nil {
			return nil, err
		}
		return A, A.Set(1, 0, 2)
	}); err != nil {
		return err
	}
	if B, err = sparseStep(w, r, "B = A⁻¹", func() (*sparse.Matrix, error) { return sparse.Inverse(A, opts...) }); err != nil {
		return err
	}
	if _, err = sparseStep(w, r, "A * B, the identity", func() (*sparse.Matrix, error) { return sparse.Mul(A, B) }); err != nil {
		return err
	}
	if sum, err = sparseStep(w, r, "A + A", func() (*sparse.Matrix, error) { return sparse.Add(A, A) }); err != nil {
		return err
	}
	if _, err = sparseStep(w, r, "A - A, zero values kept as entries", func() (*sparse.Matrix, error) { return sparse.Sub(A, A) }); err != nil {
		return err
	}
	if _, err = sparseStep(w, r, "B * (A + A), 2 on the diagonal", func() (*sparse.Matrix, error) { return sparse.Mul(B, sum) }); err != nil {
		return err
	}

	return nil
}
