// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvlalg/matrix"
)

// noValues is printed by Show and ShowMatrix for an empty entry list.
const noValues = "no values\n"

// Show writes the entry list, one "val\trow\tcol" line per stored entry in
// insertion order, preceded by a header line.
func (m *Matrix) Show(w io.Writer) error {
	if m == nil {
		return fmt.Errorf("Show: %w", matrix.ErrNilMatrix)
	}
	if len(m.entries) == 0 {
		_, err := io.WriteString(w, noValues)
		return err
	}

	var b strings.Builder
	b.WriteString("val\trow\tcol\n")
	for _, e := range m.entries {
		fmt.Fprintf(&b, "%g\t%d\t%d\n", e.Val, e.Row, e.Col)
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// ShowMatrix writes the dense grid through matrix.Show.
func (m *Matrix) ShowMatrix(w io.Writer, opts ...matrix.Option) error {
	if m == nil {
		return fmt.Errorf("ShowMatrix: %w", matrix.ErrNilMatrix)
	}
	if len(m.entries) == 0 {
		_, err := io.WriteString(w, noValues)
		return err
	}
	d, err := m.ToDense()
	if err != nil {
		return fmt.Errorf("ShowMatrix: %w", err)
	}

	return matrix.Show(w, d, opts...)
}

// String renders the dense view in the matrix.Dense String format.
func (m *Matrix) String() string {
	d, err := m.ToDense()
	if err != nil {
		return err.Error()
	}

	return d.String()
}
