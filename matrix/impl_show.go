// SPDX-License-Identifier: MIT

// Package matrix - human-readable display.
//
// Show and ShowGorgeous only read the matrix; they never mutate it. Output is
// fixed-point with Options.precision decimals (DefaultPrecision = 2).

package matrix

import (
	"fmt"
	"io"
	"strings"
)

// Border glyphs used by ShowGorgeous.
const (
	glyphTopLeft     = "┌"
	glyphTopRight    = "┐"
	glyphSide        = "│"
	glyphBottomLeft  = "└"
	glyphBottomRight = "┘"
	glyphSingleLeft  = "["
	glyphSingleRight = "]"
)

// Show writes one line per row; each value is printed fixed-point and
// followed by a tab.
//
//	1.00	2.00
//	2.00	1.00
//
// Errors:
//   - validation errors (nil/empty) and the first write error from w.
func Show(w io.Writer, m Matrix, opts ...Option) error {
	if err := ValidateNonEmpty(m); err != nil {
		return matrixErrorf("Show", err)
	}
	o := gatherOptions(opts...)

	var b strings.Builder
	for i := 0; i < m.Rows(); i++ {
		cells, err := rowCells(m, i, o.precision)
		if err != nil {
			return matrixErrorf("Show", err)
		}
		for _, cell := range cells {
			b.WriteString(cell)
			b.WriteByte('\t')
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// ShowGorgeous writes the same cells as Show framed by box glyphs: ┌ ┐ on the
// first row, │ │ on middle rows, └ ┘ on the last; a single row uses [ ].
//
//	┌ 1.00	2.00 ┐
//	└ 2.00	1.00 ┘
func ShowGorgeous(w io.Writer, m Matrix, opts ...Option) error {
	if err := ValidateNonEmpty(m); err != nil {
		return matrixErrorf("ShowGorgeous", err)
	}
	o := gatherOptions(opts...)

	rows := m.Rows()
	var b strings.Builder
	for i := 0; i < rows; i++ {
		cells, err := rowCells(m, i, o.precision)
		if err != nil {
			return matrixErrorf("ShowGorgeous", err)
		}
		left, right := borderGlyphs(i, rows)
		b.WriteString(left)
		b.WriteByte(' ')
		b.WriteString(strings.Join(cells, "\t"))
		b.WriteByte(' ')
		b.WriteString(right)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// borderGlyphs picks the left/right frame for row i of rows.
func borderGlyphs(i, rows int) (string, string) {
	switch {
	case rows == 1:
		return glyphSingleLeft, glyphSingleRight
	case i == 0:
		return glyphTopLeft, glyphTopRight
	case i == rows-1:
		return glyphBottomLeft, glyphBottomRight
	default:
		return glyphSide, glyphSide
	}
}

// rowCells formats row i of m with the given number of decimals.
func rowCells(m Matrix, i, precision int) ([]string, error) {
	cols := m.Cols()
	cells := make([]string, cols)
	for j := 0; j < cols; j++ {
		v, err := m.At(i, j)
		if err != nil {
			return nil, err
		}
		cells[j] = fmt.Sprintf("%.*f", precision, v)
	}

	return cells, nil
}
