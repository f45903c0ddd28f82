// SPDX-License-Identifier: MIT

// Package render prints matrices for the lvlalg CLI in one of three styles:
// plain (matrix.Show), gorgeous (matrix.ShowGorgeous) or box, a right-aligned
// grid framed with a rounded lipgloss border.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/sparse"
)

// Style selects the output layout.
type Style string

const (
	StylePlain    Style = "plain"
	StyleGorgeous Style = "gorgeous"
	StyleBox      Style = "box"
)

// ErrUnknownStyle is returned by ParseStyle.
var ErrUnknownStyle = errors.New("render: unknown style")

// Color palette for the box style.
var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

var (
	// BoxStyle frames the grid.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	// TitleStyle renders section headings.
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// CaptionStyle renders the shape line under a boxed grid.
	CaptionStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// ParseStyle validates a style name.
func ParseStyle(s string) (Style, error) {
	switch st := Style(strings.ToLower(s)); st {
	case StylePlain, StyleGorgeous, StyleBox:
		return st, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownStyle)
	}
}

// Renderer writes matrices with a fixed style and precision.
type Renderer struct {
	style     Style
	precision int
}

// New returns a renderer. precision must lie in [0, 17].
func New(style Style, precision int) *Renderer {
	return &Renderer{style: style, precision: precision}
}

// Style reports the configured style.
func (r *Renderer) Style() Style { return r.style }

// Title writes a heading line.
func (r *Renderer) Title(w io.Writer, text string) error {
	if r.style == StyleBox {
		text = TitleStyle.Render(text)
	}
	_, err := fmt.Fprintln(w, text)

	return err
}

// Matrix writes m in the configured style.
func (r *Renderer) Matrix(w io.Writer, m matrix.Matrix) error {
	opt := matrix.WithPrecision(r.precision)
	switch r.style {
	case StyleGorgeous:
		return matrix.ShowGorgeous(w, m, opt)
	case StyleBox:
		return r.box(w, m)
	default:
		return matrix.Show(w, m, opt)
	}
}

// Sparse writes the entry list of s followed by its dense grid.
func (r *Renderer) Sparse(w io.Writer, s *sparse.Matrix) error {
	if err := s.Show(w); err != nil {
		return err
	}
	if s.Len() == 0 {
		return nil
	}

	return r.Matrix(w, s)
}

// box renders m as a right-aligned grid inside BoxStyle.
func (r *Renderer) box(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateNonEmpty(m); err != nil {
		return fmt.Errorf("render box: %w", err)
	}
	rows, cols := m.Rows(), m.Cols()
	cells := make([][]string, rows)
	widths := make([]int, cols)
	for i := 0; i < rows; i++ {
		cells[i] = make([]string, cols)
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("render box: %w", err)
			}
			cells[i][j] = fmt.Sprintf("%.*f", r.precision, v)
			if n := lipgloss.Width(cells[i][j]); n > widths[j] {
				widths[j] = n
			}
		}
	}

	lines := make([]string, rows)
	for i := 0; i < rows; i++ {
		parts := make([]string, cols)
		for j := 0; j < cols; j++ {
			parts[j] = lipgloss.NewStyle().Width(widths[j]).Align(lipgloss.Right).Render(cells[i][j])
		}
		lines[i] = strings.Join(parts, "  ")
	}

	body := BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	caption := CaptionStyle.Render(fmt.Sprintf("%d×%d", rows, cols))
	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, body, caption))

	return err
}
