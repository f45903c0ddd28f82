// SPDX-License-Identifier: MIT

// Package chart draws a solution vector (for example a TDMA result) as a line
// chart with gonum/plot. Point i is drawn at (i, x_i).
package chart

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvlalg/matrix"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Default canvas size.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// Options configures a chart.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.XLabel == "" {
		o.XLabel = "i"
	}
	if o.YLabel == "" {
		o.YLabel = "x_i"
	}

	return o
}

// Points converts a row or column vector into plotter points.
func Points(v matrix.Matrix) (plotter.XYs, error) {
	if err := matrix.ValidateVector(v); err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}
	n := v.Rows() * v.Cols()
	pts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		var (
			y   float64
			err error
		)
		if v.Rows() == 1 {
			y, err = v.At(0, i)
		} else {
			y, err = v.At(i, 0)
		}
		if err != nil {
			return nil, fmt.Errorf("chart: %w", err)
		}
		pts[i].X, pts[i].Y = float64(i), y
	}

	return pts, nil
}

// build assembles the plot for v.
func build(v matrix.Matrix, o Options) (*plot.Plot, error) {
	pts, err := Points(v)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}
	p.Add(line, scatter)

	return p, nil
}

// Save writes the chart to path; the extension picks the image format
// (png, svg, pdf, ...).
func Save(path string, v matrix.Matrix, o Options) error {
	o = o.withDefaults()
	p, err := build(v, o)
	if err != nil {
		return err
	}
	if err = p.Save(o.Width, o.Height, path); err != nil {
		return fmt.Errorf("chart: save %s: %w", filepath.Base(path), err)
	}

	return nil
}

// Write renders the chart in format (e.g. "png") to w.
func Write(w io.Writer, format string, v matrix.Matrix, o Options) error {
	o = o.withDefaults()
	p, err := build(v, o)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(o.Width, o.Height, strings.ToLower(format))
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	_, err = wt.WriteTo(w)

	return err
}
