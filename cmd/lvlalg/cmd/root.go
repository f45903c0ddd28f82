// SPDX-License-Identifier: MIT

// Package cmd implements the lvlalg command tree.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/lvlalg/internal/config"
	"github.com/katalvlaran/lvlalg/internal/matfile"
	"github.com/katalvlaran/lvlalg/internal/render"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/sparse"
	"github.com/spf13/cobra"
)

// app carries flag values and the state resolved from them before any
// subcommand runs.
type app struct {
	cfgFile   string
	verbose   bool
	style     string
	precision int
	output    string

	cfg      *config.Config
	renderer *render.Renderer
	log      *slog.Logger
}

// NewRootCmd builds a fresh command tree. Each call has its own flag state.
func NewRootCmd() *cobra.Command {
	a := &app{log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "lvlalg",
		Short: "Dense and sparse matrix toolkit",
		Long: `lvlalg runs the lvlalg matrix kernels on matrix documents.

Documents are YAML, TOML or JSON files (chosen by extension) holding either
a dense row literal or a sparse shape with coordinate entries.

Commands:
  show, add, sub, mul, scale, transpose, inv, identity, diag  dense kernels
  tdma                                                         tridiagonal solver
  sparse                                                       coordinate-list kernels
  demo                                                         guided walkthrough`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (TOML)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (debug logging)")
	pf.StringVar(&a.style, "style", "", "output style: plain, gorgeous or box")
	pf.IntVar(&a.precision, "precision", matrix.DefaultPrecision, "decimals printed per value")
	pf.StringVarP(&a.output, "output", "o", "", "also write the result to this document (.yaml, .toml, .json)")

	root.AddCommand(
		newShowCmd(a),
		newAddCmd(a),
		newSubCmd(a),
		newMulCmd(a),
		newScaleCmd(a),
		newTransposeCmd(a),
		newInvCmd(a),
		newIdentityCmd(a),
		newDiagCmd(a),
		newTDMACmd(a),
		newSparseCmd(a),
		newDemoCmd(a),
		newVersionCmd(),
	)

	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}

	return nil
}

// setup resolves configuration, logging and rendering. Explicit flags win
// over the config file, which wins over defaults.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.cfgFile != "" {
		loaded, err := config.Load(a.cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("style") {
		cfg.Style = a.style
	}
	if flags.Changed("precision") {
		cfg.Precision = a.precision
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	style, err := render.ParseStyle(cfg.Style)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.renderer = render.New(style, cfg.Precision)
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	a.log.Debug("configuration resolved",
		"config", a.cfgFile,
		"style", cfg.Style,
		"precision", cfg.Precision,
		"pivot_threshold", cfg.PivotThreshold)

	return nil
}

// matrixOptions returns the numeric options derived from the configuration.
func (a *app) matrixOptions() []matrix.Option {
	return a.cfg.MatrixOptions()
}

// loadDense reads a document from path as a dense matrix.
func (a *app) loadDense(path string) (*matrix.Dense, error) {
	doc, err := matfile.Load(path)
	if err != nil {
		return nil, err
	}
	m, err := doc.Dense()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Debug("loaded matrix", "path", path, "kind", doc.Kind, "rows", m.Rows(), "cols", m.Cols())

	return m, nil
}

// loadSparse reads a document from path as a sparse matrix.
func (a *app) loadSparse(path string) (*sparse.Matrix, error) {
	doc, err := matfile.Load(path)
	if err != nil {
		return nil, err
	}
	s, err := doc.Sparse()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Debug("loaded sparse matrix", "path", path, "kind", doc.Kind, "entries", s.Len())

	return s, nil
}

// emitDense prints m and saves it when --output is set.
func (a *app) emitDense(cmd *cobra.Command, m *matrix.Dense) error {
	if err := a.renderer.Matrix(cmd.OutOrStdout(), m); err != nil {
		return err
	}
	if a.output == "" {
		return nil
	}
	doc, err := matfile.FromDense(m)
	if err != nil {
		return err
	}

	return a.save(doc)
}

// emitSparse prints s and saves it when --output is set.
func (a *app) emitSparse(cmd *cobra.Command, s *sparse.Matrix) error {
	if err := a.renderer.Sparse(cmd.OutOrStdout(), s); err != nil {
		return err
	}
	if a.output == "" {
		return nil
	}
	doc, err := matfile.FromSparse(s)
	if err != nil {
		return err
	}

	return a.save(doc)
}

func (a *app) save(doc *matfile.Document) error {
	if err := matfile.Save(a.output, doc); err != nil {
		return err
	}
	a.log.Info("result written", "path", a.output, "kind", doc.Kind)

	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
