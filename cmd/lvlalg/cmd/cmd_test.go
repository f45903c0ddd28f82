// SPDX-License-Identifier: MIT
package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvlalg/cmd/lvlalg/cmd"
	"github.com/katalvlaran/lvlalg/internal/matfile"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/stretchr/testify/require"
)

// run executes a fresh command tree and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cmd.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

// writeDoc saves a dense document built from rows into dir/name.
func writeDoc(t *testing.T, dir, name string, rows [][]float64) string {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	doc, err := matfile.FromDense(m)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, matfile.Save(path, doc))

	return path
}

func TestShowAndArithmetic(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.yaml", [][]float64{{1, 2}, {2, 1}})
	b := writeDoc(t, dir, "b.json", [][]float64{{1, 1}, {1, 1}})

	out, _, err := run(t, "show", a)
	require.NoError(t, err)
	require.Equal(t, "1.00\t2.00\t\n2.00\t1.00\t\n", out)

	out, _, err = run(t, "add", a, b)
	require.NoError(t, err)
	require.Equal(t, "2.00\t3.00\t\n3.00\t2.00\t\n", out)

	out, _, err = run(t, "sub", a, b, "--precision", "0")
	require.NoError(t, err)
	require.Equal(t, "0\t1\t\n1\t0\t\n", out)

	out, _, err = run(t, "mul", a, b, b)
	require.NoError(t, err)
	require.Equal(t, "6.00\t6.00\t\n6.00\t6.00\t\n", out)

	out, _, err = run(t, "scale", "--style", "gorgeous", "--", a, "-1")
	require.NoError(t, err)
	require.Equal(t, "┌ -1.00\t-2.00 ┐\n└ -2.00\t-1.00 ┘\n", out)

	out, _, err = run(t, "transpose", writeDoc(t, dir, "r.toml", [][]float64{{1, 2, 3}}))
	require.NoError(t, err)
	require.Equal(t, "1.00\t\n2.00\t\n3.00\t\n", out)
}

func TestInv_WritesOutput(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.yaml", [][]float64{{0, 1}, {1, 0}})
	outPath := filepath.Join(dir, "inv.json")

	out, _, err := run(t, "inv", a, "--check", "-o", outPath)
	require.NoError(t, err)
	require.Contains(t, out, "0.00\t1.00\t\n1.00\t0.00\t\n")
	require.Contains(t, out, "residual")

	doc, err := matfile.Load(outPath)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 1}, {1, 0}}, doc.Rows)
}

func TestInv_Singular(t *testing.T) {
	a := writeDoc(t, t.TempDir(), "s.yaml", [][]float64{{1, 2}, {2, 4}})
	_, _, err := run(t, "inv", a)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestIdentityAndDiag(t *testing.T) {
	out, _, err := run(t, "identity", "2", "--precision", "0")
	require.NoError(t, err)
	require.Equal(t, "1\t0\t\n0\t1\t\n", out)

	_, _, err = run(t, "identity", "zero")
	require.Error(t, err)

	v := writeDoc(t, t.TempDir(), "v.yaml", [][]float64{{5}, {6}})
	out, _, err = run(t, "diag", v, "--k", "1", "--precision", "0")
	require.NoError(t, err)
	require.Equal(t, "0\t5\t0\t\n0\t0\t6\t\n0\t0\t0\t\n", out)
}

func TestTDMA(t *testing.T) {
	plot := filepath.Join(t.TempDir(), "x.png")
	out, _, err := run(t, "tdma",
		"--a=0,-1,-1,-1", "--b=0,2,2,2", "--c=0,-1,-1,-1", "--d=0,0,0,1",
		"--plot", plot)
	require.NoError(t, err)
	require.Equal(t, "0.00\t\n0.25\t\n0.50\t\n0.75\t\n0.00\t\n", out)

	info, err := os.Stat(plot)
	require.NoError(t, err)
	require.Positive(t, info.Size())

	_, _, err = run(t, "tdma", "--a=0,1", "--b=0,0", "--c=0,1", "--d=0,1")
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSparseCommands(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.yaml", [][]float64{{2, 0}, {0, 4}})

	out, _, err := run(t, "sparse", "show", a)
	require.NoError(t, err)
	require.Equal(t, "val\trow\tcol\n2\t0\t0\n4\t1\t1\n2.00\t0.00\t\n0.00\t4.00\t\n", out)

	out, _, err = run(t, "sparse", "inv", a)
	require.NoError(t, err)
	require.Contains(t, out, "0.5\t0\t0\n0.25\t1\t1\n")

	out, _, err = run(t, "sparse", "sub", a, a)
	require.NoError(t, err)
	require.Contains(t, out, "0\t0\t0\n0\t1\t1\n", "cancelled entries stay listed")

	outPath := filepath.Join(dir, "t.toml")
	_, _, err = run(t, "sparse", "transpose", a, "-o", outPath)
	require.NoError(t, err)
	doc, err := matfile.Load(outPath)
	require.NoError(t, err)
	require.Equal(t, matfile.KindSparse, doc.Kind)
	require.Equal(t, []int{2, 2}, doc.Shape)
	require.Len(t, doc.Entries, 2)
}

func TestConfigFileAndFlags(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "lvlalg.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("precision = 1\nstyle = \"gorgeous\"\n"), 0o600))
	a := writeDoc(t, dir, "a.yaml", [][]float64{{1, 2}})

	out, _, err := run(t, "show", a, "--config", cfg)
	require.NoError(t, err)
	require.Equal(t, "[ 1.0\t2.0 ]\n", out)

	// flags override the file
	out, _, err = run(t, "show", a, "--config", cfg, "--style", "plain", "--precision", "3")
	require.NoError(t, err)
	require.Equal(t, "1.000\t2.000\t\n", out)

	_, _, err = run(t, "show", a, "--style", "fancy")
	require.Error(t, err)
}

func TestVerboseLogsToStderr(t *testing.T) {
	a := writeDoc(t, t.TempDir(), "a.yaml", [][]float64{{0, 1}, {1, 0}})
	_, errOut, err := run(t, "inv", a, "-v")
	require.NoError(t, err)
	require.Contains(t, errOut, "level=DEBUG")
	require.Contains(t, errOut, "pre-pivot swap")
}

func TestDemo(t *testing.T) {
	out, _, err := run(t, "demo")
	require.NoError(t, err)
	require.Contains(t, out, "B = A⁻¹")
	require.Contains(t, out, "sparse A(3, 3), no entries\nno values\n")
	require.Contains(t, out, "B * (A + A), 2 on the diagonal")

	_, _, err = run(t, "demo", "banded")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "lvlalg v"+cmd.Version)
}
