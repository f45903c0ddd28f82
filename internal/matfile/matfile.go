// SPDX-License-Identifier: MIT

// Package matfile reads and writes matrix documents for the lvlalg CLI.
//
// A document is either dense (a row literal) or sparse (a declared shape plus
// coordinate entries). The same layout is accepted in YAML, TOML and JSON:
//
//	kind: dense
//	rows: [[1, 2], [2, 1]]
//
//	kind: sparse
//	shape: [3, 3]
//	entries:
//	  - {row: 0, col: 0, val: 1}
//
// The format is selected from the file extension (.yaml, .yml, .toml, .json).
package matfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/sparse"
	"gopkg.in/yaml.v3"
)

// Kind discriminates dense and sparse documents.
type Kind string

const (
	KindDense  Kind = "dense"
	KindSparse Kind = "sparse"
)

// Format is a serialization format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

var (
	// ErrUnknownFormat is returned for an unrecognised extension or format name.
	ErrUnknownFormat = errors.New("matfile: unknown format")
	// ErrInvalidDocument is wrapped by every structural validation failure.
	ErrInvalidDocument = errors.New("matfile: invalid document")
)

// Entry is one sparse coordinate.
type Entry struct {
	Row int     `yaml:"row" toml:"row" json:"row"`
	Col int     `yaml:"col" toml:"col" json:"col"`
	Val float64 `yaml:"val" toml:"val" json:"val"`
}

// Document is the on-disk form of a matrix.
type Document struct {
	Kind    Kind        `yaml:"kind" toml:"kind" json:"kind"`
	Rows    [][]float64 `yaml:"rows,omitempty" toml:"rows,omitempty" json:"rows,omitempty"`
	Shape   []int       `yaml:"shape,omitempty,flow" toml:"shape,omitempty" json:"shape,omitempty"`
	Entries []Entry     `yaml:"entries,omitempty" toml:"entries,omitempty" json:"entries,omitempty"`
}

// FormatOf picks the format from path's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// Decode reads one document in the given format and validates it.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown key %s: %w", undecoded[0], ErrInvalidDocument)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Encode validates doc and writes it in the given format.
func Encode(w io.Writer, format Format, doc *Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// Load opens path and decodes it using the format of its extension.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Save writes doc to path using the format of its extension.
func Save(path string, doc *Document) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = Encode(f, format, doc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}

// Validate checks the fields required by the document kind.
func (d *Document) Validate() error {
	if d == nil {
		return fmt.Errorf("nil document: %w", ErrInvalidDocument)
	}
	switch d.Kind {
	case KindDense:
		if len(d.Rows) == 0 || len(d.Rows[0]) == 0 {
			return fmt.Errorf("dense document without rows: %w", ErrInvalidDocument)
		}
		for i, row := range d.Rows {
			if len(row) != len(d.Rows[0]) {
				return fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), len(d.Rows[0]), ErrInvalidDocument)
			}
		}
	case KindSparse:
		if len(d.Shape) != 2 || d.Shape[0] <= 0 || d.Shape[1] <= 0 {
			return fmt.Errorf("sparse shape %v: %w", d.Shape, ErrInvalidDocument)
		}
		for i, e := range d.Entries {
			if e.Row < 0 || e.Row >= d.Shape[0] || e.Col < 0 || e.Col >= d.Shape[1] {
				return fmt.Errorf("entry %d at (%d,%d) outside %v: %w", i, e.Row, e.Col, d.Shape, ErrInvalidDocument)
			}
		}
	default:
		return fmt.Errorf("kind %q: %w", d.Kind, ErrInvalidDocument)
	}

	return nil
}

// Dense materialises the document as a *matrix.Dense (sparse documents are expanded).
func (d *Document) Dense() (*matrix.Dense, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if d.Kind == KindDense {
		return matrix.NewDenseFrom(d.Rows)
	}
	s, err := d.Sparse()
	if err != nil {
		return nil, err
	}

	return s.ToDense()
}

// Sparse materialises the document as a *sparse.Matrix. For a dense document
// exact zeros are dropped; for a sparse one entries keep their file order and
// repeated coordinates overwrite earlier ones.
func (d *Document) Sparse() (*sparse.Matrix, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if d.Kind == KindDense {
		m, err := matrix.NewDenseFrom(d.Rows)
		if err != nil {
			return nil, err
		}
		return sparse.FromDense(m)
	}
	s, err := sparse.New(d.Shape[0], d.Shape[1])
	if err != nil {
		return nil, err
	}
	for _, e := range d.Entries {
		if err = s.Set(e.Row, e.Col, e.Val); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// FromDense builds a dense document from m.
func FromDense(m *matrix.Dense) (*Document, error) {
	if m.IsEmpty() {
		return nil, fmt.Errorf("FromDense: %w", matrix.ErrEmptyMatrix)
	}
	doc := &Document{Kind: KindDense, Rows: make([][]float64, m.Rows())}
	for i := range doc.Rows {
		row, err := m.RawRow(i)
		if err != nil {
			return nil, err
		}
		doc.Rows[i] = row
	}

	return doc, nil
}

// FromSparse builds a sparse document holding every stored entry of s.
func FromSparse(s *sparse.Matrix) (*Document, error) {
	if s == nil {
		return nil, fmt.Errorf("FromSparse: %w", matrix.ErrNilMatrix)
	}
	rows, cols := s.Shape()
	doc := &Document{Kind: KindSparse, Shape: []int{rows, cols}}
	s.Each(func(e sparse.Entry) bool {
		doc.Entries = append(doc.Entries, Entry{Row: e.Row, Col: e.Col, Val: e.Val})
		return true
	})

	return doc, nil
}
