// SPDX-License-Identifier: MIT

// Package sparse - coordinate-list (COO) storage & lazy mutation.
//
// Purpose:
//   - Store only explicitly written entries (value, row, col) in insertion order.
//   - Keep declared dimensions independent of the entry list.
//   - Back the list with a coordinate index so lookups are O(1) and a
//     coordinate is never stored twice.
//
// Complexity quicksheet:
//   - New: O(1); At/Set/Update: O(1) amortized; Entries/ToDense: O(nnz) / O(r*c).

package sparse

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlalg/matrix"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxUpdate = "Update"
)

// Entry is one stored coordinate of a sparse matrix.
type Entry struct {
	Val float64 // stored value (may be exactly 0 for lazily created or cancelled cells)
	Row int     // zero-based row index
	Col int     // zero-based column index
}

// coord is the map key of the coordinate index.
type coord struct {
	row, col int
}

// Matrix is a sparse matrix in coordinate-list form.
//   - rows, cols are the declared dimensions (not derived from entries).
//   - entries keeps insertion order; conversion and display iterate it.
//   - index maps a coordinate to its position in entries.
//
// The zero value is an empty 0×0 matrix; give it a shape with Resize.
// A Matrix is not safe for concurrent use.
type Matrix struct {
	rows, cols int
	entries    []Entry
	index      map[coord]int
}

// Compile-time check: the sparse matrix plugs into the dense kernels.
var _ matrix.Matrix = (*Matrix)(nil)

// sparseErrorf wraps an error with method context and coordinates.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// New returns an empty rows×cols sparse matrix (no stored entries).
//
// Errors:
//   - matrix.ErrInvalidDimensions when rows<=0 or cols<=0.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrix.ErrInvalidDimensions
	}

	return &Matrix{rows: rows, cols: cols, index: make(map[coord]int)}, nil
}

// NewIdentity returns an n×n sparse identity with exactly n stored entries.
func NewIdentity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	if err = m.SetIdentity(); err != nil {
		return nil, err
	}

	return m, nil
}

// Resize changes the declared dimensions. Entries that fall outside the new
// bounds are dropped; the survivors keep their relative order.
func (m *Matrix) Resize(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("Resize: %w", matrix.ErrInvalidDimensions)
	}
	m.rows, m.cols = rows, cols

	kept := m.entries[:0]
	for _, e := range m.entries {
		if e.Row < rows && e.Col < cols {
			kept = append(kept, e)
		}
	}
	m.entries = kept
	m.reindex()

	return nil
}

// Rows returns the declared row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the declared column count.
func (m *Matrix) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// Len returns the number of stored entries. Stored entries may hold exact
// zeros, so Len is an upper bound on the nonzero count, not the count itself.
func (m *Matrix) Len() int { return len(m.entries) }

// Entry returns the i-th stored entry in insertion order.
func (m *Matrix) Entry(i int) (Entry, error) {
	if i < 0 || i >= len(m.entries) {
		return Entry{}, fmt.Errorf("Sparse.Entry(%d): %w", i, matrix.ErrOutOfRange)
	}

	return m.entries[i], nil
}

// Entries returns a copy of the stored entries in insertion order.
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)

	return out
}

// Each visits stored entries in insertion order; stop early by returning false.
func (m *Matrix) Each(f func(e Entry) bool) {
	for _, e := range m.entries {
		if !f(e) {
			return
		}
	}
}

// checkBounds validates (row, col) against the declared dimensions.
func (m *Matrix) checkBounds(row, col int) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return matrix.ErrOutOfRange
	}

	return nil
}

// At returns the value at (row, col) without allocating an entry.
// Absent coordinates read as 0.
func (m *Matrix) At(row, col int) (float64, error) {
	if err := m.checkBounds(row, col); err != nil {
		return 0, sparseErrorf(ctxAt, row, col, err)
	}
	if pos, ok := m.index[coord{row, col}]; ok {
		return m.entries[pos].Val, nil
	}

	return 0, nil
}

// Update is the lazy insert-or-update accessor.
// MAIN DESCRIPTION:
//   - When (row, col) is stored, its value becomes f(old).
//   - When absent, an entry with value 0.0 is appended and then set to f(0).
//
// Behavior highlights:
//   - The created entry stays in the list even when f returns 0.
//   - A non-finite f result is rejected before any change is made.
//
// Errors:
//   - matrix.ErrOutOfRange, matrix.ErrNaNInf.
func (m *Matrix) Update(row, col int, f func(v float64) float64) error {
	if err := m.checkBounds(row, col); err != nil {
		return sparseErrorf(ctxUpdate, row, col, err)
	}
	key := coord{row, col}
	pos, ok := m.index[key]
	old := 0.0
	if ok {
		old = m.entries[pos].Val
	}
	nv := f(old)
	if math.IsNaN(nv) || math.IsInf(nv, 0) {
		return sparseErrorf(ctxUpdate, row, col, matrix.ErrNaNInf)
	}
	if !ok {
		if m.index == nil {
			m.index = make(map[coord]int)
		}
		pos = len(m.entries)
		m.entries = append(m.entries, Entry{Row: row, Col: col})
		m.index[key] = pos
	}
	m.entries[pos].Val = nv

	return nil
}

// Set stores v at (row, col), creating the entry when absent.
func (m *Matrix) Set(row, col int, v float64) error {
	if err := m.Update(row, col, func(float64) float64 { return v }); err != nil {
		return fmt.Errorf("Sparse.%s: %w", ctxSet, err)
	}

	return nil
}

// Accumulate adds v to the value at (row, col), creating the entry when absent.
func (m *Matrix) Accumulate(row, col int, v float64) error {
	return m.Update(row, col, func(old float64) float64 { return old + v })
}

// SetIdentity stores 1.0 at (i, i) for every i < min(rows, cols).
// Existing diagonal entries are overwritten in place (no duplicates);
// off-diagonal entries are left untouched. Combine with Reset for a clean identity.
func (m *Matrix) SetIdentity() error {
	if m.rows == 0 || m.cols == 0 {
		return fmt.Errorf("SetIdentity: %w", matrix.ErrEmptyMatrix)
	}
	n := m.rows
	if m.cols < n {
		n = m.cols
	}
	for i := 0; i < n; i++ {
		if err := m.Set(i, i, 1.0); err != nil {
			return fmt.Errorf("SetIdentity: %w", err)
		}
	}

	return nil
}

// Reset drops every stored entry; the declared dimensions are kept.
func (m *Matrix) Reset() {
	m.entries = nil
	m.index = make(map[coord]int)
}

// Prune drops stored entries whose value is exactly 0.0, keeping order.
func (m *Matrix) Prune() {
	kept := m.entries[:0]
	for _, e := range m.entries {
		if e.Val != 0 {
			kept = append(kept, e)
		}
	}
	m.entries = kept
	m.reindex()
}

// Clone returns an independent deep copy.
func (m *Matrix) Clone() matrix.Matrix { return m.clone() }

// clone is the typed twin of Clone.
func (m *Matrix) clone() *Matrix {
	cp := &Matrix{rows: m.rows, cols: m.cols, entries: make([]Entry, len(m.entries))}
	copy(cp.entries, m.entries)
	cp.reindex()

	return cp
}

// reindex rebuilds the coordinate index from the entry list.
func (m *Matrix) reindex() {
	m.index = make(map[coord]int, len(m.entries))
	for i, e := range m.entries {
		m.index[coord{e.Row, e.Col}] = i
	}
}
