// Package matrix provides core linear algebra primitives for array-based computations.
// Dense is a concrete, row-major generic matrix, storing elements in a flat
// slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"strings"

	"github.com/KaiCodesWithGithub/vector-operations/vector"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of values of one numeric type T.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[T vector.Number] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense[T vector.Number](rows, cols int) (*Dense[T], error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]T, rows*cols)

	// Return initialized Dense
	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// FromRows builds a Dense from a rectangular [][]T, copying every element.
// Stage 1 (Validate): at least one row, at least one column, no ragged rows.
// Stage 2 (Execute): copy row by row into the flat backing slice.
// The caller's slices are never aliased; later mutation of rows cannot
// affect the returned matrix.
// Errors: ErrInvalidDimensions (empty input), ErrRaggedRows.
// Complexity: O(r*c) time and memory.
func FromRows[T vector.Number](rows [][]T) (*Dense[T], error) {
	// Validate outer and inner dimensions.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, ErrRaggedRows // rectangular grids only
		}
	}

	// Copy into flat row-major storage.
	m := &Dense[T]{r: len(rows), c: cols, data: make([]T, len(rows)*cols)}
	for i := 0; i < m.r; i++ {
		copy(m.data[i*cols:(i+1)*cols], rows[i])
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i as a fresh slice of length Cols.
// The backing storage is never exposed, keeping Dense values immutable
// through the returned slice.
// Errors: ErrOutOfRange.
// Complexity: O(c) copy.
func (m *Dense[T]) Row(i int) ([]T, error) {
	// Validate the row index only; the column span is the whole row.
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	// Copy the contiguous row block.
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense[T]) Clone() *Dense[T] {
	// Allocate new slice for data copy
	copyData := make([]T, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Stage 1 (Execute): build per-row strings.
// Stage 2 (Finalize): return concatenated representation.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		b.WriteString("[")        // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&b, "%v", m.data[i*m.c+j])
			if j < m.c-1 {
				b.WriteString(", ") // separate values with comma
			}
		}
		b.WriteString("]\n") // close row
	}

	return b.String()
}
