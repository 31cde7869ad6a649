// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on Dense matrices, including
// element-wise addition, subtraction, transpose, scalar scaling, Hadamard
// product, and matrix-vector multiplication. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the package.
//   - Define operation tags and shared helpers for determinism and error reporting.
//
// Notes:
//   - All kernels use central validators and wrap plain sentinels via matrixErrorf.

package matrix

import (
	"fmt"

	"github.com/KaiCodesWithGithub/vector-operations/vector"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a ± b, choosing the operation by the
// subtract flag. Inputs must have identical shapes. A fresh Dense is
// allocated; operands are not mutated. Internal helper for Add/Sub to share
// validation, allocation, and the flat loop.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Single flat loop 0..n-1 over the backing slices.
//
// Behavior highlights:
//   - Deterministic flat loop order; single result allocation; inputs immutable.
//   - Overflow follows T's native semantics — no policy here.
//
// Inputs:
//   - a, b: conformable matrices (non-nil; same rows/cols).
//   - subtract: false for Add, true for Sub.
//   - opTag: opAdd for Add, opSub for Sub (for error wrapping).
//
// Returns:
//   - *Dense[T]: newly allocated result.
//   - error    : validation failures wrapped with opAdd/opSub.
//
// Errors:
//   - ErrNilMatrix         (from ValidateBinarySameShape when a or b is nil).
//   - ErrDimensionMismatch (from ValidateBinarySameShape when shapes differ).
//
// Determinism:
//   - Single flat slice walk 0..(r*c−1).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T vector.Number](a, b *Dense[T], subtract bool, opTag string) (*Dense[T], error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Direct element-wise pass on backing slices. The branch on the
	// operation is hoisted out of the loop.
	length := rows * cols
	if subtract {
		for idx := 0; idx < length; idx++ { // deterministic 0..n-1
			res.data[idx] = a.data[idx] - b.data[idx]
		}
	} else {
		for idx := 0; idx < length; idx++ { // deterministic 0..n-1
			res.data[idx] = a.data[idx] + b.data[idx]
		}
	}

	// Return result
	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: Single flat loop over the backing slices.
//
// Behavior highlights:
//   - Deterministic loop order; no hidden aliasing; one allocation for the result.
//
// Inputs:
//   - a: left matrix operand.
//   - b: right matrix operand with the same shape as a.
//
// Returns:
//   - *Dense[T]: a new Dense with C[i,j] = A[i,j] + B[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). Bandwidth-bound.
func Add[T vector.Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: Single flat loop over the backing slices.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Inputs are never mutated; result is always a freshly allocated Dense.
func Sub[T vector.Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, true, opSub) }

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: Contiguous slice mapping data[i*cols+j] → res.data[j*rows+i].
//
// Behavior highlights:
//   - Deterministic copy order (row blocks); one allocation for the result.
//
// Inputs:
//   - m: non-nil matrix (r×c).
//
// Returns:
//   - *Dense[T]: newly allocated Dense(c×r) with mᵀ.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
//
// AI-Hints:
//   - If you only need Aᵀ·x, prefer MatVec on A with indices swapped instead
//     of materializing Aᵀ; avoid transposing repeatedly in tight loops.
func Transpose[T vector.Number](m *Dense[T]) (*Dense[T], error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense[T](cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	// Return result
	return res, nil
}

// Scale returns a new matrix whose elements are m[i,j] * alpha.
// Input is validated non-nil; the original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(rows, cols).
//   - Stage 2: Single flat multiply loop over the backing slice.
//
// Behavior highlights:
//   - Deterministic traversal order; exactly one allocation, no extra buffers.
//   - alpha = 0 yields an explicit zero matrix with the same shape.
//
// Inputs:
//   - m    : non-nil matrix (r×c).
//   - alpha: scalar multiplier of element type T (NaN/Inf propagate for floats).
//
// Returns:
//   - *Dense[T]: Dense with elements m[i,j]*alpha.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - For pipelines, consider fusing scaling into the consumer kernel
//     (e.g. scale x before MatVec) to save an allocation.
func Scale[T vector.Number](m *Dense[T], alpha T) (*Dense[T], error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Allocate result Dense
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Flat multiply over the backing slice.
	n := rows * cols
	for idx := 0; idx < n; idx++ {
		res.data[idx] = m.data[idx] * alpha
	}

	return res, nil
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
// Both inputs must be non-nil and have identical shapes; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate Dense(rows, cols).
//   - Stage 2: Single flat loop 0..n-1 over the backing slices.
//
// Behavior highlights:
//   - Bandwidth-bound kernel; contiguous data and flat traversal maximize throughput.
//   - Deterministic loop order; no data-dependent branches in the hot path.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Hadamard ≠ matrix multiplication; it is elementwise.
func Hadamard[T vector.Number](a, b *Dense[T]) (*Dense[T], error) {
	// Validate both operands are non-nil and have identical shapes.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	// Allocate the result Dense with the same shape.
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	// Operate on flat slices directly.
	n := rows * cols
	for idx := 0; idx < n; idx++ { // fixed order ensures deterministic results
		res.data[idx] = a.data[idx] * b.data[idx] // element-wise product
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols();
// y[i] = Σ_{j=0}^{c-1} m[i,j]·x[j] with y pre-initialized to T's zero value.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateVecLen(x, m.Cols()). Allocate y of
//     length m.Rows() (zero-valued by the runtime).
//   - Stage 2: One pass per row with flat row-major indexing; the inner loop
//     accumulates in ascending j order.
//
// Behavior highlights:
//   - Fixed i→j loop order and a zero-initialized accumulator make
//     floating-point results reproducible across platforms and runs.
//   - No partial output on failure: validation happens before allocation.
//
// Inputs:
//   - m: non-nil matrix (r×c).
//   - x: non-nil vector of length c.
//
// Returns:
//   - []T: freshly allocated result of length r.
//
// Errors:
//   - ErrNilMatrix         (nil matrix, or nil x via ValidateVecLen).
//   - ErrDimensionMismatch (len(x) != m.Cols()).
//
// Determinism:
//   - Fixed i→j row-major accumulation order.
//
// Complexity:
//   - Time O(r*c), Space O(r) for y.
//
// AI-Hints:
//   - One row of m and all of x per output element: keep x small enough to
//     stay cache-resident when r is large.
func MatVec[T vector.Number](m *Dense[T], x []T) ([]T, error) {
	// Validate m is not nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	// Validate x is not nil and matches the number of columns.
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	// Prepare result vector y with length rows (additive identity of T).
	rows, cols := m.Rows(), m.Cols()
	y := make([]T, rows) // allocate exactly rows outputs

	// Flat, row-major dot-products.
	var i, j, base int         // indices and row base offset
	var zero, acc T            // additive identity and per-row accumulator
	for i = 0; i < rows; i++ { // iterate rows deterministically
		acc = zero                 // reset accumulator per row
		base = i * cols            // compute flat base offset for row i
		for j = 0; j < cols; j++ { // iterate columns in ascending order
			acc += m.data[base+j] * x[j] // accumulate m(i,j)·x(j)
		}
		y[i] = acc // store y(i)
	}

	return y, nil // return computed vector
}
