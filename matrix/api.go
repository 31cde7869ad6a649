// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import "github.com/KaiCodesWithGithub/vector-operations/vector"

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Deterministic: single allocation; no hidden work.
// Complexity: O(r*c) zeroing by the runtime.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros[T vector.Number](rows, cols int) (*Dense[T], error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense[T](rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as a neutral element — MatVec(I, x) returns x unchanged.
func NewIdentity[T vector.Number](n int) (*Dense[T], error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense[T](n, n) // O(1) alloc + O(n^2) zeroing
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	var one T = 1
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = one
	}

	// Return the identity matrix.
	return I, nil
}

// CloneMatrix returns a structural clone of m.
// Thin wrapper over Dense.Clone for API discoverability.
// Complexity: O(r*c) copy.
func CloneMatrix[T vector.Number](m *Dense[T]) *Dense[T] {
	// Delegate to the concrete clone.
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing. Handy to preallocate staging buffers.
func ZerosLike[T vector.Number](m *Dense[T]) (*Dense[T], error) {
	// Read shape once and call NewDense with the same dimensions.
	return NewDense[T](m.Rows(), m.Cols()) // errors (if any) bubble up
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates square via central validator.
func IdentityLike[T vector.Number](m *Dense[T]) (*Dense[T], error) {
	// Ensure the input is square using the centralized validator.
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err) // wrap with call-site tag
	}
	// Construct the identity of matching dimension.
	return NewIdentity[T](m.Rows()) // returns (*Dense, error)
}

// ---------- Linear Algebra (facades map 1:1 to kernels; O(rc) each) ----------

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rc).
func Sum[T vector.Number](a, b *Dense[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(rc).
func Diff[T vector.Number](a, b *Dense[T]) (*Dense[T], error) { return Sub(a, b) }
