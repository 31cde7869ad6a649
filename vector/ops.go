// SPDX-License-Identifier: MIT
// Package vector provides universal element-wise kernels over numeric slices,
// including addition, subtraction, scalar scaling, Hadamard product and dot
// product. All functions perform strict fail-fast validation and return clear
// errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical vector kernels used across the module.
//   - Define operation tags and shared helpers for determinism and error reporting.
//
// Notes:
//   - All kernels use central validators and wrap plain sentinels via vectorErrorf.

package vector

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opScale    = "Scale"
	opHadamard = "Hadamard"
	opDot      = "Dot"
)

// vectorErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out[i] = a[i] ± b[i], choosing the operation by
// the subtract flag. Inputs must have identical lengths. A fresh slice is
// allocated; operands are not mutated. Internal helper for Add/Sub to share
// validation and the loop.
//
// Implementation:
//   - Stage 1: ValidateBinarySameLen(a, b). Allocate result of len(a).
//   - Stage 2: Single flat loop 0..n-1 in fixed ascending order.
//
// Behavior highlights:
//   - Deterministic loop order; single result allocation; inputs immutable.
//   - Overflow follows T's native wraparound semantics — no policy here.
//
// Inputs:
//   - a, b: conformable vectors (non-nil; equal lengths).
//   - subtract: false for Add, true for Sub.
//   - opTag: opAdd for Add, opSub for Sub (for error wrapping).
//
// Returns:
//   - []T: newly allocated result vector.
//   - error: validation failures wrapped with opAdd/opSub.
//
// Errors:
//   - ErrNilVector         (from ValidateBinarySameLen when a or b is nil).
//   - ErrDimensionMismatch (from ValidateBinarySameLen when lengths differ).
//
// Determinism:
//   - Single flat slice walk 0..n-1.
//
// Complexity:
//   - Time O(n), Space O(n) for the new result.
//
// Notes:
//   - The operation is a flag rather than a ±1 multiplier because a sign
//     value would not survive unsigned element types.
func addSub[T Number](a, b []T, subtract bool, opTag string) ([]T, error) {
	// Validate lengths match.
	if err := ValidateBinarySameLen(a, b); err != nil {
		return nil, vectorErrorf(opTag, err)
	}

	// Allocate the result once; len(a) == len(b) after validation.
	out := make([]T, len(a))

	// Single deterministic pass. The branch on the operation is hoisted out
	// of the loop so the hot path stays a plain element expression.
	if subtract {
		for i := 0; i < len(a); i++ { // fixed ascending order
			out[i] = a[i] - b[i]
		}
	} else {
		for i := 0; i < len(a); i++ { // fixed ascending order
			out[i] = a[i] + b[i]
		}
	}

	// Return result.
	return out, nil
}

// Add computes the element-wise sum c[i] = a[i] + b[i] and returns a fresh slice.
//
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical lengths.
//   - Stage 2: Single flat loop in ascending index order.
//
// Behavior highlights:
//   - Deterministic loop order; one allocation for the result; inputs untouched.
//
// Inputs:
//   - a: left vector operand.
//   - b: right vector operand with len(b) == len(a).
//
// Returns:
//   - []T: new slice with c[i] = a[i] + b[i].
//
// Errors:
//   - ErrNilVector (nil input), ErrDimensionMismatch (length mismatch).
//
// Determinism:
//   - Flat 0..n-1; commutative: Add(a, b) and Add(b, a) are element-identical.
//
// Complexity:
//   - Time O(n), Space O(n). Bandwidth-bound.
//
// AI-Hints:
//   - For y = a + k·b chains prefer composing with Scale once and reusing the
//     intermediate instead of rescaling inside a loop of Add calls.
func Add[T Number](a, b []T) ([]T, error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference c[i] = a[i] - b[i] and returns a fresh slice.
//
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical lengths.
//   - Stage 2: Single flat loop in ascending index order.
//
// Behavior highlights:
//   - Deterministic loop order; one allocation for the result; inputs untouched.
//
// Inputs:
//   - a: left vector operand (minuend).
//   - b: right vector operand (subtrahend) with len(b) == len(a).
//
// Returns:
//   - []T: new slice with c[i] = a[i] - b[i].
//
// Errors:
//   - ErrNilVector (nil input), ErrDimensionMismatch (length mismatch).
//
// Determinism:
//   - Flat 0..n-1.
//
// Complexity:
//   - Time O(n), Space O(n).
//
// Notes:
//   - Sub(a, a) yields the all-zero vector of len(a); for unsigned T the
//     difference wraps per Go's native unsigned arithmetic.
func Sub[T Number](a, b []T) ([]T, error) { return addSub(a, b, true, opSub) }

// Scale returns a new vector whose elements are v[i] * k.
// Input is validated non-nil; the original slice is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(v). Allocate result of len(v).
//   - Stage 2: Single flat multiply loop.
//
// Behavior highlights:
//   - Deterministic traversal order; exactly one allocation.
//   - k = 0 yields an explicit zero vector of the same length; k = 1 yields
//     an element-identical copy.
//
// Inputs:
//   - v: non-nil vector.
//   - k: scalar multiplier of the same element type T (NaN/Inf propagate for floats).
//
// Returns:
//   - []T: slice with elements v[i]*k.
//
// Errors:
//   - ErrNilVector (from ValidateNotNil).
//
// Determinism:
//   - Flat 0..n-1.
//
// Complexity:
//   - Time O(n), Space O(n).
func Scale[T Number](v []T, k T) ([]T, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(v); err != nil {
		return nil, vectorErrorf(opScale, err)
	}

	// Allocate and fill in one deterministic pass.
	out := make([]T, len(v))
	for i := 0; i < len(v); i++ {
		out[i] = v[i] * k
	}

	return out, nil
}

// Hadamard computes the element-wise product c[i] = a[i] * b[i] with a fresh result.
// Both inputs must be non-nil and of identical length; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameLen(a, b). Allocate result of len(a).
//   - Stage 2: Single flat multiply loop 0..n-1.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
//
// Determinism:
//   - Flat 0..n-1; results stable across runs.
//
// Complexity:
//   - Time O(n), Space O(n).
//
// Notes:
//   - Hadamard ≠ dot product; it preserves the length. Use Dot for Σ a[i]·b[i].
func Hadamard[T Number](a, b []T) ([]T, error) {
	// Validate both operands are non-nil and have identical lengths.
	if err := ValidateBinarySameLen(a, b); err != nil {
		return nil, vectorErrorf(opHadamard, err)
	}

	// Allocate the result and multiply element-wise.
	out := make([]T, len(a))
	for i := 0; i < len(a); i++ { // fixed order ensures deterministic results
		out[i] = a[i] * b[i]
	}

	return out, nil
}

// Dot computes the inner product Σ a[i]·b[i] over vectors of equal length.
//
// Implementation:
//   - Stage 1: ValidateBinarySameLen(a, b).
//   - Stage 2: Accumulate in fixed ascending i order from the additive identity.
//
// Behavior highlights:
//   - The accumulator starts at T's zero value and the summation order is
//     fixed, so floating-point results are reproducible across platforms.
//   - Dot over two empty vectors is the zero value of T.
//
// Inputs:
//   - a, b: conformable vectors (non-nil; equal lengths).
//
// Returns:
//   - T: the accumulated inner product.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed i-ascending accumulation; no data-dependent reordering.
//
// Complexity:
//   - Time O(n), Space O(1).
//
// AI-Hints:
//   - MatVec-like routines reduce to one Dot per matrix row; keep rows
//     contiguous to stay cache-friendly.
func Dot[T Number](a, b []T) (T, error) {
	var acc T // additive identity of T

	// Validate lengths match before reading any element.
	if err := ValidateBinarySameLen(a, b); err != nil {
		return acc, vectorErrorf(opDot, err)
	}

	// Accumulate in ascending index order.
	for i := 0; i < len(a); i++ {
		acc += a[i] * b[i]
	}

	return acc, nil
}
