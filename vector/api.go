// SPDX-License-Identifier: MIT
// Package vector — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical kernel.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package vector

// ---------- Constructors & Utilities ----------

// Zeros returns a new zero-initialized vector of length n.
// Negative n is treated as zero: the result is an empty, non-nil slice.
// Complexity: O(n) zeroing by the runtime.
func Zeros[T Number](n int) []T {
	// Clamp negative lengths; make would panic on them.
	if n < 0 {
		n = 0
	}
	return make([]T, n)
}

// ZerosLike returns a new zero vector with the same length as v.
// Handy to preallocate accumulation targets alongside an existing operand.
// Complexity: O(n).
func ZerosLike[T Number](v []T) []T {
	return make([]T, len(v))
}

// CloneVector returns an element-identical copy of v (nil in, nil out).
// Complexity: O(n) copy.
func CloneVector[T Number](v []T) []T {
	if v == nil {
		return nil
	}
	out := make([]T, len(v))
	copy(out, v)
	return out
}

// ---------- Kernels (facades map 1:1; O(n) each) ----------

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(n).
func Sum[T Number](a, b []T) ([]T, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(n).
func Diff[T Number](a, b []T) ([]T, error) { return Sub(a, b) }
