// Package vector provides generic, pure element-wise kernels over numeric
// slices: addition, subtraction, scalar scaling, Hadamard product and dot
// product.
//
// 🚀 What is vector?
//
//	Every function treats a []T as a fixed-length vector of one numeric
//	type T (any integer or floating-point kind, see Number) and returns a
//	freshly allocated result without touching its inputs:
//	  • Add / Sub   — element-wise sum and difference
//	  • Scale       — uniform multiplication by a scalar
//	  • Hadamard    — element-wise product
//	  • Dot         — Σ a[i]·b[i] with a fixed accumulation order
//
// ⚙️ Usage:
//
//	import "github.com/KaiCodesWithGithub/vector-operations/vector"
//
//	sum, err := vector.Add([]int{1, 2, 3, 4, 5}, []int{5, 4, 3, 2, 1})
//	// sum == [6 6 6 6 6]
//
// Binary kernels require equal lengths; a mismatch is a caller defect and is
// reported loudly via ErrDimensionMismatch (match with errors.Is) before any
// output is produced — results are never truncated, padded or partial.
//
// Determinism:
//
//   - All loops run in fixed ascending index order, so floating-point
//     results are reproducible across platforms and runs.
//
// Performance:
//
//   - Time:   O(n) per kernel
//   - Memory: O(n) for the result (Dot allocates nothing)
//
// See example_test.go for runnable examples.
package vector
