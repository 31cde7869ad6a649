// Package matrix provides a generic row-major dense matrix and the
// universal kernels over it: element-wise addition and subtraction,
// scalar scaling, transpose, Hadamard product, and matrix-vector
// multiplication.
//
// The matrix package provides:
//
//   - Dense[T] — a fixed M×N rectangular grid of one numeric type T,
//     stored in a flat row-major slice for cache friendliness.
//   - Safe constructors (NewDense, FromRows, NewZeros, NewIdentity) that
//     reject non-positive shapes and ragged input up front.
//   - Pure kernels with strict fail-fast validation: every operation
//     allocates a fresh result, never mutates its operands, and reports
//     incompatible shapes via ErrDimensionMismatch (match with errors.Is)
//     instead of producing truncated or padded output.
//
// All loops run in fixed row-major order, so floating-point results —
// in particular MatVec accumulation — are reproducible across platforms.
//
// Matrices are best for dense or small data where O(r·c) memory is
// acceptable; there are no sparse formats, decompositions or
// matrix-matrix products here.
//
// See the examples in this package and vector for usage patterns.
package matrix
