// Package vectoroperations is a small, generic linear-algebra toolkit for
// fixed-length numeric data — element-wise vector arithmetic, scalar
// scaling, and dense matrix-vector products.
//
// 🚀 What is vector-operations?
//
//	A focused, dependency-light library that brings together:
//		• Vector kernels: element-wise Add/Sub, Hadamard, Dot, scalar Scale
//		• Dense matrices: generic row-major Dense[T] with safe At/Set access
//		• Matrix kernels: element-wise Add/Sub, Scale, Transpose, MatVec
//		• One numeric bound: every kernel is generic over ints and floats
//
// ✨ Why choose vector-operations?
//
//   - Predictable – fixed loop orders, reproducible floating-point results
//   - Fail-fast – dimension mismatches return sentinel errors, never
//     truncated or padded results
//   - Pure – every kernel allocates a fresh result and never mutates inputs
//   - Pure Go – no cgo, no assembly, no hidden deps
//
// Under the hood, everything is organized under two subpackages:
//
//	vector/ — generic slice kernels (Add, Sub, Scale, Dot, Hadamard) and the
//	          shared Number constraint
//	matrix/ — generic row-major Dense[T], constructors (NewZeros,
//	          NewIdentity, FromRows) and matrix kernels incl. MatVec
//
// Quick example:
//
//	y, err := matrix.MatVec(m, x)   // y[i] = Σⱼ m[i,j]·x[j]
//
// Dimension compatibility is validated up front: binary vector kernels
// require equal lengths, MatVec requires len(x) == m.Cols(). Violations
// surface as ErrDimensionMismatch via errors.Is.
//
//	go get github.com/KaiCodesWithGithub/vector-operations
package vectoroperations
