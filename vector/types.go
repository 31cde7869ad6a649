// SPDX-License-Identifier: MIT
// Package vector: shared generic numeric bound.
package vector

// Number is the type-set constraint accepted by every kernel in this module.
//
// It admits all built-in integer and floating-point kinds (and types defined
// on them, via ~). The required capabilities are exactly what the kernels
// use: addition, subtraction, multiplication and a zero value, each yielding
// T again. Overflow and rounding follow T's native semantics — the kernels
// impose no policy of their own.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
