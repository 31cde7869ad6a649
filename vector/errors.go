// SPDX-License-Identifier: MIT
// Package vector: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the vector
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package vector

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vector: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNilVector indicates that a nil slice was passed where a vector is
	// required. Kernels reject nil before reading any element.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrDimensionMismatch indicates incompatible lengths between operands,
	// e.g. Add/Sub/Hadamard/Dot over slices of different lengths. The single
	// contract-failure condition of this package: partial results are never
	// produced.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")
)
