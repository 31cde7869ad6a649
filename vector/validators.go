// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating nil/length checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → SameLen).

package vector

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the vector reference is non-nil.
//
// Inputs: slice of any element type T.
// Returns ErrNilVector if v == nil; an empty non-nil slice is accepted.
// Complexity: O(1).
func ValidateNotNil[T Number](v []T) error {
	// If the vector is nil, fail with the unified sentinel.
	if v == nil {
		return validatorErrorf("ValidateNotNil", ErrNilVector) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateSameLen – Ensures vectors a and b have equal lengths.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Inputs: Two slices of the same element type.
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameLen[T Number](a, b []T) error {
	// Execute the single comparison.
	if len(a) != len(b) {
		return validatorErrorf("ValidateSameLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameLen – Composite: NotNil(a) → NotNil(b) → SameLen.
//
// Errors: Combines ErrNilVector and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameLen[T Number](a, b []T) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameLen", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameLen", err)
	}
	if err := ValidateSameLen(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameLen", err)
	}
	return nil
}
