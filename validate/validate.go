// Package validate holds the sentinel errors shared by the colorimetry
// packages and the guards that produce them.
package validate

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput indicates a NaN or infinite scalar, an out-of-range value
	// or an empty required sequence.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLengthMismatch indicates paired sequences of different lengths.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrTooFewPoints indicates a spectral distribution with fewer than two samples.
	ErrTooFewPoints = errors.New("too few points")
)

// Finite returns an ErrInvalidInput error naming the first value that is NaN
// or infinite.
func Finite(name string, values ...float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			if len(values) == 1 {
				return fmt.Errorf("%w: %s is %v", ErrInvalidInput, name, v)
			}
			return fmt.Errorf("%w: %s[%d] is %v", ErrInvalidInput, name, i, v)
		}
	}
	return nil
}

// Range returns an ErrInvalidInput error when v is not finite or lies outside [lo, hi].
func Range(name string, v, lo, hi float64) error {
	if err := Finite(name, v); err != nil {
		return err
	}
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s=%g outside [%g, %g]", ErrInvalidInput, name, v, lo, hi)
	}
	return nil
}

// NonNegative returns an ErrInvalidInput error naming the first value that is
// negative.
func NonNegative(name string, values ...float64) error {
	for i, v := range values {
		if v < 0 {
			return fmt.Errorf("%w: %s[%d] is negative (%g)", ErrInvalidInput, name, i, v)
		}
	}
	return nil
}
