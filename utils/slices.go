// Package utils implements generic helpers over numbers and slices.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Number is the set of built-in types that can be losslessly or naturally
// converted into one another with a plain conversion.
type Number interface {
	constraints.Integer | constraints.Float
}

// Max returns the maximum of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a >= b {
		return a
	}
	return b
}

// Min returns the minimum of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a <= b {
		return a
	}
	return b
}

// ConvertSlice returns a new slice with each element of s converted to type U.
func ConvertSlice[T, U Number](s []T) (r []U) {
	r = make([]U, len(s))
	for i := range s {
		r[i] = U(s[i])
	}
	return
}

// ZeroPad returns a copy of s extended with zero values up to length n.
// If len(s) >= n, the copy has the length of s.
func ZeroPad[T Number](s []T, n int) (r []T) {
	r = make([]T, Max(len(s), n))
	copy(r, s)
	return
}

// EqualSlice checks the equality between two slices of comparable values.
// Slices of different lengths are never equal.
func EqualSlice[V comparable](a, b []V) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
