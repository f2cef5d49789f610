// Package xmath holds small numeric helpers shared across packages that
// would otherwise each write their own clamp/min/max boilerplate.
package xmath

import "golang.org/x/exp/constraints"

// Clamp restricts v to the closed interval [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
