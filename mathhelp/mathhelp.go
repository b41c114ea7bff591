package mathhelp

import (
	"math"

	"golang.org/x/exp/constraints"
)

// BetweenInc reports whether f lies in the closed interval between p and q,
// in either orientation.
func BetweenInc[T constraints.Ordered](f, p, q T) bool {
	if p <= q {
		return p <= f && f <= q
	}
	return q <= f && f <= p
}

// Radians converts an angle in degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
