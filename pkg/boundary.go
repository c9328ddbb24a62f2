package palimpsest

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Boundary maps a possibly out-of-range coordinate i on an axis of length n
// to the coordinate that is actually read.
type Boundary func(i, n int) int

// ClampToEdge replicates edge pixels outward. Every stage that reads
// neighbours through a kernel uses it.
var ClampToEdge Boundary = func(i, n int) int {
	return clamp(i, 0, n-1)
}

// InBounds reports whether (x, y) lies inside a width x height grid.
func InBounds(x, y, width, height int) bool {
	return x >= 0 && y >= 0 && x < width && y < height
}

func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

// sign treats magnitudes below eps as zero so that cos(-pi/2) gives 0.
func sign[T constraints.Float](v T) int {
	const eps = 1e-9
	switch {
	case v < -eps:
		return -1
	case v > eps:
		return 1
	default:
		return 0
	}
}

// toByte rounds half away from zero and clamps to [0, 255].
func toByte(v float64) uint8 {
	return uint8(clamp(math.Round(v), 0, 255))
}
