package palimpsest

import (
	"fmt"
	"math"
)

// Undefined marks pixels without a gradient.
var Undefined = math.NaN()

func IsUndefined(theta float64) bool {
	return math.IsNaN(theta)
}

// DirectionField holds one quantized gradient angle in radians per pixel.
type DirectionField struct {
	Width, Height int
	angles        []float64
}

// NewDirectionField returns a field with every direction Undefined.
func NewDirectionField(width, height int) *DirectionField {
	angles := make([]float64, width*height)
	for i := range angles {
		angles[i] = Undefined
	}
	return &DirectionField{
		Width:  width,
		Height: height,
		angles: angles,
	}
}

func (f *DirectionField) index(x, y int) int {
	if !InBounds(x, y, f.Width, f.Height) {
		panic(fmt.Sprintf("direction (%d, %d) outside %dx%d field", x, y, f.Width, f.Height))
	}
	return y*f.Width + x
}

func (f *DirectionField) At(x, y int) float64 {
	return f.angles[f.index(x, y)]
}

func (f *DirectionField) Set(x, y int, theta float64) {
	f.angles[f.index(x, y)] = theta
}
