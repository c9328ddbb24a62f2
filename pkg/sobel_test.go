package palimpsest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradientUniform(t *testing.T) {
	im := uniform(t, 6, 5, 180)
	magnitude, directions := Gradient(im)
	assert.Equal(t, im.Bounds(), magnitude.Bounds())
	for y := 0; y < 5; y++ {
		for x := 0; x < 6; x++ {
			assert.Equal(t, uint8(0), Intensity(magnitude, x, y))
			assert.True(t, IsUndefined(directions.At(x, y)))
		}
	}
}

func TestGradientHorizontalStep(t *testing.T) {
	im := grey(t, [][]uint8{
		{200, 200, 200},
		{200, 200, 200},
		{0, 0, 0},
	})
	magnitude, directions := Gradient(im)

	// Rows above minus rows below: 4*200 clamps to 255.
	assert.Equal(t, uint8(255), Intensity(magnitude, 1, 1))
	assert.InDelta(t, -math.Pi/2, directions.At(1, 1), 1e-12)
	c := magnitude.RGBAAt(1, 1)
	assert.Equal(t, c.R, c.G)
	assert.Equal(t, c.R, c.B)

	// Top row: the clamped row above equals the row below.
	assert.Equal(t, uint8(0), Intensity(magnitude, 1, 0))
	assert.True(t, IsUndefined(directions.At(1, 0)))
}

func TestGradientNegativeDerivativesClampToZero(t *testing.T) {
	im := grey(t, [][]uint8{
		{0, 0, 0},
		{200, 200, 200},
		{200, 200, 200},
	})
	magnitude, directions := Gradient(im)
	assert.Equal(t, uint8(0), Intensity(magnitude, 1, 1))
	assert.True(t, IsUndefined(directions.At(1, 1)))
}

func TestGradientDiagonal(t *testing.T) {
	im := grey(t, [][]uint8{
		{10, 10, 10},
		{10, 10, 0},
		{10, 0, 0},
	})
	magnitude, directions := Gradient(im)
	// gx = 10+20+10 - (10+0+0) = 30, gy = 10+20+10 - (10+0+0) = 30.
	assert.Equal(t, uint8(42), Intensity(magnitude, 1, 1))
	assert.InDelta(t, -math.Pi/4, directions.At(1, 1), 1e-12)
}

func TestQuantizeDirection(t *testing.T) {
	assert.InDelta(t, -math.Pi/2, quantizeDirection(10, 0), 1e-12)
	assert.InDelta(t, -math.Pi/2, quantizeDirection(10, 3), 1e-12)
	assert.InDelta(t, -math.Pi/4, quantizeDirection(10, 9), 1e-12)
	assert.InDelta(t, 0, quantizeDirection(1, 10), 1e-12)
	assert.InDelta(t, 0, quantizeDirection(0, 10), 1e-12)
}
