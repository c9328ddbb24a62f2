package palimpsest

import (
	"fmt"
	"image"
	"math"
)

// Suppress thins edges along the gradient direction. For every pixel with a
// direction, the two neighbours one step along and against it are zeroed
// when their intensity does not exceed the pixel's own; the pixel itself
// keeps its value. Pixels without a direction are zeroed.
// All comparisons read the input, never partially written output.
func Suppress(im *image.RGBA, directions *DirectionField) *image.RGBA {
	width, height := im.Rect.Dx(), im.Rect.Dy()
	if directions.Width != width || directions.Height != height {
		panic(fmt.Sprintf("direction field %dx%d does not match %dx%d image", directions.Width, directions.Height, width, height))
	}
	src := Clone(im)
	res := Clone(im)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			theta := directions.At(x, y)
			if IsUndefined(theta) {
				SetIntensity(res, x, y, 0)
				continue
			}
			center := Intensity(src, x, y)
			dx, dy := sign(math.Cos(theta)), sign(math.Sin(theta))
			for _, step := range [2]int{1, -1} {
				nx, ny := x+step*dx, y+step*dy
				if InBounds(nx, ny, width, height) && Intensity(src, nx, ny) <= center {
					SetIntensity(res, nx, ny, 0)
				}
			}
		}
	}
	return res
}
