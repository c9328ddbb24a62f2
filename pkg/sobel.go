package palimpsest

import (
	"image"
	"math"
)

// Gradient computes the Sobel magnitude of the intensity channel and the
// gradient direction quantized to 45 degree bins, rotated by -pi/2.
// Both partial derivatives are clamped to [0, 255] before they are combined.
func Gradient(im *image.RGBA) (*image.RGBA, *DirectionField) {
	src := Clone(im)
	res := Clone(im)
	width, height := src.Rect.Dx(), src.Rect.Dy()
	directions := NewDirectionField(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			gx := clamp(response(src, SobelHorizontalKernel, ClampToEdge, x, y, 0), 0, 255)
			gy := clamp(response(src, SobelVerticalKernel, ClampToEdge, x, y, 0), 0, 255)
			magnitude := toByte(math.Hypot(gx, gy))
			SetIntensity(res, x, y, magnitude)
			if magnitude == 0 {
				continue
			}
			directions.Set(x, y, quantizeDirection(gx, gy))
		}
	}
	return res, directions
}

func quantizeDirection(gx, gy float64) float64 {
	return math.Round(math.Atan2(gy, gx)*4/math.Pi)*math.Pi/4 - math.Pi/2
}
