package palimpsest

import (
	"image"
	"math"
)

// Greyscale collapses RGB into luminance. Each weighted channel is rounded
// on its own before summing, so a uniform gray pixel keeps its value.
func Greyscale(im *image.RGBA) *image.RGBA {
	res := Clone(im)
	for y := 0; y < im.Rect.Dy(); y++ {
		for x := 0; x < im.Rect.Dx(); x++ {
			SetIntensity(res, x, y, luminance(
				channel(im, x, y, 0),
				channel(im, x, y, 1),
				channel(im, x, y, 2),
			))
		}
	}
	return res
}

func luminance(r, g, b uint8) uint8 {
	red := int(math.Round(float64(r) * 0.299))
	green := int(math.Round(float64(g) * 0.587))
	blue := int(math.Round(float64(b) * 0.114))
	return uint8(clamp(red+green+blue, 0, 255))
}
