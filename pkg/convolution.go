package palimpsest

import (
	"image"
)

// response is the raw weighted sum of channel c around (x, y), divided by
// the kernel divisor, neither rounded nor clamped.
func response(im *image.RGBA, k Kernel, boundary Boundary, x, y, c int) float64 {
	width, height := im.Rect.Dx(), im.Rect.Dy()
	size := k.Size()
	half := size / 2
	sum := 0.0
	for ky := 0; ky < size; ky++ {
		y1 := boundary(y+ky-half, height)
		for kx := 0; kx < size; kx++ {
			x1 := boundary(x+kx-half, width)
			sum += float64(channel(im, x1, y1, c)) * k.Weight(ky, kx)
		}
	}
	return sum / k.Divisor()
}

// Convolve applies k to every color channel of im independently with
// clamp-to-edge reads. Results are rounded and clamped to [0, 255].
func Convolve(im *image.RGBA, k Kernel) *image.RGBA {
	return ConvolveWith(im, k, ClampToEdge)
}

func ConvolveWith(im *image.RGBA, k Kernel, boundary Boundary) *image.RGBA {
	src := Clone(im)
	res := Clone(im)
	for y := 0; y < src.Rect.Dy(); y++ {
		for x := 0; x < src.Rect.Dx(); x++ {
			for c := 0; c < 3; c++ {
				setChannel(res, x, y, c, toByte(response(src, k, boundary, x, y, c)))
			}
		}
	}
	return res
}

// ConvolveIntensity applies k to the intensity channel only and writes the
// result into all three channels.
func ConvolveIntensity(im *image.RGBA, k Kernel) *image.RGBA {
	src := Clone(im)
	res := Clone(im)
	for y := 0; y < src.Rect.Dy(); y++ {
		for x := 0; x < src.Rect.Dx(); x++ {
			SetIntensity(res, x, y, toByte(response(src, k, ClampToEdge, x, y, 0)))
		}
	}
	return res
}
