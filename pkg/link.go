package palimpsest

import "image"

var compass = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// Link promotes weak pixels to strong. From every pixel a ray is cast in each
// of the 8 compass directions; undecided pixels along the ray become Strong
// until the ray meets a Background or Strong pixel or leaves the image.
// Decisions are read from the input so promotions never stop a ray.
func Link(im *image.RGBA) *image.RGBA {
	src := Clone(im)
	res := Clone(im)
	width, height := src.Rect.Dx(), src.Rect.Dy()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for _, d := range compass {
				for wx, wy := x+d[0], y+d[1]; InBounds(wx, wy, width, height); wx, wy = wx+d[0], wy+d[1] {
					v := Intensity(src, wx, wy)
					if v == Background || v == Strong {
						break
					}
					SetIntensity(res, wx, wy, Strong)
				}
			}
		}
	}
	return res
}
