package palimpsest

import (
	"errors"
	"fmt"
	"image"
)

// Edge classification levels.
const (
	Background uint8 = 0
	Weak       uint8 = 127
	Strong     uint8 = 255
)

var ErrBadThreshold = errors.New("threshold fraction must be in [0, 1]")

// Threshold maps intensities at or above upper*255 to Strong, below
// lower*255 to Background and everything between to Weak.
func Threshold(im *image.RGBA, lower, upper float64) (*image.RGBA, error) {
	for _, f := range []float64{lower, upper} {
		if !(f >= 0 && f <= 1) {
			return nil, fmt.Errorf("%v: %w", f, ErrBadThreshold)
		}
	}
	lo, hi := lower*255, upper*255
	res := Clone(im)
	for y := 0; y < im.Rect.Dy(); y++ {
		for x := 0; x < im.Rect.Dx(); x++ {
			v := float64(Intensity(im, x, y))
			switch {
			case v >= hi:
				SetIntensity(res, x, y, Strong)
			case v < lo:
				SetIntensity(res, x, y, Background)
			default:
				SetIntensity(res, x, y, Weak)
			}
		}
	}
	return res, nil
}
