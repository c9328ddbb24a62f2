package palimpsest

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var ErrEmptyImage = errors.New("image has zero area")

// NewBuffer allocates an opaque black RGB buffer with origin at (0, 0).
func NewBuffer(width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("buffer %dx%d: %w", width, height, ErrEmptyImage)
	}
	im := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(im.Pix); i += 4 {
		im.Pix[i] = 0xFF
	}
	return im, nil
}

// FromImage copies any decoded image into an RGB buffer with origin at (0, 0).
// Alpha is dropped, colors are taken unpremultiplied.
func FromImage(im image.Image) (*image.RGBA, error) {
	b := im.Bounds()
	res, err := NewBuffer(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	switch src := im.(type) {
	case *image.YCbCr:
		for y := 0; y < b.Dy(); y++ {
			di := res.PixOffset(0, y)
			for x := 0; x < b.Dx(); x++ {
				yi := src.YOffset(b.Min.X+x, b.Min.Y+y)
				ci := src.COffset(b.Min.X+x, b.Min.Y+y)
				r, g, bb := color.YCbCrToRGB(src.Y[yi], src.Cb[ci], src.Cr[ci])
				res.Pix[di+0], res.Pix[di+1], res.Pix[di+2] = r, g, bb
				di += 4
			}
		}
	case *image.Gray:
		for y := 0; y < b.Dy(); y++ {
			di := res.PixOffset(0, y)
			si := src.PixOffset(b.Min.X, b.Min.Y+y)
			for x := 0; x < b.Dx(); x++ {
				c := src.Pix[si+x]
				res.Pix[di+0], res.Pix[di+1], res.Pix[di+2] = c, c, c
				di += 4
			}
		}
	default:
		for y := 0; y < b.Dy(); y++ {
			di := res.PixOffset(0, y)
			for x := 0; x < b.Dx(); x++ {
				c := color.NRGBAModel.Convert(im.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				res.Pix[di+0], res.Pix[di+1], res.Pix[di+2] = c.R, c.G, c.B
				di += 4
			}
		}
	}
	return res, nil
}

// Clone returns a snapshot of im. Stages read neighbours from the snapshot
// and write into a separate buffer.
// Rows are copied one by one since im may be a sub-image with a wider stride.
func Clone(im *image.RGBA) *image.RGBA {
	res := image.NewRGBA(im.Rect)
	rowLen := 4 * im.Rect.Dx()
	for y := 0; y < im.Rect.Dy(); y++ {
		copy(res.Pix[y*res.Stride:][:rowLen], im.Pix[y*im.Stride:][:rowLen])
	}
	return res
}

func offset(im *image.RGBA, x, y int) int {
	if x < 0 || y < 0 || x >= im.Rect.Dx() || y >= im.Rect.Dy() {
		panic(fmt.Sprintf("pixel (%d, %d) outside %dx%d buffer", x, y, im.Rect.Dx(), im.Rect.Dy()))
	}
	return y*im.Stride + x*4
}

// Intensity is channel 0 of the pixel at (x, y).
func Intensity(im *image.RGBA, x, y int) uint8 {
	return im.Pix[offset(im, x, y)]
}

// SetIntensity writes v into all three color channels.
func SetIntensity(im *image.RGBA, x, y int, v uint8) {
	i := offset(im, x, y)
	im.Pix[i+0], im.Pix[i+1], im.Pix[i+2] = v, v, v
}

func channel(im *image.RGBA, x, y, c int) uint8 {
	return im.Pix[offset(im, x, y)+c]
}

func setChannel(im *image.RGBA, x, y, c int, v uint8) {
	im.Pix[offset(im, x, y)+c] = v
}
