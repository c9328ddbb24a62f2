package palimpsest

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func uniform(t testing.TB, width, height int, v uint8) *image.RGBA {
	im, err := NewBuffer(width, height)
	require.NoError(t, err)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			SetIntensity(im, x, y, v)
		}
	}
	return im
}

// grey builds a buffer from rows of intensities.
func grey(t testing.TB, rows [][]uint8) *image.RGBA {
	im, err := NewBuffer(len(rows[0]), len(rows))
	require.NoError(t, err)
	for y, row := range rows {
		for x, v := range row {
			SetIntensity(im, x, y, v)
		}
	}
	return im
}

func intensities(im *image.RGBA) [][]uint8 {
	rows := make([][]uint8, im.Rect.Dy())
	for y := range rows {
		rows[y] = make([]uint8, im.Rect.Dx())
		for x := range rows[y] {
			rows[y][x] = Intensity(im, x, y)
		}
	}
	return rows
}
