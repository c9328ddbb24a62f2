package palimpsest

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

type encoder func(io.Writer, image.Image) error

var encoders = map[string]encoder{
	".png": png.Encode,
	".jpg": func(w io.Writer, im image.Image) error {
		return jpeg.Encode(w, im, &jpeg.Options{Quality: 95})
	},
	".jpeg": func(w io.Writer, im image.Image) error {
		return jpeg.Encode(w, im, &jpeg.Options{Quality: 95})
	},
	".bmp": bmp.Encode,
	".tif": func(w io.Writer, im image.Image) error {
		return tiff.Encode(w, im, &tiff.Options{Compression: tiff.Deflate})
	},
	".tiff": func(w io.Writer, im image.Image) error {
		return tiff.Encode(w, im, &tiff.Options{Compression: tiff.Deflate})
	},
}

// LoadImageFile decodes png, jpeg, gif, bmp, tiff or webp into an RGB buffer.
func LoadImageFile(imageFilename string) (*image.RGBA, error) {
	im, err := imgio.Open(imageFilename)
	if err != nil {
		return nil, fmt.Errorf("load image %q: %w", imageFilename, err)
	}
	return FromImage(im)
}

// SaveImage encodes im in the format named by the file extension.
func SaveImage(im image.Image, imageFilename string) (err error) {
	encode, ok := encoders[strings.ToLower(filepath.Ext(imageFilename))]
	if !ok {
		return fmt.Errorf("save image %q: %w", imageFilename, ErrUnsupportedFormat)
	}
	imageFile, err := os.Create(imageFilename)
	if err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	defer func() {
		if errClose := imageFile.Close(); err == nil && errClose != nil {
			err = fmt.Errorf("save image: %w", errClose)
		}
	}()
	if err := encode(imageFile, im); err != nil {
		return fmt.Errorf("encode %q: %w", imageFilename, err)
	}
	return nil
}
