package palimpsest

import "image"

// GaussianBlur smooths im with GaussianKernel.
//
// The second argument is the blur sigma. It is accepted for compatibility
// with callers that pass one; the kernel weights are fixed and do not
// depend on it.
func GaussianBlur(im *image.RGBA, _ float64) *image.RGBA {
	return Convolve(im, GaussianKernel)
}
