package palimpsest

import (
	"errors"
	"fmt"
	"image"
	"math"
)

var (
	ErrBadGaborSize  = errors.New("gabor kernel size must be odd and at least 3")
	ErrBadGaborParam = errors.New("gabor wavelength and aspect ratio must be positive")
)

// GaborOrientations in degrees.
var GaborOrientations = [...]float64{0, 30, 60, 90, 120, 150}

// GaborKernel builds a real size x size Gabor kernel for orientation theta
// (radians), wavelength lambda and spatial aspect ratio gamma, with
// sigma = 0.56*lambda. The divisor is 1, so convolving yields the raw response.
func GaborKernel(size int, theta, lambda, gamma float64) (Kernel, error) {
	if size < 3 || size%2 == 0 {
		return Kernel{}, fmt.Errorf("size %d: %w", size, ErrBadGaborSize)
	}
	if !(lambda > 0) || !(gamma > 0) {
		return Kernel{}, fmt.Errorf("lambda=%v gamma=%v: %w", lambda, gamma, ErrBadGaborParam)
	}
	sigma := 0.56 * lambda
	sin, cos := math.Sincos(theta)
	weights := make([][]float64, size)
	for y := 0; y < size; y++ {
		weights[y] = make([]float64, size)
		for x := 0; x < size; x++ {
			fx, fy := float64(x-size/2), float64(y-size/2)
			xTheta := fx*cos + fy*sin
			yTheta := -fx*sin + fy*cos
			weights[y][x] = math.Exp(-(xTheta*xTheta+gamma*gamma*yTheta*yTheta)/(2*sigma*sigma)) *
				math.Cos(2*math.Pi*xTheta/lambda)
		}
	}
	return NewKernel(weights, 1)
}

// GaborResponses convolves the intensity channel with one kernel per
// orientation in GaborOrientations.
func GaborResponses(im *image.RGBA, size int, lambda, gamma float64) ([]*image.RGBA, error) {
	res := make([]*image.RGBA, 0, len(GaborOrientations))
	for _, degrees := range GaborOrientations {
		k, err := GaborKernel(size, degrees*math.Pi/180, lambda, gamma)
		if err != nil {
			return nil, err
		}
		res = append(res, ConvolveIntensity(im, k))
	}
	return res, nil
}

// GaborBank is the per-pixel maximum over all orientation responses.
func GaborBank(im *image.RGBA, size int, lambda, gamma float64) (*image.RGBA, error) {
	responses, err := GaborResponses(im, size, lambda, gamma)
	if err != nil {
		return nil, err
	}
	res := Clone(responses[0])
	for _, r := range responses[1:] {
		for y := 0; y < res.Rect.Dy(); y++ {
			for x := 0; x < res.Rect.Dx(); x++ {
				if v := Intensity(r, x, y); v > Intensity(res, x, y) {
					SetIntensity(res, x, y, v)
				}
			}
		}
	}
	return res, nil
}
