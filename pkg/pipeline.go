package palimpsest

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Transform turns one decoded image into a derived one.
type Transform func(*image.RGBA) (*image.RGBA, error)

// Pipeline runs the edge and texture transforms with a fixed configuration.
type Pipeline struct {
	config Config
	logger logrus.FieldLogger
}

// New validates cfg. A nil logger discards everything.
func New(cfg Config, logger logrus.FieldLogger) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	return &Pipeline{
		config: cfg,
		logger: logger,
	}, nil
}

func (p *Pipeline) Config() Config {
	return p.config
}

func (p *Pipeline) stage(name string, im *image.RGBA, f func() *image.RGBA) *image.RGBA {
	start := time.Now()
	res := f()
	p.logger.WithFields(logrus.Fields{
		"stage":   name,
		"width":   im.Rect.Dx(),
		"height":  im.Rect.Dy(),
		"elapsed": time.Since(start),
	}).Debug("stage done")
	return res
}

// Edges runs greyscale, blur, gradient, suppression, thresholding and linking.
func (p *Pipeline) Edges(im *image.RGBA) (*image.RGBA, error) {
	grey := p.stage("greyscale", im, func() *image.RGBA { return Greyscale(im) })
	blurred := p.stage("blur", grey, func() *image.RGBA { return GaussianBlur(grey, p.config.BlurSigma) })
	var directions *DirectionField
	magnitude := p.stage("gradient", blurred, func() *image.RGBA {
		var res *image.RGBA
		res, directions = Gradient(blurred)
		return res
	})
	thin := p.stage("suppress", magnitude, func() *image.RGBA { return Suppress(magnitude, directions) })
	var err error
	levels := p.stage("threshold", thin, func() *image.RGBA {
		var res *image.RGBA
		res, err = Threshold(thin, p.config.LowerThreshold, p.config.UpperThreshold)
		return res
	})
	if err != nil {
		return nil, err
	}
	return p.stage("link", levels, func() *image.RGBA { return Link(levels) }), nil
}

// Texture runs greyscale and the Gabor filter bank.
func (p *Pipeline) Texture(im *image.RGBA) (*image.RGBA, error) {
	grey := p.stage("greyscale", im, func() *image.RGBA { return Greyscale(im) })
	var err error
	res := p.stage("gabor", grey, func() *image.RGBA {
		var res *image.RGBA
		res, err = GaborBank(grey, p.config.GaborSize, p.config.GaborLambda, p.config.GaborGamma)
		return res
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Kernel returns a transform convolving all channels with k.
func (p *Pipeline) Kernel(name string, k Kernel) Transform {
	return func(im *image.RGBA) (*image.RGBA, error) {
		return p.stage(name, im, func() *image.RGBA { return Convolve(im, k) }), nil
	}
}

// Run loads sourceImageFilename, applies transform and saves the result.
func (p *Pipeline) Run(sourceImageFilename, resultImageFilename string, transform Transform) error {
	start := time.Now()
	im, err := LoadImageFile(sourceImageFilename)
	if err != nil {
		return err
	}
	res, err := transform(im)
	if err != nil {
		return fmt.Errorf("process %q: %w", sourceImageFilename, err)
	}
	if err := SaveImage(res, resultImageFilename); err != nil {
		return err
	}
	p.logger.WithFields(logrus.Fields{
		"input":   sourceImageFilename,
		"output":  resultImageFilename,
		"elapsed": time.Since(start),
	}).Info("image processed")
	return nil
}
