package palimpsest

import "fmt"

// Config holds every tunable of the edge and texture pipelines.
type Config struct {
	LowerThreshold float64
	UpperThreshold float64
	// BlurSigma is carried through to GaussianBlur, which ignores it.
	BlurSigma   float64
	GaborSize   int
	GaborLambda float64
	GaborGamma  float64
}

func DefaultConfig() Config {
	return Config{
		LowerThreshold: 0.15,
		UpperThreshold: 0.45,
		BlurSigma:      1.4,
		GaborSize:      9,
		GaborLambda:    4,
		GaborGamma:     0.5,
	}
}

func (c Config) Validate() error {
	switch {
	case !(c.LowerThreshold >= 0 && c.LowerThreshold <= 1):
		return fmt.Errorf("lower threshold %v: %w", c.LowerThreshold, ErrBadThreshold)
	case !(c.UpperThreshold >= 0 && c.UpperThreshold <= 1):
		return fmt.Errorf("upper threshold %v: %w", c.UpperThreshold, ErrBadThreshold)
	case c.LowerThreshold > c.UpperThreshold:
		return fmt.Errorf("lower threshold %v above upper %v: %w", c.LowerThreshold, c.UpperThreshold, ErrBadThreshold)
	case c.GaborSize < 3 || c.GaborSize%2 == 0:
		return fmt.Errorf("gabor size %d: %w", c.GaborSize, ErrBadGaborSize)
	case !(c.GaborLambda > 0) || !(c.GaborGamma > 0):
		return fmt.Errorf("gabor lambda=%v gamma=%v: %w", c.GaborLambda, c.GaborGamma, ErrBadGaborParam)
	}
	return nil
}
