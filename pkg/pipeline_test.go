package palimpsest

import (
	"context"
	"image"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square draws a bright square on a dark background.
func square(t testing.TB, size int) *image.RGBA {
	im := uniform(t, size, size, 20)
	for y := size / 4; y < 3*size/4; y++ {
		for x := size / 4; x < 3*size/4; x++ {
			SetIntensity(im, x, y, 220)
		}
	}
	return im
}

func newPipeline(t testing.TB) (*Pipeline, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	p, err := New(DefaultConfig(), logger)
	require.NoError(t, err)
	return p, hook
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GaborSize = 4
	_, err := New(cfg, nil)
	assert.ErrorIs(t, err, ErrBadGaborSize)
}

func TestNewWithNilLogger(t *testing.T) {
	p, err := New(DefaultConfig(), nil)
	require.NoError(t, err)
	_, err = p.Edges(square(t, 8))
	assert.NoError(t, err)
}

// line draws a horizontal line of intensity 60 on a background of 20.
func line(t testing.TB, size, row int) *image.RGBA {
	im := uniform(t, size, size, 20)
	for x := 0; x < size; x++ {
		SetIntensity(im, x, row, 60)
	}
	return im
}

func TestEdges(t *testing.T) {
	p, hook := newPipeline(t)
	im := line(t, 16, 6)
	before := Clone(im)

	res, err := p.Edges(im)
	require.NoError(t, err)
	assert.Equal(t, im.Bounds(), res.Bounds())
	assert.Equal(t, before.Pix, im.Pix)

	// Blurred column around the line: 20 24 30 32 30 24 20. Only the lower
	// flank has positive derivatives: 32 40 16 from row 7 on, and the peak
	// at row 8 is weak (40) and then linked to strong.
	for y := 0; y < 16; y++ {
		want := Background
		if y == 8 {
			want = Strong
		}
		for x := 0; x < 16; x++ {
			assert.Equal(t, want, Intensity(res, x, y), "(%d, %d)", x, y)
		}
	}

	var stages []string
	for _, e := range hook.AllEntries() {
		stages = append(stages, e.Data["stage"].(string))
	}
	assert.Equal(t, []string{"greyscale", "blur", "gradient", "suppress", "threshold", "link"}, stages)
}

func TestEdgesUniformIsBlank(t *testing.T) {
	p, _ := newPipeline(t)
	res, err := p.Edges(uniform(t, 10, 6, 140))
	require.NoError(t, err)
	assert.Equal(t, intensities(uniform(t, 10, 6, 0)), intensities(res))
}

func TestTexture(t *testing.T) {
	p, hook := newPipeline(t)
	im := square(t, 12)
	res, err := p.Texture(im)
	require.NoError(t, err)
	assert.Equal(t, im.Bounds(), res.Bounds())
	assert.Len(t, hook.AllEntries(), 2)
}

func TestRun(t *testing.T) {
	p, hook := newPipeline(t)
	dir := t.TempDir()
	src, dst := filepath.Join(dir, "in.png"), filepath.Join(dir, "out.png")
	require.NoError(t, SaveImage(square(t, 16), src))

	require.NoError(t, p.Run(src, dst, p.Edges))
	res, err := LoadImageFile(dst)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 16), res.Bounds())

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, logrus.InfoLevel, last.Level)
	assert.Equal(t, dst, last.Data["output"])
}

func TestRunMissingInput(t *testing.T) {
	p, _ := newPipeline(t)
	dir := t.TempDir()
	assert.Error(t, p.Run(filepath.Join(dir, "missing.png"), filepath.Join(dir, "out.png"), p.Edges))
}

func TestKernelTransform(t *testing.T) {
	p, _ := newPipeline(t)
	im := uniform(t, 5, 5, 77)
	res, err := p.Kernel("blur", NamedKernels["blur"])(im)
	require.NoError(t, err)
	assert.Equal(t, intensities(im), intensities(res))
}

func TestProcessFiles(t *testing.T) {
	p, _ := newPipeline(t)
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	require.NoError(t, SaveImage(square(t, 8), good))

	jobs := []Job{
		{Source: good, Destination: filepath.Join(dir, "good.out.png")},
		{Source: filepath.Join(dir, "missing.png"), Destination: filepath.Join(dir, "missing.out.png")},
		{Source: good, Destination: filepath.Join(dir, "good.out.bmp")},
	}
	err := p.ProcessFiles(context.Background(), jobs, p.Texture, 2)
	assert.Error(t, err)

	for _, dst := range []string{jobs[0].Destination, jobs[2].Destination} {
		_, err := LoadImageFile(dst)
		assert.NoError(t, err, dst)
	}
}

func TestProcessFilesDefaultWorkers(t *testing.T) {
	p, _ := newPipeline(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	require.NoError(t, SaveImage(square(t, 8), src))
	jobs := []Job{{Source: src, Destination: filepath.Join(dir, "out.png")}}
	assert.NoError(t, p.ProcessFiles(context.Background(), jobs, p.Edges, 0))
}
