package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	palimpsest "github.com/rprtr258/palimpsest/pkg"
)

func TestJobsFor(t *testing.T) {
	assert.Equal(t,
		[]palimpsest.Job{{Source: "in/a.png", Destination: "result.png"}},
		jobsFor([]string{"in/a.png"}, "result.png", "edges"),
	)
	assert.Equal(t,
		[]palimpsest.Job{
			{Source: "in/a.png", Destination: "in/a.png.edges.png"},
			{Source: "b.tif", Destination: "b.tif.edges.png"},
		},
		jobsFor([]string{"in/a.png", "b.tif"}, "result.png", "edges"),
	)
}

func TestImageStem(t *testing.T) {
	for input, want := range map[string]string{
		"0001_012_pseudo_CFUR.png":     "0001_012_pseudo_CFUR",
		"dir/0001_012_B_color.tif":     "0001_012_B_color",
		"0001_012_365":                 "0001_012_365",
		"/abs/path/0001_012_pca_C1.jp": "0001_012_pca_C1",
	} {
		assert.Equal(t, want, imageStem(input), input)
	}
}

func TestKernelNames(t *testing.T) {
	names := kernelNames()
	assert.Len(t, names, len(palimpsest.NamedKernels))
	assert.IsIncreasing(t, names)
}

func TestTransformFlagsResolveAtEitherLevel(t *testing.T) {
	type resolved struct {
		output string
		lower  float64
		size   int
	}
	run := func(t *testing.T, args ...string) resolved {
		var res resolved
		app := &cli.App{
			Name:  "palimpsest",
			Flags: transformFlags(),
			Commands: []*cli.Command{{
				Name:  "edges",
				Flags: transformFlags(),
				Action: func(ctx *cli.Context) error {
					cfg := configFromFlags(ctx)
					res = resolved{
						output: flagContext(ctx, "output").String("output"),
						lower:  cfg.LowerThreshold,
						size:   cfg.GaborSize,
					}
					return nil
				},
			}},
		}
		require.NoError(t, app.Run(append([]string{"palimpsest"}, args...)))
		return res
	}

	defaults := palimpsest.DefaultConfig()
	for name, tc := range map[string]struct {
		args []string
		want resolved
	}{
		"defaults":          {[]string{"edges", "in.png"}, resolved{"", defaults.LowerThreshold, defaults.GaborSize}},
		"app level":         {[]string{"-o", "app.png", "--lower", "0.3", "edges", "in.png"}, resolved{"app.png", 0.3, defaults.GaborSize}},
		"command level":     {[]string{"edges", "-o", "cmd.png", "--lower", "0.2", "--gabor-size", "7", "in.png"}, resolved{"cmd.png", 0.2, 7}},
		"command overrides": {[]string{"-o", "app.png", "edges", "--output", "cmd.png", "in.png"}, resolved{"cmd.png", defaults.LowerThreshold, defaults.GaborSize}},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, run(t, tc.args...))
		})
	}
}
