package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	palimpsest "github.com/rprtr258/palimpsest/pkg"
	"github.com/rprtr258/palimpsest/pkg/details"
)

const envPrefix = "PALIMPSEST_"

var logger = logrus.New()

func initLogger(debugMode bool) {
	logger.SetOutput(os.Stderr)
	if debugMode {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
		return
	}
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})
}

// flagContext returns the innermost context in which name was given on the
// command line or through the environment, so that flags are honoured both
// before and after the command name. Unset flags resolve to ctx defaults.
func flagContext(ctx *cli.Context, name string) *cli.Context {
	for _, c := range ctx.Lineage() {
		if c.IsSet(name) {
			return c
		}
	}
	return ctx
}

func configFromFlags(ctx *cli.Context) palimpsest.Config {
	float := func(name string) float64 {
		return flagContext(ctx, name).Float64(name)
	}
	return palimpsest.Config{
		LowerThreshold: float("lower"),
		UpperThreshold: float("upper"),
		BlurSigma:      float("sigma"),
		GaborSize:      flagContext(ctx, "gabor-size").Int("gabor-size"),
		GaborLambda:    float("gabor-lambda"),
		GaborGamma:     float("gabor-gamma"),
	}
}

// jobsFor writes a single input to the fixed output name, several inputs
// next to themselves as <input>.<suffix>.png.
func jobsFor(inputs []string, output, suffix string) []palimpsest.Job {
	jobs := make([]palimpsest.Job, len(inputs))
	for i, input := range inputs {
		dst := output
		if len(inputs) > 1 {
			dst = fmt.Sprintf("%s.%s.png", input, suffix)
		}
		jobs[i] = palimpsest.Job{Source: input, Destination: dst}
	}
	return jobs
}

func imageStem(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func transformAction(
	defaultOutput, suffix string,
	transform func(*cli.Context, *palimpsest.Pipeline) (palimpsest.Transform, error),
	report bool,
) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		if ctx.NArg() == 0 {
			return cli.Exit("no input image given", 2)
		}
		p, err := palimpsest.New(configFromFlags(ctx), logger)
		if err != nil {
			return err
		}
		t, err := transform(ctx, p)
		if err != nil {
			return err
		}

		output := flagContext(ctx, "output").String("output")
		if output == "" {
			output = defaultOutput
		}
		inputs := ctx.Args().Slice()
		if report {
			for _, input := range inputs {
				d, err := details.Parse(imageStem(input))
				if err != nil {
					logger.WithError(err).WithField("input", input).Warn("image name not classified")
					continue
				}
				fmt.Fprintf(os.Stderr, "%s\n%s\n", input, d)
			}
		}

		jobs := jobsFor(inputs, output, suffix)
		if err := p.ProcessFiles(ctx.Context, jobs, t, flagContext(ctx, "jobs").Int("jobs")); err != nil {
			return err
		}
		for _, job := range jobs {
			fmt.Println(job.Destination)
		}
		return nil
	}
}

func edges(_ *cli.Context, p *palimpsest.Pipeline) (palimpsest.Transform, error) {
	return p.Edges, nil
}

func texture(_ *cli.Context, p *palimpsest.Pipeline) (palimpsest.Transform, error) {
	return p.Texture, nil
}

func convolve(ctx *cli.Context, p *palimpsest.Pipeline) (palimpsest.Transform, error) {
	name := ctx.String("kernel")
	k, ok := palimpsest.NamedKernels[name]
	if !ok {
		return nil, cli.Exit(fmt.Sprintf("unknown kernel %q, known: %s", name, strings.Join(kernelNames(), ", ")), 2)
	}
	return p.Kernel(name, k), nil
}

func kernelNames() []string {
	names := make([]string, 0, len(palimpsest.NamedKernels))
	for name := range palimpsest.NamedKernels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func describe(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return cli.Exit("no image name given", 2)
	}
	for _, name := range ctx.Args().Slice() {
		d, err := details.Parse(imageStem(name))
		if err != nil {
			return err
		}
		fmt.Printf("%s\n%s\n", name, d)
	}
	return nil
}

// transformFlags are registered on the app and on every transforming
// command; flagContext picks whichever level the user set.
func transformFlags() []cli.Flag {
	defaults := palimpsest.DefaultConfig()
	return []cli.Flag{
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "result file when a single image is given, format by extension"},
		&cli.IntFlag{Name: "jobs", Aliases: []string{"j"}, Usage: "images processed at once, 0 for one per CPU"},
		&cli.Float64Flag{Name: "lower", Value: defaults.LowerThreshold, EnvVars: []string{envPrefix + "LOWER"}, Usage: "weak edge cutoff, fraction of 255"},
		&cli.Float64Flag{Name: "upper", Value: defaults.UpperThreshold, EnvVars: []string{envPrefix + "UPPER"}, Usage: "strong edge cutoff, fraction of 255"},
		&cli.Float64Flag{Name: "sigma", Value: defaults.BlurSigma, EnvVars: []string{envPrefix + "SIGMA"}, Usage: "blur sigma, kept for compatibility, kernel is fixed"},
		&cli.IntFlag{Name: "gabor-size", Value: defaults.GaborSize, EnvVars: []string{envPrefix + "GABOR_SIZE"}, Usage: "gabor kernel side, odd"},
		&cli.Float64Flag{Name: "gabor-lambda", Value: defaults.GaborLambda, EnvVars: []string{envPrefix + "GABOR_LAMBDA"}, Usage: "gabor wavelength in pixels"},
		&cli.Float64Flag{Name: "gabor-gamma", Value: defaults.GaborGamma, EnvVars: []string{envPrefix + "GABOR_GAMMA"}, Usage: "gabor spatial aspect ratio"},
	}
}

func newApp() *cli.App {
	edgesAction := transformAction("result.png", "edges", edges, true)
	return &cli.App{
		Name:      "palimpsest",
		Usage:     "edge and texture maps for multispectral manuscript images",
		ArgsUsage: "IMAGE...",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "verbose text logging"},
		}, transformFlags()...),
		Before: func(ctx *cli.Context) error {
			initLogger(ctx.Bool("debug"))
			return nil
		},
		Action: edgesAction,
		Commands: []*cli.Command{
			{
				Name:      "edges",
				Usage:     "greyscale, blur, sobel, thinning, thresholding and linking",
				ArgsUsage: "IMAGE...",
				Flags:     transformFlags(),
				Action:    edgesAction,
			},
			{
				Name:      "gabor",
				Usage:     "texture energy from a bank of six oriented gabor filters",
				ArgsUsage: "IMAGE...",
				Flags:     transformFlags(),
				Action:    transformAction("gabor.png", "gabor", texture, false),
			},
			{
				Name:      "convolve",
				Usage:     "apply a named 3x3 kernel",
				ArgsUsage: "IMAGE...",
				Flags: append(transformFlags(),
					&cli.StringFlag{Name: "kernel", Aliases: []string{"k"}, Required: true, Usage: strings.Join(kernelNames(), ", ")},
				),
				Action: transformAction("convolved.png", "convolved", convolve, false),
			},
			{
				Name:      "describe",
				Usage:     "print what an image file name says about the capture",
				ArgsUsage: "NAME...",
				Action:    describe,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Fatal(err.Error())
	}
}
