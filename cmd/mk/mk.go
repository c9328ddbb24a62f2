package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rprtr258/mk"
	md "github.com/rprtr258/mk/contrib/markdown"
	"github.com/urfave/cli/v2"

	palimpsest "github.com/rprtr258/palimpsest/pkg"
)

func main() {
	if err := (&cli.App{
		Name:  "mk",
		Usage: "palimpsest development tasks",
		Commands: []*cli.Command{
			{
				Name:  "imgs",
				Usage: "regenerate example images from img/static/orig.png",
				Action: func(*cli.Context) error {
					imgsDir := "img/static"
					cliCmd := mk.ShellAlias("go", "run", "./cmd/palimpsest")
					orig := filepath.Join(imgsDir, "orig.png")

					for destination, args := range map[string][]string{
						"edges":           {"edges"},
						"gabor":           {"gabor"},
						"blur":            {"convolve", "-k", "blur"},
						"weakblur":        {"convolve", "-k", "weakblur"},
						"emboss":          {"convolve", "-k", "emboss"},
						"sharpen":         {"convolve", "-k", "sharpen"},
						"edgeenhance":     {"convolve", "-k", "edgeenhance"},
						"edgedetect1":     {"convolve", "-k", "edgedetect1"},
						"edgedetect2":     {"convolve", "-k", "edgedetect2"},
						"horizontallines": {"convolve", "-k", "horizontallines"},
						"verticallines":   {"convolve", "-k", "verticallines"},
					} {
						imageFilename, _ := mk.Must2(cliCmd(append(args, orig)...))
						mk.Must0(os.Rename(strings.TrimSpace(imageFilename), filepath.Join(imgsDir, destination+".png")))
					}

					return nil
				},
			},
			{
				Name:  "readme",
				Usage: "compile readme file",
				Action: func(*cli.Context) error {
					b := &bytes.Buffer{}
					md.H1(b, "palimpsest - edge and texture maps for multispectral manuscript images")

					md.H2(b, "Install")
					md.Code(b, "bash", "go install github.com/rprtr258/palimpsest/cmd/palimpsest@latest")

					md.H2(b, "Usage")
					cliCmd := mk.ShellAlias("go", "run", "./cmd/palimpsest")
					for _, args := range [][]string{
						{"--help"},
						{"edges", "--help"},
						{"gabor", "--help"},
						{"convolve", "--help"},
						{"describe", "--help"},
					} {
						usage, _ := mk.Must2(cliCmd(args...))
						md.Code(b, "php", usage)
					}

					md.H2(b, "Kernels")
					md.Table(b, []string{"name", "weights", "divisor"}, kernelRows())

					md.H2(b, "Examples")
					rows, err := exampleRows("img/static")
					if err != nil {
						return err
					}
					md.Table(b, []string{"result", "command"}, rows)

					mk.Must0(os.WriteFile("README.md", b.Bytes(), 0o644))

					return nil
				},
			},
		},
	}).Run(os.Args); err != nil {
		log.Fatal(err.Error())
	}
}

// kernelRows lists the kernels selectable with convolve --kernel.
func kernelRows() [][]string {
	names := make([]string, 0, len(palimpsest.NamedKernels))
	for name := range palimpsest.NamedKernels {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		k := palimpsest.NamedKernels[name]
		weights := make([]string, k.Size())
		for row := range weights {
			cols := make([]string, k.Size())
			for col := range cols {
				cols[col] = strconv.FormatFloat(k.Weight(row, col), 'g', -1, 64)
			}
			weights[row] = strings.Join(cols, " ")
		}
		rows = append(rows, []string{
			"`" + name + "`",
			"`" + strings.Join(weights, " / ") + "`",
			strconv.FormatFloat(k.Divisor(), 'g', -1, 64),
		})
	}
	return rows
}

// exampleRows pairs every generated image with the command producing it.
func exampleRows(dir string) ([][]string, error) {
	examples, err := fs.Glob(os.DirFS(dir), "*.png")
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(examples))
	for _, example := range examples {
		name := strings.TrimSuffix(example, ".png")
		command := "palimpsest convolve -k " + name + " orig.png"
		switch {
		case name == "orig":
			command = "input"
		case name == "edges" || name == "gabor":
			command = "palimpsest " + name + " orig.png"
		}
		rows = append(rows, []string{fmt.Sprintf("![](./%s/%s)", dir, example), "`" + command + "`"})
	}
	return rows, nil
}
