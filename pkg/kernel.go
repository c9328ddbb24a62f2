package palimpsest

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrEvenKernel  = errors.New("kernel must be square with odd side")
	ErrZeroDivisor = errors.New("kernel divisor must not be zero")
)

// Kernel is an immutable odd-sized square weight matrix with the divisor its
// weighted sum gets divided by.
type Kernel struct {
	weights *mat.Dense
	divisor float64
}

func NewKernel(weights [][]float64, divisor float64) (Kernel, error) {
	n := len(weights)
	if n == 0 || n%2 == 0 {
		return Kernel{}, fmt.Errorf("side %d: %w", n, ErrEvenKernel)
	}
	data := make([]float64, 0, n*n)
	for i, row := range weights {
		if len(row) != n {
			return Kernel{}, fmt.Errorf("row %d has %d weights, want %d: %w", i, len(row), n, ErrEvenKernel)
		}
		data = append(data, row...)
	}
	if divisor == 0 {
		return Kernel{}, ErrZeroDivisor
	}
	return Kernel{
		weights: mat.NewDense(n, n, data),
		divisor: divisor,
	}, nil
}

// NewNormalizedKernel uses the sum of the weights as divisor.
func NewNormalizedKernel(weights [][]float64) (Kernel, error) {
	k, err := NewKernel(weights, 1)
	if err != nil {
		return Kernel{}, err
	}
	sum := mat.Sum(k.weights)
	if sum == 0 {
		return Kernel{}, ErrZeroDivisor
	}
	k.divisor = sum
	return k, nil
}

// MustKernel is like NewKernel but panics on error. Use only for fixed tables.
func MustKernel(k Kernel, err error) Kernel {
	if err != nil {
		panic(err)
	}
	return k
}

func (k Kernel) Size() int {
	n, _ := k.weights.Dims()
	return n
}

// Weight at kernel row and column, both in [0, Size()).
func (k Kernel) Weight(row, col int) float64 {
	return k.weights.At(row, col)
}

func (k Kernel) Divisor() float64 {
	return k.divisor
}

func intWeights(weights [][]int) [][]float64 {
	res := make([][]float64, len(weights))
	for i, row := range weights {
		res[i] = make([]float64, len(row))
		for j, w := range row {
			res[i][j] = float64(w)
		}
	}
	return res
}

var (
	// GaussianKernel is the fixed 5x5 smoothing kernel, divisor 159.
	GaussianKernel = MustKernel(NewNormalizedKernel(intWeights([][]int{
		{2, 4, 5, 4, 2},
		{4, 9, 12, 9, 4},
		{5, 12, 15, 12, 5},
		{4, 9, 12, 9, 4},
		{2, 4, 5, 4, 2},
	})))
	SobelHorizontalKernel = MustKernel(NewKernel(intWeights([][]int{
		{1, 2, 1},
		{0, 0, 0},
		{-1, -2, -1},
	}), 1))
	SobelVerticalKernel = MustKernel(NewKernel(intWeights([][]int{
		{1, 0, -1},
		{2, 0, -2},
		{1, 0, -1},
	}), 1))
)

// autoKernel divides by the weight sum, or by 1 for zero-sum edge kernels.
func autoKernel(weights [][]int) Kernel {
	if k, err := NewNormalizedKernel(intWeights(weights)); err == nil {
		return k
	}
	return MustKernel(NewKernel(intWeights(weights), 1))
}

// NamedKernels are the general-purpose 3x3 kernels selectable by name from
// the command line.
var NamedKernels = map[string]Kernel{
	"blur": autoKernel([][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}),
	"weakblur": autoKernel([][]int{
		{0, 1, 0},
		{1, 1, 1},
		{0, 1, 0},
	}),
	"emboss": autoKernel([][]int{
		{-2, -1, 0},
		{-1, 1, 1},
		{0, 1, 2},
	}),
	"sharpen": autoKernel([][]int{
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	}),
	"edgeenhance": autoKernel([][]int{
		{0, 0, 0},
		{-1, 1, 0},
		{0, 0, 0},
	}),
	"edgedetect1": autoKernel([][]int{
		{1, 0, -1},
		{0, 0, 0},
		{-1, 0, 1},
	}),
	"edgedetect2": autoKernel([][]int{
		{0, -1, 0},
		{-1, 4, -1},
		{0, -1, 0},
	}),
	"horizontallines": autoKernel([][]int{
		{-1, -1, -1},
		{2, 2, 2},
		{-1, -1, -1},
	}),
	"verticallines": autoKernel([][]int{
		{-1, 2, -1},
		{-1, 2, -1},
		{-1, 2, -1},
	}),
}
