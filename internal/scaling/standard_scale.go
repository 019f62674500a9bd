// Package scaling contains signal standardization and the transforms that map
// fitted models back to physical units.
package scaling

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// stdTolerance is the threshold below which a column counts as constant and
// keeps unit gain instead of 1/std.
const stdTolerance = 1e-6

// StandardScale standardizes each column of x to zero mean and, where the
// column is not constant, unit variance. The standard deviation uses the
// population divisor n. It returns the scaled matrix together with the
// per-column mean and gain, where scaled = (x - mean) * gain and
// gain = 1/std for columns with std above stdTolerance, 1 otherwise.
func StandardScale(x *mat.Dense) (*mat.Dense, []float64, []float64) {
	rows, cols := x.Dims()

	mean := make([]float64, cols)
	gain := make([]float64, cols)

	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, x)
		mean[j] = stat.Mean(col, nil)

		ss := 0.0
		for _, v := range col {
			d := v - mean[j]
			ss += d * d
		}
		std := math.Sqrt(ss / float64(rows))

		gain[j] = 1.0
		if std > stdTolerance {
			gain[j] = 1.0 / std
		}
	}

	scaled := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			scaled.Set(i, j, (x.At(i, j)-mean[j])*gain[j])
		}
	}

	return scaled, mean, gain
}
