package scaling

import "gonum.org/v1/gonum/mat"

// Unscale maps data in scaled units back to physical units, x = xs/gain + offset.
// It inverts StandardScale when called with the offset and gain that
// StandardScale returned. A zero gain entry yields Inf in that column; the
// gains are not validated here.
func Unscale(xs *mat.Dense, offset, gain []float64) *mat.Dense {
	rows, cols := xs.Dims()

	x := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			x.Set(i, j, xs.At(i, j)/gain[j]+offset[j])
		}
	}

	return x
}
