package scaling

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"
)

// FprintEigs writes the eigenvalues of the square matrix a to w, one per
// line, real part first and a " + j..." suffix when the imaginary part is
// nonzero.
func FprintEigs(w io.Writer, a mat.Matrix) error {
	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenNone); !ok {
		return errors.New("eigendecomposition failed")
	}

	fmt.Fprintln(w, "Eigenvalues of A:")
	for _, v := range eig.Values(nil) {
		fmt.Fprintf(w, "%5.4f", real(v))
		if im := imag(v); im != 0 {
			fmt.Fprintf(w, " + j%5.4f", im)
		}
		fmt.Fprintln(w)
	}

	return nil
}

// PrintEigs prints the eigenvalues of a to stdout.
func PrintEigs(a mat.Matrix) error {
	return FprintEigs(os.Stdout, a)
}
