package scaling

import "gonum.org/v1/gonum/mat"

// StateSpaceModel holds the matrices of a discrete-time linear model
//
//	x(k+1) = A x(k) + B u(k)
//	y(k)   = C x(k) + D u(k)
//
// with n states, m inputs and p outputs: A is n×n, B n×m, C p×n, D p×m.
type StateSpaceModel struct {
	A *mat.Dense
	B *mat.Dense
	C *mat.Dense
	D *mat.Dense
}

// NumInputs returns m, the width of B.
func (m StateSpaceModel) NumInputs() int {
	_, c := m.B.Dims()
	return c
}

// NumOutputs returns p, the height of C.
func (m StateSpaceModel) NumOutputs() int {
	r, _ := m.C.Dims()
	return r
}

// NumStates returns n, the order of A.
func (m StateSpaceModel) NumStates() int {
	r, _ := m.A.Dims()
	return r
}

// UnscaleModel rewrites a model trained on standardized inputs and outputs so
// that it consumes and produces physical units directly:
//
//	x(k+1) = A x(k) + B diag(ugain) (u(k) - umean)
//	y(k)   = diag(1/ygain) C x(k) + diag(1/ygain) D diag(ugain) (u(k) - umean) + ymean
//
// The gains are folded into B, C and D; A is unaffected by the change of
// units. The returned ymean and umean stay outside the matrices and are the
// additive offsets the caller applies at the model interface.
func UnscaleModel(m StateSpaceModel, ymean, ygain, umean, ugain []float64) (StateSpaceModel, []float64, []float64) {
	br, bc := m.B.Dims()
	b := mat.NewDense(br, bc, nil)
	for i := 0; i < br; i++ {
		for j := 0; j < bc; j++ {
			b.Set(i, j, m.B.At(i, j)*ugain[j])
		}
	}

	cr, cc := m.C.Dims()
	c := mat.NewDense(cr, cc, nil)
	for i := 0; i < cr; i++ {
		for j := 0; j < cc; j++ {
			c.Set(i, j, m.C.At(i, j)/ygain[i])
		}
	}

	dr, dc := m.D.Dims()
	d := mat.NewDense(dr, dc, nil)
	for i := 0; i < dr; i++ {
		for j := 0; j < dc; j++ {
			d.Set(i, j, m.D.At(i, j)*ugain[j]/ygain[i])
		}
	}

	return StateSpaceModel{A: m.A, B: b, C: c, D: d}, ymean, umean
}
