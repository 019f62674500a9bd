package scaling

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func testModel() StateSpaceModel {
	return StateSpaceModel{
		A: mat.NewDense(2, 2, []float64{0.9, 0.1, 0.0, 0.5}),
		B: mat.NewDense(2, 2, []float64{1.0, 2.0, 0.5, -1.0}),
		C: mat.NewDense(2, 2, []float64{1.0, 0.0, 3.0, -2.0}),
		D: mat.NewDense(2, 2, []float64{0.1, 0.2, 0.3, 0.4}),
	}
}

func TestUnscaleModelIdentityGains(t *testing.T) {
	model := testModel()
	ymean := []float64{2.0, -1.0}
	umean := []float64{0.5, 4.0}
	ones := []float64{1.0, 1.0}

	unscaled, ymeanOut, umeanOut := UnscaleModel(model, ymean, ones, umean, ones)

	assert.True(t, mat.Equal(model.A, unscaled.A))
	assert.True(t, mat.Equal(model.B, unscaled.B))
	assert.True(t, mat.Equal(model.C, unscaled.C))
	assert.True(t, mat.Equal(model.D, unscaled.D))
	assert.Equal(t, ymean, ymeanOut)
	assert.Equal(t, umean, umeanOut)
}

func TestUnscaleModelFoldsGains(t *testing.T) {
	model := testModel()
	ygain := []float64{0.5, 5.0}
	ugain := []float64{2.0, 4.0}

	unscaled, _, _ := UnscaleModel(model, []float64{0, 0}, ygain, []float64{0, 0}, ugain)

	// B columns scale by ugain
	assert.InDelta(t, 2.0, unscaled.B.At(0, 0), epsilon)
	assert.InDelta(t, 8.0, unscaled.B.At(0, 1), epsilon)
	assert.InDelta(t, -4.0, unscaled.B.At(1, 1), epsilon)

	// C rows divide by ygain
	assert.InDelta(t, 2.0, unscaled.C.At(0, 0), epsilon)
	assert.InDelta(t, 0.6, unscaled.C.At(1, 0), epsilon)
	assert.InDelta(t, -0.4, unscaled.C.At(1, 1), epsilon)

	// D takes both: * ugain[j] / ygain[i]
	assert.InDelta(t, 0.1*2.0/0.5, unscaled.D.At(0, 0), epsilon)
	assert.InDelta(t, 0.4*4.0/5.0, unscaled.D.At(1, 1), epsilon)

	// A is passed through untouched
	assert.True(t, mat.Equal(model.A, unscaled.A))

	// inputs are not mutated
	assert.Equal(t, 1.0, model.B.At(0, 0))
	assert.Equal(t, 1.0, model.C.At(0, 0))
	assert.Equal(t, 0.1, model.D.At(0, 0))
}

func TestStateSpaceModelDims(t *testing.T) {
	model := StateSpaceModel{
		A: mat.NewDense(3, 3, nil),
		B: mat.NewDense(3, 2, nil),
		C: mat.NewDense(1, 3, nil),
		D: mat.NewDense(1, 2, nil),
	}

	assert.Equal(t, 3, model.NumStates())
	assert.Equal(t, 2, model.NumInputs())
	assert.Equal(t, 1, model.NumOutputs())
}

func TestFprintEigsRealSpectrum(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{0.5, 0.0, 0.0, -0.25})

	var b strings.Builder
	require.NoError(t, FprintEigs(&b, a))

	out := b.String()
	assert.Contains(t, out, "Eigenvalues of A:")
	assert.Contains(t, out, "0.5000")
	assert.Contains(t, out, "-0.2500")
	assert.NotContains(t, out, "j")
}

func TestFprintEigsComplexPair(t *testing.T) {
	// planar rotation, eigenvalues are +/- i
	a := mat.NewDense(2, 2, []float64{0.0, -1.0, 1.0, 0.0})

	var b strings.Builder
	require.NoError(t, FprintEigs(&b, a))

	assert.Contains(t, b.String(), " + j")
}
