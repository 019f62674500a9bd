// Package scoring contains logic to compute fit-quality scores for
// system-identification models.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ComputeScores scores predicted against reference outputs, one score per
// output channel plus an unweighted average across channels, separately for a
// training and a test set. Columns are output channels; a column vector is a
// single-output signal. Scores are percentages, 100 meaning a perfect fit.
//
// Reference data with zero variance makes the R2 and BFR denominators zero;
// the affected scores come out NaN or Inf and are propagated, not guarded.
// Shapes are not validated beyond what the matrix accessors enforce.
func ComputeScores(yTrain, yhatTrain, yTest, yhatTest mat.Matrix, metric Metric) (scoreTrain, scoreTest []float64, report string, err error) {
	if !metric.valid() {
		return nil, nil, "", fmt.Errorf("%w: got %v", ErrInvalidMetric, metric)
	}

	nTrain, ny := yTrain.Dims()
	nTest, _ := yTest.Dims()

	scoreTrain = make([]float64, ny)
	scoreTest = make([]float64, ny)

	train := make([]float64, nTrain)
	trainHat := make([]float64, nTrain)
	test := make([]float64, nTest)
	testHat := make([]float64, nTest)
	for i := 0; i < ny; i++ {
		mat.Col(train, i, yTrain)
		mat.Col(trainHat, i, yhatTrain)
		mat.Col(test, i, yTest)
		mat.Col(testHat, i, yhatTest)

		scoreTrain[i] = channelScore(metric, train, trainHat)
		scoreTest[i] = channelScore(metric, test, testHat)
	}

	unit := metric.unit()
	var b strings.Builder
	if ny > 1 {
		for i := 0; i < ny; i++ {
			fmt.Fprintf(&b, "y%d: %v score: training = % 5.4f%s, test = % 5.4f%s\n",
				i+1, metric, scoreTrain[i], unit, scoreTest[i], unit)
		}
		b.WriteString("-----\nAverage ")
	}
	fmt.Fprintf(&b, "%v score:  training = % 5.4f%s, test = % 5.4f%s",
		metric, floats.Sum(scoreTrain)/float64(ny), unit, floats.Sum(scoreTest)/float64(ny), unit)

	return scoreTrain, scoreTest, b.String(), nil
}

func channelScore(metric Metric, y, yhat []float64) float64 {
	switch metric {
	case R2:
		return 100 * (1 - residualSumSquares(y, yhat)/centeredSumSquares(y))
	case BFR:
		return 100 * (1 - residualNorm(y, yhat)/math.Sqrt(centeredSumSquares(y)))
	default:
		matched := 0
		for k := range y {
			if yhat[k] == y[k] {
				matched++
			}
		}
		return 100 * float64(matched) / float64(len(y))
	}
}

// centeredSumSquares is the sum of squared deviations of y from its own mean,
// the denominator shared by R2 and BFR.
func centeredSumSquares(y []float64) float64 {
	mean := stat.Mean(y, nil)

	ss := 0.0
	for _, v := range y {
		d := v - mean
		ss += d * d
	}
	return ss
}

func residualSumSquares(y, yhat []float64) float64 {
	r := make([]float64, len(y))
	floats.SubTo(r, yhat, y)
	return floats.Dot(r, r)
}

func residualNorm(y, yhat []float64) float64 {
	r := make([]float64, len(y))
	floats.SubTo(r, yhat, y)
	return floats.Norm(r, 2)
}
