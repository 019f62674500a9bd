package scoring

import (
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/statespace-labs/sysid/internal/scaling"
)

// Evaluator scores model predictions against reference data, optionally
// mapping predictions from scaled units back to physical units first.
type Evaluator struct {
	metric  Metric
	offset  []float64
	gain    []float64
	unscale bool
}

type EvaluatorOption func(*Evaluator)

func WithMetric(m Metric) EvaluatorOption {
	return func(e *Evaluator) {
		e.metric = m
	}
}

// WithUnscaling makes the evaluator unscale predictions with the given offset
// and gain before scoring, so references stay in physical units.
func WithUnscaling(offset, gain []float64) EvaluatorOption {
	return func(e *Evaluator) {
		e.offset = offset
		e.gain = gain
		e.unscale = true
	}
}

func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{metric: R2}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate runs the configured scoring pass over a training and a test set.
func (e *Evaluator) Evaluate(yTrain, yhatTrain, yTest, yhatTest mat.Matrix) (Scores, error) {
	log.Debug().Msgf("Evaluating %v scores", e.metric)

	if e.unscale {
		yhatTrain = scaling.Unscale(mat.DenseCopyOf(yhatTrain), e.offset, e.gain)
		yhatTest = scaling.Unscale(mat.DenseCopyOf(yhatTest), e.offset, e.gain)
	}

	scoreTrain, scoreTest, report, err := ComputeScores(yTrain, yhatTrain, yTest, yhatTest, e.metric)
	if err != nil {
		return Scores{}, err
	}

	ny := float64(len(scoreTrain))
	return Scores{
		Train:        scoreTrain,
		Test:         scoreTest,
		AverageTrain: floats.Sum(scoreTrain) / ny,
		AverageTest:  floats.Sum(scoreTest) / ny,
		Report:       report,
	}, nil
}
