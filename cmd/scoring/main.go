package main

import (
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/statespace-labs/sysid/internal/config"
	"github.com/statespace-labs/sysid/internal/scaling"
	"github.com/statespace-labs/sysid/internal/scoring"
	"github.com/statespace-labs/sysid/internal/utils/logger"
)

func main() {
	logger.Init()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	metric, err := scoring.ParseMetric(cfg.FitMetric)
	if err != nil {
		log.Fatal().Err(err).Msgf("invalid FIT_METRIC %q", cfg.FitMetric)
	}

	demoStandardScale()
	demoUnscaleModel()
	demoComputeScores(metric)
}

func demoStandardScale() {
	log.Info().Msg("--- Testing StandardScale ---")
	x := mat.NewDense(4, 2, []float64{
		1.0, 10.0,
		2.0, 10.0,
		3.0, 10.0,
		4.0, 10.0,
	})

	scaled, mean, gain := scaling.StandardScale(x)
	logger.Sugar().Infow("standardized signal", "mean", mean, "gain", gain)

	restored := scaling.Unscale(scaled, mean, gain)
	log.Info().Msgf("round trip restored value at (0,0): %f", restored.At(0, 0))
}

func demoUnscaleModel() {
	log.Info().Msg("--- Testing UnscaleModel ---")
	model := scaling.StateSpaceModel{
		A: mat.NewDense(2, 2, []float64{0.9, 0.1, 0.0, 0.5}),
		B: mat.NewDense(2, 1, []float64{1.0, 0.5}),
		C: mat.NewDense(1, 2, []float64{1.0, 0.0}),
		D: mat.NewDense(1, 1, []float64{0.1}),
	}

	if err := scaling.PrintEigs(model.A); err != nil {
		log.Error().Err(err).Msg("failed to print eigenvalues")
	}

	unscaled, ymean, umean := scaling.UnscaleModel(model,
		[]float64{2.0}, []float64{0.5}, []float64{1.0}, []float64{2.0})
	logger.Sugar().Infow("unscaled model",
		"B", unscaled.B.RawMatrix().Data,
		"C", unscaled.C.RawMatrix().Data,
		"D", unscaled.D.RawMatrix().Data,
		"ymean", ymean,
		"umean", umean,
	)
}

func demoComputeScores(metric scoring.Metric) {
	log.Info().Msg("--- Testing ComputeScores ---")
	yTrain := mat.NewDense(4, 2, []float64{
		1.0, 2.0,
		2.0, 1.0,
		3.0, 4.0,
		4.0, 3.0,
	})
	yhatTrain := mat.NewDense(4, 2, []float64{
		1.1, 2.0,
		1.9, 1.0,
		3.0, 3.9,
		4.1, 3.1,
	})
	yTest := mat.NewDense(3, 2, []float64{
		1.0, 3.0,
		2.0, 2.0,
		3.0, 1.0,
	})
	yhatTest := mat.NewDense(3, 2, []float64{
		1.2, 2.9,
		2.1, 2.0,
		2.8, 1.2,
	})

	evaluator := scoring.NewEvaluator(scoring.WithMetric(metric))
	result, err := evaluator.Evaluate(yTrain, yhatTrain, yTest, yhatTest)
	if err != nil {
		log.Fatal().Err(err).Msg("evaluation failed")
	}

	logger.Sugar().Infow("evaluation finished",
		"train", result.Train,
		"test", result.Test,
		"averageTrain", result.AverageTrain,
		"averageTest", result.AverageTest,
	)
	log.Info().Msgf("score report:\n%s", result.Report)
}
