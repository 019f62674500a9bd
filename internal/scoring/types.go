package scoring

// Scores collects the result of one evaluation run.
type Scores struct {
	Train        []float64 // 1D: per-output-channel score on training data
	Test         []float64 // 1D: per-output-channel score on test data
	AverageTrain float64   // unweighted mean of Train
	AverageTest  float64   // unweighted mean of Test
	Report       string    // human-readable summary
}
