package scoring

import (
	"errors"
	"fmt"
	"strings"
)

// Metric selects the fit-quality definition used by ComputeScores.
type Metric int

const (
	// R2 is the coefficient of determination as a percentage.
	R2 Metric = iota
	// BFR is the best fit rate, the norm-based analogue of R2.
	BFR
	// Accuracy is the percentage of exactly matching samples, for
	// discrete-valued outputs.
	Accuracy
)

// ErrInvalidMetric reports a metric name or value outside the supported set.
var ErrInvalidMetric = errors.New("invalid fit metric, only 'R2', 'BFR', and 'Accuracy' are supported")

func (m Metric) String() string {
	switch m {
	case R2:
		return "R2"
	case BFR:
		return "BFR"
	case Accuracy:
		return "Accuracy"
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// unit is the suffix appended to formatted scores in reports.
func (m Metric) unit() string {
	if m == Accuracy {
		return "%"
	}
	return ""
}

func (m Metric) valid() bool {
	return m == R2 || m == BFR || m == Accuracy
}

// ParseMetric resolves a textual metric name. Matching is case-insensitive,
// and any name beginning with "acc" selects Accuracy.
func ParseMetric(name string) (Metric, error) {
	switch s := strings.ToLower(name); {
	case s == "r2":
		return R2, nil
	case s == "bfr":
		return BFR, nil
	case strings.HasPrefix(s, "acc"):
		return Accuracy, nil
	}
	return 0, fmt.Errorf("%w: got %q", ErrInvalidMetric, name)
}
