package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetric(t *testing.T) {
	cases := []struct {
		name string
		want Metric
	}{
		{"R2", R2},
		{"r2", R2},
		{"BFR", BFR},
		{"bfr", BFR},
		{"Accuracy", Accuracy},
		{"ACCURACY", Accuracy},
		{"acc", Accuracy},
		{"accuracy-top1", Accuracy},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMetric(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseMetricRejectsUnknownNames(t *testing.T) {
	for _, name := range []string{"bogus", "", "rmse", "R", "bf"} {
		_, err := ParseMetric(name)
		assert.ErrorIs(t, err, ErrInvalidMetric, "name %q", name)
	}
}

func TestMetricString(t *testing.T) {
	assert.Equal(t, "R2", R2.String())
	assert.Equal(t, "BFR", BFR.String())
	assert.Equal(t, "Accuracy", Accuracy.String())
}
