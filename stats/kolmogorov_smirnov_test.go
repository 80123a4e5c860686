package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// rampSeries returns n evenly spaced values in [base, base+spread).
func rampSeries(n int, base, spread float64) []float64 {
	series := make([]float64, n)
	for i := range series {
		series[i] = base + spread*float64(i)/float64(n)
	}
	return series
}

func TestDistributionsDiffer_RejectsShiftedSeries(t *testing.T) {
	control := rampSeries(100, 1, 1)
	candidate := rampSeries(100, 6, 1)

	assert.True(t, DistributionsDiffer(control, candidate, C95))
}

func TestDistributionsDiffer_AcceptsIdenticalSeries(t *testing.T) {
	control := rampSeries(100, 1, 1)
	candidate := rampSeries(100, 1, 1)

	assert.False(t, DistributionsDiffer(control, candidate, C90))
}

func TestDistributionsDiffer_PanicsOnUnknownConfidence(t *testing.T) {
	assert.Panics(t, func() {
		DistributionsDiffer([]float64{1}, []float64{1}, Confidence(42))
	})
}

func TestSampleLatency_RespectsBounds(t *testing.T) {
	for i := 0; i < 1000; i++ {
		sample := SampleLatency(0, 1, 0.5, 0.25)
		assert.GreaterOrEqual(t, sample, 0.0)
		assert.LessOrEqual(t, sample, 1.0)
	}
}

func TestSampleLatency_OpenUpperBound(t *testing.T) {
	for i := 0; i < 100; i++ {
		sample := SampleLatency(0, math.Inf(1), 0, 3)
		assert.GreaterOrEqual(t, sample, 0.0)
	}
}
