package timethat

import (
	"testing"
	"time"

	"github.com/Doist/timethat/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_DetectsSlowdown(t *testing.T) {
	controlClock := newSimulatedClock()
	control := NewBenchmark("control", controlClock)
	candidateClock := newSimulatedClock()
	candidate := NewBenchmark("candidate", candidateClock)

	for i := 0; i < 50; i++ {
		recordRegions(control, controlClock, time.Second+time.Duration(i)*time.Millisecond)
		recordRegions(candidate, candidateClock, 2*time.Second+time.Duration(i)*time.Millisecond)
	}

	comparison, err := Compare(control, candidate, stats.C95)
	require.NoError(t, err)

	assert.Equal(t, "control", comparison.Control)
	assert.Equal(t, "candidate", comparison.Candidate)
	assert.True(t, comparison.Significant)
	assert.InDelta(t, 97.6, comparison.MeanDiffPercent, 0.1)
	assert.Contains(t, comparison.String(), "(significant)")
}

func TestCompare_IdenticalSeriesNotSignificant(t *testing.T) {
	controlClock := newSimulatedClock()
	control := NewBenchmark("control", controlClock)
	candidateClock := newSimulatedClock()
	candidate := NewBenchmark("candidate", candidateClock)

	for i := 0; i < 50; i++ {
		d := time.Second + time.Duration(i)*time.Millisecond
		recordRegions(control, controlClock, d)
		recordRegions(candidate, candidateClock, d)
	}

	comparison, err := Compare(control, candidate, stats.C90)
	require.NoError(t, err)

	assert.False(t, comparison.Significant)
	assert.InDelta(t, 0, comparison.MeanDiffPercent, 1e-9)
}

func TestCompare_EmptyBenchmarkFails(t *testing.T) {
	clock := newSimulatedClock()
	control := NewBenchmark("control", clock)
	recordRegions(control, clock, time.Second)
	empty := NewBenchmark("empty", nil)

	_, err := Compare(control, empty, stats.C95)
	assert.Error(t, err)

	_, err = Compare(empty, control, stats.C95)
	assert.Error(t, err)
}
