package collector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayCollector_AllReturnsSeconds(t *testing.T) {
	c := NewArrayCollector()
	c.Add(1500 * time.Millisecond)
	c.Add(500 * time.Millisecond)

	all := c.All()
	require.Len(t, all, 2)
	assert.InDelta(t, 1.5, all[0], 1e-9)
	assert.InDelta(t, 0.5, all[1], 1e-9)
	assert.Equal(t, 2, c.Len())
}

func TestArrayCollector_AggregateOnEmptyReturnsZeros(t *testing.T) {
	c := NewArrayCollector()

	agg := c.Aggregate()
	assert.Equal(t, time.Duration(0), agg.P50)
	assert.Equal(t, time.Duration(0), agg.P75)
	assert.Equal(t, time.Duration(0), agg.P95)
}

func TestArrayCollector_AggregatePercentiles(t *testing.T) {
	c := NewArrayCollector()
	for i := 1; i <= 100; i++ {
		c.Add(time.Duration(i) * time.Millisecond)
	}

	agg := c.Aggregate()
	assert.InDelta(t, 0.0505, agg.P50.Seconds(), 1e-6)
	assert.InDelta(t, 0.0755, agg.P75.Seconds(), 1e-6)
	assert.InDelta(t, 0.0955, agg.P95.Seconds(), 1e-6)
}

func TestArrayCollector_Reset(t *testing.T) {
	c := NewArrayCollector()
	c.Add(time.Second)
	c.Reset()

	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.All())
}
