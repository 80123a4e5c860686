// Package collector aggregates iteration timings while a benchmark session
// is still in flight, so a runner can report rolling percentiles without
// waiting for the final summary.
package collector

import "time"

type Aggregation struct {
	P50 time.Duration // P50 is the 50th percentile iteration time.
	P75 time.Duration // P75 is the 75th percentile iteration time.
	P95 time.Duration // P95 is the 95th percentile iteration time.
}

type Collector interface {
	Add(t time.Duration)     // Add feeds one iteration time to the collector.
	Aggregate() *Aggregation // Aggregate calculates rolling percentiles.
	Reset()                  // Reset clears the collector for reuse.
}
