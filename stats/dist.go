package stats

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// SampleLatency draws one sample from a normal distribution truncated to
// [lo, hi]. Benchmark latencies are non-negative and right-skewed, so tests
// and simulations use this to produce realistic synthetic duration series.
func SampleLatency(lo, hi, mean, sigma float64) float64 {
	randSeed := uint64(time.Now().UTC().UnixNano())

	// Inverse transform sampling: draw uniformly between the CDF values of
	// the truncation bounds and map back through the quantile function.
	// Reference: https://www.r-bloggers.com/2020/08/generating-data-from-a-truncated-distribution/
	norm := distuv.Normal{
		Mu:    mean,
		Sigma: sigma,
		Src:   rand.NewSource(randSeed),
	}

	a := norm.CDF(lo)
	b := norm.CDF(hi)
	u := distuv.Uniform{
		Min: a,
		Max: b,
		Src: rand.NewSource(randSeed),
	}.Rand()

	return norm.Quantile(u)
}
