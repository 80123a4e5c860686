package collector

import (
	"fmt"
	"sync"
	"time"

	"github.com/montanaflynn/stats"
)

// arrayCollector keeps every iteration time it is fed. Storage and
// aggregation are both O(n), which suits short sessions where the full
// series is wanted afterwards; long-running sessions should prefer the
// windowed collector.
type arrayCollector struct {
	secs    []float64
	secsMux *sync.Mutex
}

func NewArrayCollector() *arrayCollector {
	return &arrayCollector{
		secs:    []float64{},
		secsMux: &sync.Mutex{},
	}
}

// All returns a copy of every iteration time collected, in seconds.
func (c *arrayCollector) All() []float64 {
	c.secsMux.Lock()
	defer c.secsMux.Unlock()
	times := make([]float64, len(c.secs))
	copy(times, c.secs)
	return times
}

func (c *arrayCollector) Len() int {
	c.secsMux.Lock()
	defer c.secsMux.Unlock()
	return len(c.secs)
}

func (c *arrayCollector) Add(t time.Duration) {
	c.secsMux.Lock()
	c.secs = append(c.secs, float64(t)/float64(time.Second))
	c.secsMux.Unlock()
}

func (c *arrayCollector) Aggregate() *Aggregation {
	// The stats package copies the input, so the mutex must be held while
	// the calculations run.
	c.secsMux.Lock()
	defer c.secsMux.Unlock()

	// The stats package rejects empty input.
	if len(c.secs) == 0 {
		return &Aggregation{
			P50: 0,
			P75: 0,
			P95: 0,
		}
	}

	p50, err := stats.Median(c.secs)
	if err != nil {
		panic(fmt.Errorf("unexpected err in arrayCollector.Aggregate() while calculating p50: %w", err))
	}
	p75, err := stats.Percentile(c.secs, 75)
	if err != nil {
		panic(fmt.Errorf("unexpected err in arrayCollector.Aggregate() while calculating p75: %w", err))
	}
	p95, err := stats.Percentile(c.secs, 95)
	if err != nil {
		panic(fmt.Errorf("unexpected err in arrayCollector.Aggregate() while calculating p95: %w", err))
	}

	return &Aggregation{
		P50: time.Duration(p50 * float64(time.Second)),
		P75: time.Duration(p75 * float64(time.Second)),
		P95: time.Duration(p95 * float64(time.Second)),
	}
}

func (c *arrayCollector) Reset() {
	c.secsMux.Lock()
	c.secs = []float64{}
	c.secsMux.Unlock()
}
