package collector

import (
	"time"

	"github.com/jamiealquiza/tachymeter"
)

// tachymeterCollector aggregates over a fixed window of the most recent
// iteration times using the jamiealquiza/tachymeter library. Memory stays
// bounded regardless of session length, at the cost of forgetting older
// iterations.
type tachymeterCollector struct {
	tach *tachymeter.Tachymeter
}

func NewTachymeterCollector(window int) *tachymeterCollector {
	return &tachymeterCollector{tach: tachymeter.New(&tachymeter.Config{
		Size: window,
	})}
}

func (c *tachymeterCollector) Add(t time.Duration) {
	c.tach.AddTime(t)
}

func (c *tachymeterCollector) Aggregate() *Aggregation {
	metrics := c.tach.Calc()
	return &Aggregation{
		P50: metrics.Time.P50,
		P75: metrics.Time.P75,
		P95: metrics.Time.P95,
	}
}

func (c *tachymeterCollector) Reset() {
	c.tach.Reset()
}
