// Package timethat measures repeated code blocks and renders a statistical
// summary per named benchmark: mean duration plus the 95% range, with
// optional event counters tallied per iteration.
//
// A benchmark is driven one scoped region at a time:
//
//	rep := timethat.Repeat(1000, "json decode", nil)
//	for rep.Next() {
//		b := rep.Benchmark()
//		// setup actions
//		b.Start()
//		decode()
//		b.Stop()
//		// teardown actions
//	}
//	summary, err := rep.Benchmark().Summary()
//
// Every loop iteration reuses the same Benchmark instance so all timings
// accumulate into one series. The package never prints anything; callers
// decide what to do with the summary string and the raw series.
package timethat

import (
	"fmt"
	"math"
	"runtime/debug"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Doist/timethat/timeformat"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// defaultQuantiles bound the 95% range reported by summaries.
var defaultQuantiles = []float64{2.5, 97.5}

const counterMarker = "- "

// Benchmark is a stateful measurement unit. Each Start/Stop pair records one
// region: its elapsed time is appended to the duration series and the
// counters incremented inside it are appended as one snapshot, so the two
// series stay aligned per iteration.
//
// A single instance must not have two regions open at once; nested Start on
// the same instance overwrites the in-progress state and is unsupported.
type Benchmark struct {
	// Name identifies the benchmark in summaries. Purely cosmetic.
	Name string

	clock Clock

	mux            sync.Mutex
	iteration      int
	results        []float64
	counterHistory []map[string]float64
	// current holds the counter tally of the open region; nil means no
	// region is open.
	current   map[string]float64
	start     time.Time
	gcPercent int
}

// NewBenchmark creates a benchmark. An empty name is derived from the calling
// function; a nil clock falls back to the realtime clock.
func NewBenchmark(name string, clock Clock) *Benchmark {
	if name == "" {
		name = callerName()
	}
	if clock == nil {
		clock = NewRealtimeClock()
	}
	return &Benchmark{Name: name, clock: clock}
}

// Start opens a scoped region: the benchmark registers itself for
// package-level Incr calls, garbage collection is switched off so a pause
// cannot skew the timing, and the start timestamp is taken last. Pair it with
// a deferred Stop so the region closes even when the measured code panics.
func (b *Benchmark) Start() {
	register(b)
	b.mux.Lock()
	b.iteration++
	b.current = map[string]float64{}
	b.gcPercent = debug.SetGCPercent(-1)
	b.start = b.clock.Now()
	b.mux.Unlock()
}

// Stop closes the open region, appending the elapsed duration and the counter
// snapshot, restoring the garbage collector target saved by Start and
// removing the benchmark from the registry. Stop without an open region is a
// no-op, so unbalanced sequences caused by earlier failures stay harmless.
func (b *Benchmark) Stop() {
	now := b.clock.Now()
	b.mux.Lock()
	if b.current == nil {
		b.mux.Unlock()
		return
	}
	b.results = append(b.results, now.Sub(b.start).Seconds())
	b.counterHistory = append(b.counterHistory, b.current)
	b.current = nil
	debug.SetGCPercent(b.gcPercent)
	b.mux.Unlock()
	unregister(b)
}

// Incr adds delta to the named counter of the open region. Increments with no
// region open are dropped silently.
func (b *Benchmark) Incr(name string, delta float64) {
	b.mux.Lock()
	if b.current != nil {
		b.current[name] += delta
	}
	b.mux.Unlock()
}

// Iteration returns the number of regions opened so far.
func (b *Benchmark) Iteration() int {
	b.mux.Lock()
	defer b.mux.Unlock()
	return b.iteration
}

// Results returns a copy of the per-region durations in seconds.
func (b *Benchmark) Results() []float64 {
	b.mux.Lock()
	defer b.mux.Unlock()
	out := make([]float64, len(b.results))
	copy(out, b.results)
	return out
}

// Percentile returns the order statistics of the duration series at the given
// quantiles, defaulting to the 95% range bounds [2.5, 97.5]. With no recorded
// regions it returns a zero for each requested quantile.
func (b *Benchmark) Percentile(q ...float64) []float64 {
	if len(q) == 0 {
		q = defaultQuantiles
	}
	return percentiles(b.Results(), q)
}

// Mean returns the arithmetic mean of the duration series. Unlike Percentile
// it fails on an empty series: the mean of nothing is undefined, and callers
// branch on that error.
func (b *Benchmark) Mean() (float64, error) {
	return stats.Mean(b.Results())
}

// CounterNames returns the sorted set of counter names seen in any region.
func (b *Benchmark) CounterNames() []string {
	b.mux.Lock()
	defer b.mux.Unlock()
	seen := map[string]struct{}{}
	for _, snapshot := range b.counterHistory {
		for name := range snapshot {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CounterValues returns one entry per recorded region: the region's tally for
// the named counter, 0 for regions where it never fired.
func (b *Benchmark) CounterValues(name string) []float64 {
	b.mux.Lock()
	defer b.mux.Unlock()
	values := make([]float64, len(b.counterHistory))
	for i, snapshot := range b.counterHistory {
		values[i] = snapshot[name]
	}
	return values
}

// CounterPercentile mirrors Percentile over a counter's per-region series.
func (b *Benchmark) CounterPercentile(name string, q ...float64) []float64 {
	if len(q) == 0 {
		q = defaultQuantiles
	}
	return percentiles(b.CounterValues(name), q)
}

// CounterMean mirrors Mean over a counter's per-region series, including the
// error on an empty series.
func (b *Benchmark) CounterMean(name string) (float64, error) {
	return stats.Mean(b.CounterValues(name))
}

// MeanStr renders the mean duration through timeformat.
func (b *Benchmark) MeanStr() (string, error) {
	mean, err := b.Mean()
	if err != nil {
		return "", err
	}
	return timeformat.Format(mean), nil
}

// PercentileStr renders the 95% range of the duration series.
func (b *Benchmark) PercentileStr() string {
	p := b.Percentile()
	return fmt.Sprintf("95%% range [%s, %s]", timeformat.Format(p[0]), timeformat.Format(p[1]))
}

// CounterPercentileStr renders the 95% range of a counter series, with whole
// bounds printed as integers. A counter whose bounds coincide produces the
// empty string: a deterministic counter would otherwise clutter every summary
// with a "range [3, 3]" line.
func (b *Benchmark) CounterPercentileStr(name string) string {
	p := b.CounterPercentile(name)
	if p[0] == p[1] {
		return ""
	}
	return fmt.Sprintf("95%% range [%s, %s]", formatCount(p[0]), formatCount(p[1]))
}

// Summary renders the multi-line report with default column widths.
func (b *Benchmark) Summary() (string, error) {
	return b.SummaryWidths(0, 15, 30)
}

// SummaryWidths renders the report with explicit column widths. The first
// line holds the benchmark name, the mean duration and the 95% range; each
// counter follows on its own line, sorted by name and prefixed with the
// counter marker. Every field is left-justified into its column. A
// non-positive nameWidth is computed from the longest label so nothing gets
// truncated; non-positive meanWidth and rangeWidth take the defaults 15
// and 30.
func (b *Benchmark) SummaryWidths(nameWidth, meanWidth, rangeWidth int) (string, error) {
	meanStr, err := b.MeanStr()
	if err != nil {
		return "", fmt.Errorf("summary of %q: %w", b.Name, err)
	}

	counters := b.CounterNames()
	if nameWidth <= 0 {
		nameWidth = autoNameWidth(b.Name, counters)
	}
	if meanWidth <= 0 {
		meanWidth = 15
	}
	if rangeWidth <= 0 {
		rangeWidth = 30
	}

	lines := make([]string, 0, len(counters)+1)
	lines = append(lines, fmt.Sprintf("%-*s%-*s%-*s",
		nameWidth, b.Name, meanWidth, meanStr, rangeWidth, b.PercentileStr()))

	for _, counter := range counters {
		// Counter history is exactly as long as the duration series, so
		// the mean cannot fail once MeanStr succeeded above.
		mean, err := b.CounterMean(counter)
		if err != nil {
			return "", fmt.Errorf("summary of %q, counter %q: %w", b.Name, counter, err)
		}
		lines = append(lines, fmt.Sprintf("%-*s%-*s%-*s",
			nameWidth, counterMarker+counter,
			meanWidth, formatCount(mean),
			rangeWidth, b.CounterPercentileStr(counter)))
	}

	return strings.Join(lines, "\n"), nil
}

// percentiles computes empirical order statistics at the given quantiles,
// expressed in percent. An empty series is a defined fallback, not an error:
// every requested quantile comes back as zero. Quantiles outside [0, 100]
// panic, which is a programmer error rather than a data condition.
func percentiles(series []float64, q []float64) []float64 {
	out := make([]float64, len(q))
	if len(series) == 0 {
		return out
	}
	sorted := make([]float64, len(series))
	copy(sorted, series)
	sort.Float64s(sorted)
	for i, quantile := range q {
		out[i] = stat.Quantile(quantile/100, stat.Empirical, sorted, nil)
	}
	return out
}

// formatCount prints whole counter statistics as integers and everything else
// with the shortest float representation.
func formatCount(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return fmt.Sprintf("%v", v)
}

func autoNameWidth(name string, counters []string) int {
	width := len(name)
	for _, counter := range counters {
		if l := len(counterMarker) + len(counter); l > width {
			width = l
		}
	}
	return width + 4
}
