// Package logging ships benchmark measurements to a result sink. The core
// library only produces strings and numeric series; these drivers are the
// runner-side destinations.
package logging

type Logger interface {
	LogIterationTime(benchmark string, t float64)              // Takes one iteration time in seconds.
	LogAggregateTimes(benchmark string, p50, p75, p95 float64) // Takes rolling percentiles in seconds.
	LogSummary(summary string)                                 // Takes the final multi-line summary.
}

// noopLogger does not perform any logging.
type noopLogger struct{}

func NewNoopLogger() *noopLogger {
	return &noopLogger{}
}

func (*noopLogger) LogIterationTime(string, float64) {
	return
}

func (*noopLogger) LogAggregateTimes(string, float64, float64, float64) {
	return
}

func (*noopLogger) LogSummary(string) {
	return
}
