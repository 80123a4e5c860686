package logging

import (
	"log"
)

// stdoutLogger logs the output to standard output.
type stdoutLogger struct{}

func NewStdoutLogger() *stdoutLogger {
	return &stdoutLogger{}
}

func (*stdoutLogger) LogIterationTime(string, float64) {
	// Do not log non-aggregated iteration times to stdout.
	return
}

func (*stdoutLogger) LogAggregateTimes(benchmark string, p50, p75, p95 float64) {
	log.Printf("%s: p50: %.6f, p75: %.6f, p95: %.6f\n", benchmark, p50, p75, p95)
}

func (*stdoutLogger) LogSummary(summary string) {
	log.Printf("\n%s\n", summary)
}
