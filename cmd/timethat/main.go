package main

import (
	"log"
	"os/exec"
	"time"

	"github.com/Doist/timethat"
	"github.com/Doist/timethat/collector"
	"github.com/Doist/timethat/config"
	"github.com/Doist/timethat/logging"
)

func main() {
	conf := config.ReadConfig()

	var logger logging.Logger
	switch *conf.Logging.Driver {
	case "noop":
		logger = logging.NewNoopLogger()
	case "stdout":
		logger = logging.NewStdoutLogger()
	case "influxdb":
		logger = logging.NewInfluxDBLogger(
			*conf.Logging.InfluxDB.Host,
			*conf.Logging.InfluxDB.Token,
			*conf.Logging.InfluxDB.Org,
			*conf.Logging.InfluxDB.Bucket,
		)
	default:
		log.Fatalf("expected logging.driver one of {noop, stdout, influxdb}; got %s", *conf.Logging.Driver)
	}

	for _, bench := range conf.Benchmarks {
		runBenchmark(bench, *conf.Window, *conf.Plot, logger)
	}
}

func runBenchmark(bench config.Benchmark, window int, plotPath string, logger logging.Logger) {
	coll := collector.NewTachymeterCollector(window)
	stopReporting := reportAggregates(*bench.Name, coll, logger)

	rep := timethat.Repeat(*bench.Iterations, *bench.Name, nil)
	for rep.Next() {
		b := rep.Benchmark()
		cmd := exec.Command("/bin/sh", "-c", *bench.Command)

		start := time.Now()
		b.Start()
		err := cmd.Run()
		if err != nil {
			// Routed through the registry so the command itself stays
			// benchmark-unaware.
			timethat.Incr("errors", 1)
		}
		b.Stop()
		elapsed := time.Since(start)

		coll.Add(elapsed)
		logger.LogIterationTime(*bench.Name, elapsed.Seconds())
	}
	stopReporting()

	summary, err := rep.Benchmark().Summary()
	if err != nil {
		log.Fatalf("expected benchmark %q to produce a summary; got err = %v", *bench.Name, err)
	}
	logger.LogSummary(summary)

	if plotPath != "" {
		if err := writePlot(plotPathFor(plotPath, *bench.Name), rep.Benchmark()); err != nil {
			log.Fatalf("error writing plot for benchmark %q: err = %v", *bench.Name, err)
		}
	}
}

// reportAggregates periodically logs rolling percentiles while the benchmark
// loop runs. The returned function stops the reporting goroutine.
func reportAggregates(name string, coll collector.Collector, logger logging.Logger) func() {
	stop := make(chan bool)
	go func() {
		ticker := time.NewTicker(time.Second * 1)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				agg := coll.Aggregate()
				logger.LogAggregateTimes(name, agg.P50.Seconds(), agg.P75.Seconds(), agg.P95.Seconds())
			}
		}
	}()
	return func() { close(stop) }
}
