package timethat

// DefaultRepeatCount is the number of iterations Repeat runs when the caller
// passes a non-positive count.
const DefaultRepeatCount = 1000

// Repeater yields the same Benchmark a fixed number of times, in the style of
// bufio.Scanner:
//
//	rep := timethat.Repeat(1000, "", nil)
//	for rep.Next() {
//		rep.Benchmark().Start()
//		...
//		rep.Benchmark().Stop()
//	}
//
// Reusing one instance is what makes all iterations accumulate into a single
// series. An exhausted Repeater yields nothing more; call Repeat again for a
// fresh benchmark and sequence.
type Repeater struct {
	benchmark *Benchmark
	remaining int
}

// Repeat creates a Repeater over a fresh Benchmark. Name and clock behave as
// in NewBenchmark; with an empty name the benchmark is named after the
// function calling Repeat.
func Repeat(count int, name string, clock Clock) *Repeater {
	if count <= 0 {
		count = DefaultRepeatCount
	}
	return &Repeater{
		benchmark: NewBenchmark(name, clock),
		remaining: count,
	}
}

// Next reports whether another iteration remains, consuming one.
func (r *Repeater) Next() bool {
	if r.remaining <= 0 {
		return false
	}
	r.remaining--
	return true
}

// Benchmark returns the shared benchmark instance.
func (r *Repeater) Benchmark() *Benchmark {
	return r.benchmark
}
