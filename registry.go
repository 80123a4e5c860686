package timethat

import "sync"

// The registry tracks every benchmark with an open region so that code with
// no reference to the enclosing benchmark can still attribute events to it
// through the package-level Incr.
var (
	registryMux sync.Mutex
	registry    = map[*Benchmark]struct{}{}
)

func register(b *Benchmark) {
	registryMux.Lock()
	registry[b] = struct{}{}
	registryMux.Unlock()
}

// unregister is a no-op for benchmarks that are not registered, so an
// unbalanced Stop never fails.
func unregister(b *Benchmark) {
	registryMux.Lock()
	delete(registry, b)
	registryMux.Unlock()
}

// Incr adds delta to the named counter of every benchmark whose region is
// currently open. With no open region the increment is silently dropped.
// This is the hook for instrumenting code that cannot be made
// benchmark-aware: it counts events into whichever benchmark happens to be
// measuring at the time.
func Incr(name string, delta float64) {
	registryMux.Lock()
	open := make([]*Benchmark, 0, len(registry))
	for b := range registry {
		open = append(open, b)
	}
	registryMux.Unlock()

	for _, b := range open {
		b.Incr(name, delta)
	}
}
