package timethat

import (
	"runtime"
	"strings"
)

const fallbackName = "<benchmark>"

const repeatFunc = "github.com/Doist/timethat.Repeat"

// callerName derives a default benchmark name from the function that called
// NewBenchmark. When that caller is Repeat, the frame one further out is used
// instead, so a benchmark produced by Repeat carries the name of the function
// driving the loop. Returns fallbackName when the stack cannot be inspected
// that far, e.g. when symbols have been stripped.
func callerName() string {
	// Skip runtime.Callers, callerName and NewBenchmark.
	pcs := make([]uintptr, 8)
	n := runtime.Callers(3, pcs)
	if n == 0 {
		return fallbackName
	}

	frames := runtime.CallersFrames(pcs[:n])
	frame, more := frames.Next()
	if frame.Function == repeatFunc {
		if !more {
			return fallbackName
		}
		frame, _ = frames.Next()
	}
	if frame.Function == "" {
		return fallbackName
	}
	return shortFuncName(frame.Function)
}

// shortFuncName reduces a fully qualified symbol such as
// "github.com/Doist/timethat.TestFoo" to "TestFoo".
func shortFuncName(fn string) string {
	if i := strings.LastIndexByte(fn, '/'); i >= 0 {
		fn = fn[i+1:]
	}
	if i := strings.IndexByte(fn, '.'); i >= 0 {
		fn = fn[i+1:]
	}
	return fn
}
