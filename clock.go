package timethat

import "time"

// Clock is the timestamp source used to measure scoped regions. Injecting a
// Clock lets tests drive measurements deterministically.
type Clock interface {
	Now() time.Time
}

// RealtimeClock reads the system clock. time.Now carries a monotonic reading,
// so subtracting two RealtimeClock timestamps is immune to wall-clock jumps.
type RealtimeClock struct{}

func NewRealtimeClock() RealtimeClock {
	return RealtimeClock{}
}

func (RealtimeClock) Now() time.Time { return time.Now() }
