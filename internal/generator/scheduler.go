package generator

import "time"

// Scheduler models the simulated latency of the content engine.
type Scheduler interface {
	After(d time.Duration) <-chan time.Time
}

// SystemScheduler waits on the wall clock.
type SystemScheduler struct{}

func (SystemScheduler) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

type immediate struct{}

func (immediate) After(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}

// Immediate fires at once regardless of the requested delay.
var Immediate Scheduler = immediate{}
