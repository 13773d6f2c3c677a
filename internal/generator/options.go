package generator

import (
	"time"

	"go.uber.org/zap"

	"lumina/internal/logger"
	"lumina/internal/util"
)

type settings struct {
	scheduler Scheduler
	latency   time.Duration
	newID     func() string
	log       *zap.Logger
}

// Option configures a generator or the tutor.
type Option func(*settings)

// WithScheduler replaces the wall-clock scheduler, typically with Immediate in tests.
func WithScheduler(s Scheduler) Option {
	return func(o *settings) {
		if s != nil {
			o.scheduler = s
		}
	}
}

// WithLatency sets the simulated delay before a result is produced.
func WithLatency(d time.Duration) Option {
	return func(o *settings) {
		if d >= 0 {
			o.latency = d
		}
	}
}

// WithIDSource replaces the ULID seed used in generated ids.
func WithIDSource(fn func() string) Option {
	return func(o *settings) {
		if fn != nil {
			o.newID = fn
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(o *settings) {
		if l != nil {
			o.log = l
		}
	}
}

func newSettings(defaultLatency time.Duration, opts []Option) settings {
	s := settings{
		scheduler: SystemScheduler{},
		latency:   defaultLatency,
		newID:     util.NewULID,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.log == nil {
		s.log = logger.Get()
	}
	return s
}

func (s settings) wait() {
	if s.latency > 0 {
		<-s.scheduler.After(s.latency)
	}
}
