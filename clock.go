package qpselect

import "time"

// Clock supplies the monotonic time source a [Selection] measures
// deadlines against. Production selections use [realClock]; tests may
// substitute a fake via [WithClock] to exercise timeout/expiry behavior
// deterministically.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Option configures a [Selection] at construction time.
type Option func(*Selection)

// WithClock substitutes the monotonic clock source. Intended for tests;
// production callers should leave this at its default.
func WithClock(c Clock) Option {
	return func(s *Selection) {
		s.clock = c
	}
}
