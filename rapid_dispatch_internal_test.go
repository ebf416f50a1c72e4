package qpselect

import (
	"testing"

	"pgregory.net/rapid"
)

// TestDispatchAlwaysDrainsToZero is spec.md §8's drain law: however many
// events a batch starts with, repeated DispatchNext calls reach exactly
// zero, invoking each ready file's action exactly once, regardless of which
// fds or how many of them were ready. Runs against a fabricated post-Wait
// state (see simulateReady in dispatch_internal_test.go) since provoking
// real readiness for an arbitrary-sized random fd set isn't practical in a
// property test.
func TestDispatchAlwaysDrainsToZero(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		pool := make([]int, 100)
		for i := range pool {
			pool[i] = i
		}

		order := rapid.Permutation(pool).Draw(rt, "fd permutation")
		n := rapid.IntRange(0, 12).Draw(rt, "count")
		fds := order[:n]

		s := NewSelection()

		invocations := 0
		ready := map[Mode][]int{}

		for _, fd := range fds {
			f := NewFile(nil)
			s.Attach(f, fd, nil)
			s.EnableMode(f, ModeRead, func(*File, any) {
				invocations++
			})
		}

		if n > 0 {
			ready[ModeRead] = append([]int(nil), fds...)
		}

		simulateReady(s, ready)

		seen := 0

		for s.Pending() > 0 {
			s.DispatchNext()

			seen++

			if seen > n+1 {
				rt.Fatalf("DispatchNext did not drain within expected bound")
			}
		}

		if s.Pending() != 0 {
			rt.Fatalf("Pending() not zero after drain: %d", s.Pending())
		}

		if invocations != n {
			rt.Fatalf("expected %d invocations, got %d", n, invocations)
		}
	})
}
