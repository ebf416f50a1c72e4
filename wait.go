package qpselect

import (
	"time"

	"golang.org/x/sys/unix"

	"github.com/calvinalkan/qpselect/internal/fdset"
)

// Wait blocks in pselect(2) until a descriptor in s becomes ready, the
// absolute deadline elapses, or (if a signal has been configured via
// [Selection.SetSignal]) that signal is delivered.
//
// deadline is an absolute monotonic time; a deadline already in the past
// produces a non-blocking probe. There is no infinite-wait mode.
//
// Returns:
//   - n > 0: n events are now pending; call [Selection.DispatchNext] n
//     times to drain them.
//   - 0, nil: deadline reached, nothing is ready.
//   - -1, [ErrInterrupted]: pselect returned EINTR.
//
// Any other pselect error is fatal (panics) — spec.md §7 classifies it as
// unrecoverable.
func (s *Selection) Wait(deadline time.Time) (int, error) {
	if Debug {
		s.validate()
	}

	if s.pendCount != 0 {
		fdset.Zero(&s.results[ModeError])
		fdset.Zero(&s.results[ModeRead])
		fdset.Zero(&s.results[ModeWrite])
	}

	var rset, wset, eset *unix.FdSet

	s.pendMode = ModeCount

	for mode := Mode(0); mode < ModeCount; mode++ {
		s.triedCount[mode] = s.enabledCount[mode]
		if s.triedCount[mode] == 0 {
			continue
		}

		fdset.CopyPrefix(s.tables, &s.results[mode], &s.enabled[mode], s.fdLast)

		if mode < s.pendMode {
			s.pendMode = mode
		}

		switch mode {
		case ModeRead:
			rset = s.results[mode].Host()
		case ModeWrite:
			wset = s.results[mode].Host()
		case ModeError:
			eset = s.results[mode].Host()
		}
	}

	s.triedFDLast = s.fdLast
	s.pendFD = 0

	interval := deadline.Sub(s.clock.Now())
	if interval < 0 {
		interval = 0
	}

	ts := unix.NsecToTimespec(interval.Nanoseconds())

	var sigmask *unix.Sigset_t
	if s.signum != 0 {
		sigmask = &s.sigmask
	}

	n, err := unix.Pselect(s.fdLast+1, rset, wset, eset, &ts, sigmask)

	if n > 0 {
		if s.pendMode >= ModeCount {
			panic("qpselect: Wait: pselect reported ready fds but no mode was tried")
		}

		s.pendCount = n

		return n, nil
	}

	fdset.Zero(&s.results[ModeError])
	fdset.Zero(&s.results[ModeRead])
	fdset.Zero(&s.results[ModeWrite])

	s.pendCount = 0

	if n == 0 {
		return 0, nil
	}

	if err == unix.EINTR {
		return -1, ErrInterrupted
	}

	panic("qpselect: Wait: pselect failed: " + err.Error())
}
