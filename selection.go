// Package qpselect implements a single-threaded I/O readiness multiplexer
// on top of pselect(2): register descriptors, enable per-descriptor,
// per-mode (error/read/write) callbacks, wait for readiness with a
// deadline and an optional signal-unmask, then dispatch the resulting
// batch of events one at a time.
//
// A [Selection] is single-owner: every selection-touching call, including
// [Selection.Wait], must come from the thread that created it. There are
// no locks and no atomics; see [NewSelection], [Selection.Reinit] and
// [Selection.Ream] for its lifecycle.
package qpselect

import (
	"golang.org/x/sys/unix"

	"github.com/calvinalkan/qpselect/internal/fdset"
)

// Debug gates the O(n) invariant audit ([Selection.validate]) that the
// original ran at the top of both its wait and dispatch entry points with
// a literal "TODO: put this under a debug skip" that was never resolved.
// This module resolves it: Debug defaults to false so the audit isn't paid
// on every dispatch in a hot loop, and tests set it to true in their
// TestMain.
var Debug = false //nolint:gochecknoglobals // single debug toggle, not per-selection state

// Selection owns a set of file records indexed by descriptor, the three
// per-mode enabled/result descriptor sets, the pending-dispatch cursor,
// and the signal-unmask configuration. See spec.md §3 for the full field
// list and invariants; field names here mirror it.
type Selection struct {
	files   *fileTable
	fdCount int
	fdLast  int // largest fd present, or 0 when empty

	enabled      [ModeCount]fdset.Set
	enabledCount [ModeCount]int

	results [ModeCount]fdset.Set

	triedCount  [ModeCount]int
	triedFDLast int

	pendCount int
	pendMode  Mode
	pendFD    int

	signum  int
	sigmask unix.Sigset_t

	clock Clock

	tables *fdset.Tables
}

// NewSelection returns a freshly initialised, empty Selection.
func NewSelection(opts ...Option) *Selection {
	s := &Selection{
		files:  newFileTable(),
		clock:  realClock{},
		tables: fdset.Probe(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Reinit resets s to a fresh, empty state, as if newly constructed. It is
// a programmer error to call Reinit while s still has attached files — use
// [Selection.Ream] to drain first.
func (s *Selection) Reinit() {
	if s.fdCount != 0 {
		panic("qpselect: Reinit called on a non-empty selection")
	}

	clock := s.clock
	tables := s.tables

	*s = Selection{
		files:  newFileTable(),
		clock:  clock,
		tables: tables,
	}
}

// FDCount returns the number of files currently attached.
func (s *Selection) FDCount() int {
	return s.fdCount
}

// FDLast returns the largest descriptor currently attached, or 0 when
// empty.
func (s *Selection) FDLast() int {
	return s.fdLast
}

// Pending returns the number of readiness events still to be dispatched
// from the most recent Wait. Zero means idle.
func (s *Selection) Pending() int {
	return s.pendCount
}

// SetSignal configures the signal unmasked for the duration of Wait.
// Passing signum == 0 disables the mask swap. Otherwise signum must be a
// member of mask; the signal is cleared from the stored mask (it must be
// unmasked, not masked, while waiting) and the result is installed for
// each subsequent Wait.
func (s *Selection) SetSignal(signum int, mask unix.Sigset_t) {
	s.signum = signum

	if signum == 0 {
		return
	}

	if !sigsetHas(mask, signum) {
		panic("qpselect: SetSignal: signum is not a member of mask")
	}

	sigsetDel(&mask, signum)
	s.sigmask = mask
}

func sigsetHas(set unix.Sigset_t, signum int) bool {
	word, bit := sigsetWordBit(signum)

	return set.Val[word]&bit != 0
}

func sigsetDel(set *unix.Sigset_t, signum int) {
	word, bit := sigsetWordBit(signum)
	set.Val[word] &^= bit
}

func sigsetWordBit(signum int) (word int, bit uint64) {
	// unix.Sigset_t.Val is an array of platform words (uint64 on
	// linux/amd64); signals are numbered from 1.
	n := signum - 1
	bitsPerWord := 64

	return n / bitsPerWord, 1 << uint(n%bitsPerWord)
}
