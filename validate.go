package qpselect

import "github.com/calvinalkan/qpselect/internal/fdset"

// validate runs the full invariant audit described in spec.md §4.9. Any
// discrepancy panics — it indicates a bug in this package, not a caller
// error, so there is nothing sensible to do but abort loudly.
func (s *Selection) validate() {
	var enabledCount [ModeCount]int

	var enabled [ModeCount]fdset.Set

	n := 0
	fdLast := -1

	s.files.all(func(f *File) {
		n++

		if s.files.dense {
			// index == fd is enforced by construction in the dense
			// fileTable; nothing further to check here.
			_ = f
		} else if f.fd <= fdLast {
			panic("qpselect: validate: file vector not in fd order")
		}

		fdLast = f.fd

		if f.selection != s {
			panic("qpselect: validate: file does not refer to its selection")
		}

		if f.enabled > AllModes {
			panic("qpselect: validate: file enabled bits are invalid")
		}

		for mode := Mode(0); mode < ModeCount; mode++ {
			if f.enabled.Has(mode) {
				enabledCount[mode]++
				fdset.SetBit(s.tables, &enabled[mode], f.fd)
			}
		}
	})

	if n != s.fdCount {
		panic("qpselect: validate: number of files does not tally with fd_count")
	}

	if (n == 0 && s.fdLast != 0) || (n != 0 && fdLast != s.fdLast) {
		panic("qpselect: validate: fd_last does not tally")
	}

	for mode := Mode(0); mode < ModeCount; mode++ {
		if enabledCount[mode] != s.enabledCount[mode] {
			panic("qpselect: validate: enabled counts do not tally")
		}

		if !fdset.Equal(&enabled[mode], &s.enabled[mode]) {
			panic("qpselect: validate: enabled bit vectors do not tally")
		}
	}

	if s.pendCount == 0 {
		for mode := Mode(0); mode < ModeCount; mode++ {
			if fdset.Popcount(&s.results[mode]) != 0 {
				panic("qpselect: validate: nothing pending but results are not empty")
			}
		}

		return
	}

	if s.pendMode >= ModeCount || s.pendFD < 0 || s.pendFD > s.triedFDLast {
		panic("qpselect: validate: invalid pend_mode or pend_fd")
	}

	for mode := Mode(0); mode < ModeCount; mode++ {
		switch {
		case mode < s.pendMode && s.triedCount[mode] != 0:
			panic("qpselect: validate: nonzero tried_count for mode below pend_mode")
		case mode == s.pendMode && s.triedCount[mode] <= 0:
			panic("qpselect: validate: zero tried_count for pend_mode")
		}

		if s.triedCount[mode] == 0 && fdset.Popcount(&s.results[mode]) != 0 {
			panic("qpselect: validate: nonempty result set for a mode with zero tried_count")
		}
	}

	total := 0

	for mode := Mode(0); mode < ModeCount; mode++ {
		if s.triedCount[mode] == 0 {
			continue
		}

		for fd := 0; fd <= s.triedFDLast; fd++ {
			if !fdset.Test(s.tables, &s.results[mode], fd) {
				continue
			}

			total++

			if fd > s.triedFDLast {
				panic("qpselect: validate: pending fd beyond tried_fd_last")
			}

			if mode == s.pendMode && fd < s.pendFD {
				panic("qpselect: validate: pending fd below current cursor in pend_mode")
			}
		}
	}

	if total != s.pendCount {
		panic("qpselect: validate: pending bit count does not match pend_count")
	}
}
