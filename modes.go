package qpselect

import "github.com/calvinalkan/qpselect/internal/fdset"

// EnableMode enables f for mode, optionally setting (or replacing) its
// action. Fatal if f is unattached, if mode is out of range, or if action
// is nil and the existing action slot for mode is also nil.
func (s *Selection) EnableMode(f *File, mode Mode, action Action) {
	if f.selection == nil {
		panic("qpselect: EnableMode: file is not attached to a selection")
	}

	if mode >= ModeCount {
		panic("qpselect: EnableMode: mode out of range")
	}

	if action != nil {
		f.actions[mode] = action
	} else if f.actions[mode] == nil {
		panic("qpselect: EnableMode: no action supplied and none already set")
	}

	if f.enabled.Has(mode) {
		return
	}

	fdset.SetBit(s.tables, &s.enabled[mode], f.fd)
	s.enabledCount[mode]++
	f.enabled = f.enabled.Set(mode)
}

// SetAction replaces f's action slot for mode without enabling or
// disabling it. Passing a nil action unsets the slot; doing so while mode
// is currently enabled on f is a programmer error.
func (s *Selection) SetAction(f *File, mode Mode, action Action) {
	if mode >= ModeCount {
		panic("qpselect: SetAction: mode out of range")
	}

	if action == nil && f.enabled.Has(mode) {
		panic("qpselect: SetAction: cannot unset action for a mode that is enabled")
	}

	f.actions[mode] = action
}

// DisableModes clears every mode set in mbits on f. Safe to call on an
// unattached file provided its enabled mask is already empty (which it
// must be, by invariant).
//
// If a dispatch batch is in progress and f's bit is still pending in the
// result set for a disabled mode, that event is retracted: the bit is
// cleared and the pending count is decremented. This is the one operation
// that is aware of a batch in progress and cooperates with it.
func (s *Selection) DisableModes(f *File, mbits Bits) {
	mbits &= f.enabled
	f.enabled = f.enabled.ClearBits(mbits)

	for mbits != 0 {
		mode := FirstMode(mbits)

		fdset.ClearBit(s.tables, &s.enabled[mode], f.fd)
		s.enabledCount[mode]--

		if s.pendCount > 0 && s.triedCount[mode] > 0 && fdset.Test(s.tables, &s.results[mode], f.fd) {
			fdset.ClearBit(s.tables, &s.results[mode], f.fd)
			s.pendCount--
		}

		mbits = mbits.Clear(mode)
	}
}

