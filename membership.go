package qpselect

// Attach adds f to s at descriptor fd with the given cookie, with all
// modes initially disabled. Fatal (panics) if f is already attached
// anywhere, if fd is out of range, or if a file with this fd already
// exists in s.
func (s *Selection) Attach(f *File, fd int, cookie any) {
	if f.selection != nil {
		panic("qpselect: Attach: file is already attached to a selection")
	}

	if fd < 0 || fd >= s.tables.MaxFD {
		panic("qpselect: Attach: fd out of range")
	}

	f.selection = s
	f.fd = fd
	f.cookie = cookie
	f.enabled = 0

	s.fdCount++
	s.files.insert(f, s.fdCount)

	if fd > s.fdLast {
		s.fdLast = fd
	}
}

// Detach removes f from its selection, if any; a no-op if f is unattached.
// All modes are disabled first, which also scrubs any live results bits
// for f out of a batch in progress.
func (f *File) Detach() {
	s := f.selection
	if s == nil {
		return
	}

	s.DisableModes(f, AllModes)

	_, newFDLast := s.files.remove(f.fd)

	s.fdCount--

	if newFDLast < 0 {
		s.fdLast = 0
	} else {
		s.fdLast = newFDLast
	}

	f.selection = nil
}

// Ream pops one arbitrary file out of the selection, detaching it, and
// returns it. When the selection is empty it returns nil and either frees
// the selection (if free is true — in Go nothing is done to s; it is left
// empty for the garbage collector) or reinitialises it to a fresh,
// reusable state.
//
// Once reaming has begun, s must not be used for anything else until the
// ream loop has run to completion (i.e. until this returns nil).
func (s *Selection) Ream(free bool) *File {
	f, newFDLast := s.files.popAny()
	if f == nil {
		if s.fdCount != 0 {
			panic("qpselect: Ream: files table empty but fd_count != 0")
		}

		if !free {
			s.Reinit()
		}

		return nil
	}

	// f is already out of the table (popAny removed it); DisableModes
	// never touches the table itself, so it's safe to call directly here
	// without a second removal.
	s.DisableModes(f, AllModes)

	s.fdCount--

	if newFDLast < 0 {
		s.fdLast = 0
	} else {
		s.fdLast = newFDLast
	}

	f.selection = nil

	return f
}
