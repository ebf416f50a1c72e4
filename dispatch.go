package qpselect

import "github.com/calvinalkan/qpselect/internal/fdset"

// DispatchNext advances the dispatch cursor by one event and invokes that
// file's action for that mode, returning the number of events still
// pending after this one.
//
// Across a batch, events are dispatched in strict ascending (mode, fd)
// order with mode priority error < read < write — all error-ready
// descriptors first, then all read-ready, then all write-ready — modulo
// whatever mutations the actions themselves perform via
// [Selection.DisableModes].
func (s *Selection) DispatchNext() int {
	if Debug {
		s.validate()
	}

	if s.pendCount == 0 {
		return 0
	}

	fd := s.pendFD
	mode := s.pendMode

	for {
		next := fdset.ScanNext(s.tables, &s.results[mode], fd, s.triedFDLast)
		if next >= 0 {
			fd = next

			break
		}

		for {
			s.triedCount[mode] = 0
			mode++

			if mode >= ModeCount {
				panic("qpselect: DispatchNext: unexpectedly ran out of pending stuff")
			}

			if s.triedCount[mode] != 0 {
				break
			}
		}

		s.pendMode = mode
		fd = 0
	}

	s.pendCount--
	s.pendFD = fd

	f := s.files.lookup(fd)
	if f == nil || !f.enabled.Has(mode) || f.actions[mode] == nil {
		panic("qpselect: DispatchNext: ready fd has no matching enabled action")
	}

	f.actions[mode](f, f.cookie)

	return s.pendCount
}
