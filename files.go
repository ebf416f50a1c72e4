package qpselect

import "github.com/calvinalkan/qpselect/internal/vector"

// denseThreshold is the population above which a selection converts its
// files table (on the insert that takes it to denseThreshold+1) from an ordered sparse vector (binary-chop lookup) to a
// direct-indexed dense vector (index == fd). The conversion is one-way:
// going back to sparse on removals would thrash, and a fully drained
// selection stays dense until reinitialised (spec.md §9).
const denseThreshold = 9

// fileTable holds a selection's file records keyed by descriptor, in one
// of two representations: sparse (ordered by fd, looked up by binary
// search) or dense (indexed directly by fd). "Dense" is not the same as
// "full": a dense table tolerates absent slots.
type fileTable struct {
	dense bool
	items *vector.Vector[*File]
}

func newFileTable() *fileTable {
	return &fileTable{items: vector.New[*File]()}
}

func cmpFD(fd int) func(*File) vector.CmpResult {
	return func(candidate *File) vector.CmpResult {
		switch {
		case fd < candidate.fd:
			return vector.Less
		case fd > candidate.fd:
			return vector.Greater
		default:
			return vector.Equal
		}
	}
}

// lookup returns the file at fd, or nil if absent.
func (t *fileTable) lookup(fd int) *File {
	if t.dense {
		if fd >= t.items.Len() {
			return nil
		}

		return t.items.At(fd)
	}

	i, res := vector.BinarySearch(t.items, cmpFD(fd))
	if res != vector.Equal {
		return nil
	}

	return t.items.At(i)
}

// insert adds f at fd. Fatal (panics) if a file already occupies fd. May
// convert the table from sparse to dense as a side effect, per
// denseThreshold.
func (t *fileTable) insert(f *File, fdCountAfter int) {
	if t.dense {
		if fd := f.fd; fd < t.items.Len() && t.items.At(fd) != nil {
			panic("qpselect: file with given fd already exists in selection")
		}

		t.items.Set(f.fd, f)

		return
	}

	i, res := vector.BinarySearch(t.items, cmpFD(f.fd))
	if res == vector.Equal {
		panic("qpselect: file with given fd already exists in selection")
	}

	t.items.InsertAt(i, f)

	if fdCountAfter > denseThreshold {
		t.convertToDense()
	}
}

// convertToDense moves every record from the ordered sparse vector into a
// freshly built direct-indexed vector.
func (t *fileTable) convertToDense() {
	old := vector.New[*File]()
	moved := vector.MoveFrom(old, t.items)

	dense := vector.New[*File]()
	for _, f := range moved {
		dense.Set(f.fd, f)
	}

	t.items = dense
	t.dense = true
}

// remove removes the file at fd and returns it, and the new fd_last value
// (the largest fd still present, or -1 when empty). Panics if fd is not
// occupied.
func (t *fileTable) remove(fd int) (removed *File, newFDLast int) {
	if t.dense {
		if fd >= t.items.Len() || t.items.At(fd) == nil {
			panic("qpselect: remove called with fd not present in selection")
		}

		removed = t.items.Unset(fd)
		newFDLast = -1

		for i := t.items.Len() - 1; i >= 0; i-- {
			if t.items.At(i) != nil {
				newFDLast = i

				break
			}
		}

		return removed, newFDLast
	}

	i, res := vector.BinarySearch(t.items, cmpFD(fd))
	if res != vector.Equal {
		panic("qpselect: remove called with fd not present in selection")
	}

	removed = t.items.DeleteAt(i)

	newFDLast = -1
	if last, ok := t.items.Last(); ok {
		newFDLast = last.fd
	}

	return removed, newFDLast
}

// popAny removes and returns an arbitrary file from the table (and the new
// fd_last), or (nil, -1) if empty.
func (t *fileTable) popAny() (*File, int) {
	var victim *File

	if t.dense {
		for i := t.items.Len() - 1; i >= 0; i-- {
			if f := t.items.At(i); f != nil {
				victim = f

				break
			}
		}
	} else if last, ok := t.items.Last(); ok {
		victim = last
	}

	if victim == nil {
		return nil, -1
	}

	return t.remove(victim.fd)
}

// all calls fn for every live file record, in index order.
func (t *fileTable) all(fn func(*File)) {
	for _, f := range t.items.Items() {
		if f != nil {
			fn(f)
		}
	}
}
