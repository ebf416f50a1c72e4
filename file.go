package qpselect

// Action is a per-mode callback: invoked with the [File] that became ready
// and the cookie supplied at attach time. Actions are free to enable or
// disable modes, reassign actions, detach f, or detach other files; those
// mutations interact with a batch in progress only through
// [Selection.DisableModes] (see dispatch.go).
type Action func(f *File, cookie any)

// File is the per-descriptor state a [Selection] tracks: which selection
// it's attached to (if any), the descriptor itself, which modes are
// enabled, and one action per mode.
//
// A File is attached to at most one selection at a time. While attached,
// fd is immutable and unique within that selection.
type File struct {
	selection *Selection
	cookie    any
	fd        int
	enabled   Bits
	actions   [ModeCount]Action
}

// NewFile returns a detached File. If template is non-nil, its action
// slots are copied into the new File; nothing else is copied — fd and
// cookie are supplied at attach time.
func NewFile(template *File) *File {
	f := &File{}

	if template != nil {
		f.actions = template.actions
	}

	return f
}

// Free releases f. It is the caller's responsibility to have detached f
// from any selection first; calling Free on an attached File is a
// programmer error.
func (f *File) Free() {
	if f.selection != nil {
		panic("qpselect: Free called on a file still attached to a selection")
	}
}

// FD returns f's descriptor. Only meaningful while attached.
func (f *File) FD() int {
	return f.fd
}

// Cookie returns the opaque value supplied at attach time.
func (f *File) Cookie() any {
	return f.cookie
}

// Selection returns the selection f is attached to, or nil if detached.
func (f *File) Selection() *Selection {
	return f.selection
}

// Enabled returns the bitmask of modes currently enabled on f.
func (f *File) Enabled() Bits {
	return f.enabled
}
