package qpselect

import "errors"

// ErrInterrupted is returned by [Selection.Wait] when the underlying
// pselect call was interrupted by the configured signal (errno EINTR). It
// is the caller's cue to inspect its own signal state; the selection
// itself is left idle (no pending batch).
var ErrInterrupted = errors.New("qpselect: wait interrupted by signal")
