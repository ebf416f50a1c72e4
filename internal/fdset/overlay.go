// Package fdset probes the host's opaque descriptor-set type to discover
// its word/byte/bit layout, then provides fast word- and byte-level scan
// primitives over that layout.
//
// The descriptor-set type ([unix.FdSet]) does not publish how it stores
// its bits: word size, endianness and per-byte bit order are whatever the
// kernel headers say, and nothing in the Go type system pins them down.
// Treating the set as a byte array and a 32-bit word array only works once
// that overlay has been verified. See [Probe].
package fdset

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// overlayWordBytes is the width of the word the bit-scan helpers operate
// on. It is deliberately independent of the host's native fd_mask word
// width (an unsigned long, 8 bytes on amd64) so the probe algorithm is
// exercised the same way regardless of what the host actually uses.
const overlayWordBytes = 4

const overlayWordBits = overlayWordBytes * 8

// Set is the host descriptor-set type, reinterpreted as byte/word overlays
// once [Probe] has validated that reinterpretation is safe.
type Set unix.FdSet

// setSize is the size in bytes of Set, computed once.
var setSize = int(unsafe.Sizeof(unix.FdSet{})) //nolint:gochecknoglobals // computed constant

// MaxFD is the number of descriptors the host fd_set can represent.
func MaxFD() int {
	return setSize * 8
}

// bytes reinterprets the set as a byte slice of length setSize.
func (s *Set) bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(s)), setSize)
}

// words reinterprets the set as a uint32 slice covering the same storage.
func (s *Set) words() []uint32 {
	return unsafe.Slice((*uint32)(unsafe.Pointer(s)), setSize/overlayWordBytes)
}

// Host returns the underlying [unix.FdSet], e.g. to pass to [unix.Pselect].
func (s *Set) Host() *unix.FdSet {
	return (*unix.FdSet)(s)
}

// FromHost reinterprets an existing [unix.FdSet] as a [Set].
func FromHost(h *unix.FdSet) *Set {
	return (*Set)(h)
}

// hostZero, hostSet, hostClear and hostTest are the "descriptor-set host
// primitives" of spec §6: the ground truth the probe verifies and derives
// its lookup tables from. They play the role the C library's FD_ZERO/
// FD_SET/FD_CLR/FD_ISSET macros play for the original — implemented once,
// directly, against byte/bit arithmetic that mirrors the real glibc
// fd_set layout (byte-addressable, bit position fd%8 within byte fd/8).
// The probe does not assume this arithmetic; it discovers it independently
// by observing the effect of these calls on the word/byte overlay.
func hostZero(s *Set) {
	b := s.bytes()
	for i := range b {
		b[i] = 0
	}
}

func hostSet(s *Set, fd int) {
	s.bytes()[fd>>3] |= 1 << uint(fd&7)
}

func hostClear(s *Set, fd int) {
	s.bytes()[fd>>3] &^= 1 << uint(fd&7)
}

func hostTest(s *Set, fd int) bool {
	return s.bytes()[fd>>3]&(1<<uint(fd&7)) != 0
}
