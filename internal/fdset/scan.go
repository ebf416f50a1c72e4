package fdset

// Zero clears every bit in s by zeroing its whole byte overlay (setSize
// bytes, the full size of the host fd_set type).
func Zero(s *Set) {
	b := s.bytes()
	for i := range b {
		b[i] = 0
	}
}

// Popcount returns the number of set bits in s.
func Popcount(s *Set) int {
	count := 0

	for _, w := range s.words() {
		for w != 0 {
			count++
			w &= w - 1
		}
	}

	return count
}

// Equal reports whether a and b have identical bit patterns.
func Equal(a, b *Set) bool {
	ab, bb := a.bytes(), b.bytes()
	for i := range ab {
		if ab[i] != bb[i] {
			return false
		}
	}

	return true
}

// Test reports whether fd's bit is set in s.
func Test(t *Tables, s *Set, fd int) bool {
	return s.bytes()[t.ByteIndex(fd)]&t.BitMask(fd) != 0
}

// SetBit sets fd's bit in s.
func SetBit(t *Tables, s *Set, fd int) {
	s.bytes()[t.ByteIndex(fd)] |= t.BitMask(fd)
}

// ClearBit clears fd's bit in s.
func ClearBit(t *Tables, s *Set, fd int) {
	s.bytes()[t.ByteIndex(fd)] &^= t.BitMask(fd)
}

// CopyPrefix copies the first byteCount(fdLast) bytes of src into dst — the
// minimum prefix that suffices to represent descriptors 0..=fdLast.
func CopyPrefix(t *Tables, dst, src *Set, fdLast int) {
	if fdLast < 0 {
		return
	}

	n := t.ByteCount(fdLast)
	copy(dst.bytes()[:n], src.bytes()[:n])
}

// ScanNext returns the smallest descriptor >= fdStart and <= fdLast whose
// bit is set in s, clearing that bit, or -1 if none. It walks words via
// wordIndex, skipping zero words by jumping to the next word boundary; once
// it finds a nonzero word it backs up to the start of fd's byte and walks
// bytes, then uses firstInByte to find the lowest set bit within the first
// nonzero byte found.
func ScanNext(t *Tables, s *Set, fdStart, fdLast int) int {
	fd := fdStart
	words := s.words()

	for words[t.WordIndex(fd)] == 0 {
		fd = (fd &^ (overlayWordBits - 1)) + overlayWordBits
		if fd > fdLast {
			return -1
		}
	}

	fd &^= 7

	bytes := s.bytes()

	var b byte

	for {
		b = bytes[t.ByteIndex(fd)]
		if b != 0 {
			break
		}

		fd += 8
		if fd > fdLast {
			return -1
		}
	}

	fd += t.FirstInByte(b)

	ClearBit(t, s, fd)

	return fd
}
