package fdset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanNextOrder(t *testing.T) {
	t.Parallel()

	tables := Probe()

	var s Set

	for _, fd := range []int{12, 3, 7} {
		SetBit(tables, &s, fd)
	}

	var got []int

	fd := 0
	for {
		next := ScanNext(tables, &s, fd, 12)
		if next < 0 {
			break
		}

		got = append(got, next)
		fd = next + 1
	}

	assert.Equal(t, []int{3, 7, 12}, got)
	assert.Equal(t, 0, Popcount(&s))
}

func TestScanNextRespectsFDLast(t *testing.T) {
	t.Parallel()

	tables := Probe()

	var s Set

	SetBit(tables, &s, 5)
	SetBit(tables, &s, 50)

	got := ScanNext(tables, &s, 0, 10)
	require.Equal(t, 5, got)

	got = ScanNext(tables, &s, 0, 10)
	assert.Equal(t, -1, got)
	assert.Equal(t, 1, Popcount(&s))
}

func TestZeroAndEqual(t *testing.T) {
	t.Parallel()

	tables := Probe()

	var a, b Set

	SetBit(tables, &a, 17)
	assert.False(t, Equal(&a, &b))

	Zero(&a)
	assert.True(t, Equal(&a, &b))
}

func TestCopyPrefix(t *testing.T) {
	t.Parallel()

	tables := Probe()

	var src, dst Set

	SetBit(tables, &src, 0)
	SetBit(tables, &src, 63)

	CopyPrefix(tables, &dst, &src, 63)

	assert.True(t, Test(tables, &dst, 0))
	assert.True(t, Test(tables, &dst, 63))
}
