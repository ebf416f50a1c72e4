package qpselect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calvinalkan/qpselect"
)

func TestModeBitsRoundtrip(t *testing.T) {
	t.Parallel()

	var bits qpselect.Bits

	bits = bits.Set(qpselect.ModeRead)
	assert.True(t, bits.Has(qpselect.ModeRead))
	assert.False(t, bits.Has(qpselect.ModeWrite))

	bits = bits.Set(qpselect.ModeWrite)
	assert.Equal(t, qpselect.ModeRead.Bit()|qpselect.ModeWrite.Bit(), bits)

	bits = bits.Clear(qpselect.ModeRead)
	assert.False(t, bits.Has(qpselect.ModeRead))
	assert.True(t, bits.Has(qpselect.ModeWrite))
}

func TestFirstModePriority(t *testing.T) {
	t.Parallel()

	all := qpselect.AllModes
	assert.Equal(t, qpselect.ModeError, qpselect.FirstMode(all))
	assert.Equal(t, qpselect.ModeRead, qpselect.FirstMode(qpselect.ModeRead.Bit()|qpselect.ModeWrite.Bit()))
	assert.Equal(t, qpselect.ModeWrite, qpselect.FirstMode(qpselect.ModeWrite.Bit()))
}

func TestFirstModePanicsOnEmpty(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		qpselect.FirstMode(0)
	})
}
