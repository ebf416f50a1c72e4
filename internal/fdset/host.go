package fdset

// Host is the abstract descriptor-set host primitive surface the probe
// verifies: a zero/set/clear/test quartet plus the raw byte/word overlay
// those operations write through. realHost, wrapping a [Set] (backed by
// [unix.FdSet]), is the production implementation; tests also probe synthetic layouts (see
// probe_test.go) to prove the probe algorithm itself — not just this
// platform's particular answer — is correct.
type Host interface {
	Size() int
	Bytes() []byte
	Words() []uint32
	Zero()
	Set(fd int)
	Clear(fd int)
	Test(fd int) bool
}

// realHost, the production Host, wraps a [Set].
type realHost struct {
	set Set
}

func newRealHost() Host {
	return &realHost{}
}

func (h *realHost) Size() int        { return setSize }
func (h *realHost) Bytes() []byte    { return h.set.bytes() }
func (h *realHost) Words() []uint32  { return h.set.words() }
func (h *realHost) Zero()            { hostZero(&h.set) }
func (h *realHost) Set(fd int)       { hostSet(&h.set, fd) }
func (h *realHost) Clear(fd int)     { hostClear(&h.set, fd) }
func (h *realHost) Test(fd int) bool { return hostTest(&h.set, fd) }
