package visitedfilter

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// denseBackend is a bitmap over the full 2^37-key space, backed by an
// anonymous mmap so the kernel lazily zero-fills pages on first touch
// instead of the process paying to initialize 16 GiB up front.
type denseBackend struct {
	words []uint64
	raw   []byte
}

func newDenseBackend() (*denseBackend, error) {
	raw, err := unix.Mmap(-1, 0, int(denseBitmapBytes), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, err
	}
	words := unsafe.Slice((*uint64)(unsafe.Pointer(&raw[0])), len(raw)/8)
	return &denseBackend{words: words, raw: raw}, nil
}

// TestAndSet reports whether key was already set, then sets it.
func (d *denseBackend) TestAndSet(key uint64) bool {
	checkKey(key)
	word := &d.words[key>>6]
	mask := uint64(1) << (key & 63)
	hit := *word&mask != 0
	*word |= mask
	return hit
}

// Clear zeroes the whole bitmap, for reuse across independent searches.
func (d *denseBackend) Clear() {
	clear(d.words)
}

// Close unmaps the backing memory. After Close, d must not be used again.
func (d *denseBackend) Close() error {
	if d.raw == nil {
		return nil
	}
	err := unix.Munmap(d.raw)
	d.raw = nil
	d.words = nil
	return err
}
