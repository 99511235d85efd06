package visitedfilter

// hashSetBackend is the fallback visited-filter backend for hosts without
// enough spare RAM for the dense bitmap. A plain map is sufficient here: the
// filter never iterates or deletes keys, so none of the bucket-management
// machinery a general-purpose hash table (e.g. a Swiss-table style map)
// offers over the std map actually gets exercised.
type hashSetBackend struct {
	seen map[uint64]struct{}
}

func newHashSetBackend() *hashSetBackend {
	return &hashSetBackend{seen: make(map[uint64]struct{})}
}

// TestAndSet reports whether key was already present, then adds it.
func (h *hashSetBackend) TestAndSet(key uint64) bool {
	checkKey(key)
	if _, ok := h.seen[key]; ok {
		return true
	}
	h.seen[key] = struct{}{}
	return false
}

// Clear discards every recorded key, for reuse across independent searches.
func (h *hashSetBackend) Clear() {
	h.seen = make(map[uint64]struct{})
}

// Close is a no-op: the hash-set backend owns no off-heap resources.
func (h *hashSetBackend) Close() error {
	return nil
}
