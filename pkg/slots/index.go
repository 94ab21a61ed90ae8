package slots

import "sort"

// Index is the aggregate record of summaries for all save slots. Slot
// numbers are 1-based; slot 0 is reserved for the index blob itself and
// never appears as a key.
type Index struct {
	entries map[int]*Summary
}

// NewIndex creates an empty slot index.
func NewIndex() *Index {
	return &Index{entries: make(map[int]*Summary)}
}

// NewIndexFromMap creates an index from a slot-to-summary map, as produced
// by a codec. The map is adopted, not copied.
func NewIndexFromMap(entries map[int]*Summary) *Index {
	if entries == nil {
		entries = make(map[int]*Summary)
	}
	return &Index{entries: entries}
}

// Get returns the summary for a slot, if present.
func (idx *Index) Get(slot int) (*Summary, bool) {
	s, ok := idx.entries[slot]
	return s, ok
}

// Has reports whether the index has a summary for the slot.
func (idx *Index) Has(slot int) bool {
	_, ok := idx.entries[slot]
	return ok
}

// Put inserts or replaces the summary for a slot.
func (idx *Index) Put(slot int, s *Summary) {
	idx.entries[slot] = s
}

// Delete removes the summary for a slot, reporting whether one existed.
func (idx *Index) Delete(slot int) bool {
	if _, ok := idx.entries[slot]; !ok {
		return false
	}
	delete(idx.entries, slot)
	return true
}

// Len returns the number of slots with a summary.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Slots returns the occupied slot numbers in ascending order.
func (idx *Index) Slots() []int {
	out := make([]int, 0, len(idx.entries))
	for slot := range idx.entries {
		out = append(out, slot)
	}
	sort.Ints(out)
	return out
}

// Snapshot returns the index contents as a map for codecs. Summaries are
// shared, not copied; use Copy for isolation.
func (idx *Index) Snapshot() map[int]*Summary {
	out := make(map[int]*Summary, len(idx.entries))
	for slot, s := range idx.entries {
		out[slot] = s
	}
	return out
}

// Copy returns a deep copy of the index.
func (idx *Index) Copy() *Index {
	out := NewIndex()
	for slot, s := range idx.entries {
		out.entries[slot] = s.Copy()
	}
	return out
}

// Equal reports whether two indexes hold the same slots with equal
// summaries.
func (idx *Index) Equal(other *Index) bool {
	if idx == nil || other == nil {
		return idx == other
	}
	if len(idx.entries) != len(other.entries) {
		return false
	}
	for slot, s := range idx.entries {
		o, ok := other.entries[slot]
		if !ok || !s.Equal(o) {
			return false
		}
	}
	return true
}
