package saveslot

import (
	"sort"
	"sync"

	"github.com/agentstation/saveslot/pkg/slots"
)

// Hook function types for slot events
type (
	// SlotAddedHook is called when reconciliation inserts a summary
	SlotAddedHook func(slot int, summary slots.Summary)

	// SlotRemovedHook is called when reconciliation removes a summary
	SlotRemovedHook func(slot int, summary slots.Summary)
)

// OnSlotAdded registers a callback for summaries the reconciler inserts
func (c *client) OnSlotAdded(fn SlotAddedHook) {
	c.hooks.OnSlotAdded(fn)
}

// OnSlotRemoved registers a callback for summaries the reconciler removes
func (c *client) OnSlotRemoved(fn SlotRemovedHook) {
	c.hooks.OnSlotRemoved(fn)
}

// hooks manages event callbacks for reconciliation changes
type hooks struct {
	mu            sync.RWMutex
	onSlotAdded   []SlotAddedHook
	onSlotRemoved []SlotRemovedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnSlotAdded registers a callback for summaries the reconciler inserts
func (h *hooks) OnSlotAdded(fn SlotAddedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onSlotAdded = append(h.onSlotAdded, fn)
}

// OnSlotRemoved registers a callback for summaries the reconciler removes
func (h *hooks) OnSlotRemoved(fn SlotRemovedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onSlotRemoved = append(h.onSlotRemoved, fn)
}

// trigger fires callbacks for a reconciliation's changes, in ascending
// slot order for reproducible observers.
func (h *hooks) trigger(added, removed map[int]*slots.Summary) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, slot := range sortedKeys(added) {
		summary := added[slot]
		for _, hook := range h.onSlotAdded {
			hook(slot, *summary.Copy())
		}
	}

	for _, slot := range sortedKeys(removed) {
		summary := removed[slot]
		if summary == nil {
			summary = &slots.Summary{}
		}
		for _, hook := range h.onSlotRemoved {
			hook(slot, *summary.Copy())
		}
	}
}

func sortedKeys(m map[int]*slots.Summary) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
