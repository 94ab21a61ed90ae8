// Package storage defines the slot storage contract the host engine
// provides: presence checks, raw reads, and raw writes keyed by slot
// number. Slot 0 is reserved for the index blob. The memory and files
// subpackages ship reference providers for embedding hosts, tests, and
// the CLI.
package storage

import "github.com/agentstation/saveslot/pkg/constants"

// IndexSlot is the reserved slot number holding the index blob.
const IndexSlot = constants.IndexSlot

// Provider is the storage contract for save slots. Implementations are
// synchronous; a failed read or write is reported once, with no retries.
type Provider interface {
	// Exists reports whether the slot holds any content.
	Exists(slot int) bool

	// Load returns the raw bytes stored in the slot. An empty slot
	// returns an error satisfying errors.IsSlotEmpty.
	Load(slot int) ([]byte, error)

	// Save writes the raw bytes to the slot, replacing prior content.
	Save(slot int, data []byte) error
}

// Deleter is implemented by providers that can remove slot content
// outright. Reconciliation never deletes save files; this exists for
// tooling and tests.
type Deleter interface {
	Delete(slot int) error
}
