// Package saveslot reconciles a save-slot metadata index against the
// actual presence of save files on storage. The index caches display
// metadata (party sprites, portraits, playtime) for a load menu; save
// files can appear or vanish behind the index's back (copied in, deleted,
// synced from elsewhere), and reconciliation converges the index back to
// reality: it synthesizes a best-effort summary for every untracked save
// file and drops entries whose files are gone.
//
// The host engine's machinery is modeled as injected collaborators: a
// storage provider (slot presence, raw reads and writes), an index codec,
// a save codec, and a metadata source. Reference implementations ship in
// pkg/storage and pkg/codec.
//
// Example usage:
//
//	store, err := files.New("./saves")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := saveslot.New(
//	    saveslot.WithStorage(store),
//	    saveslot.WithMetadata(saveslot.StaticMetadata{
//	        GameID:       "demo-7f21",
//	        Title:        "Demo Quest",
//	        MaxSlots:     20,
//	        MaxPartySize: 4,
//	    }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client.OnSlotAdded(func(slot int, s slots.Summary) {
//	    log.Printf("recovered slot %d: %s", slot, s.Playtime)
//	})
//
//	result, err := client.Reconcile(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("added %d, removed %d\n", len(result.Added), len(result.Removed))
package saveslot

import (
	"context"

	"github.com/agentstation/saveslot/pkg/slots"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Indexer provides copy-on-read access to the memoized slot index.
type Indexer interface {
	// Index returns a copy of the current slot index, loading it from
	// storage on first use. An unreadable index degrades to an empty one.
	Index() *slots.Index
}

// Reconciler converges the slot index to match storage presence.
type Reconciler interface {
	// Reconcile walks every savefile slot, synthesizing summaries for
	// untracked files and removing entries for missing files. The
	// updated index is persisted and memoized only when it changed.
	Reconcile(ctx context.Context, opts ...ReconcileOption) (*Result, error)
}

// Persistence handles index persistence operations.
type Persistence interface {
	// Save encodes the memoized index and writes it to the reserved
	// index slot.
	Save() error
}

// Hooks provides access to event callback registration.
type Hooks interface {
	// OnSlotAdded registers a callback for summaries the reconciler inserts
	OnSlotAdded(SlotAddedHook)

	// OnSlotRemoved registers a callback for summaries the reconciler removes
	OnSlotRemoved(SlotRemovedHook)
}

// Client manages a save-slot index with reconciliation and event hooks.
type Client interface {

	// Indexer provides copy-on-read access to the slot index
	Indexer

	// Reconciler converges the index to storage presence
	Reconciler

	// Persistence handles index persistence operations
	Persistence

	// Hooks provides access to event callback registration
	Hooks
}
