package saveslot

import (
	"context"

	"github.com/agentstation/saveslot/pkg/constants"
	"github.com/agentstation/saveslot/pkg/errors"
	"github.com/agentstation/saveslot/pkg/logging"
	"github.com/agentstation/saveslot/pkg/slots"
	"github.com/agentstation/saveslot/pkg/storage"
)

// Result reports what a reconciliation pass changed.
type Result struct {
	// Added lists slots that gained a synthesized summary, ascending.
	Added []int

	// Removed lists slots whose summary was dropped, ascending.
	Removed []int

	// Saved reports whether the updated index was written to storage.
	// False for a dry run or an already-converged index.
	Saved bool
}

// HasChanges reports whether the pass changed the index at all.
func (r *Result) HasChanges() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0
}

// ReconcileOption configures a single reconciliation pass.
type ReconcileOption func(*reconcileOptions)

type reconcileOptions struct {
	dryRun bool
}

// WithDryRun computes the changes a pass would make without persisting
// them or touching the memoized index.
func WithDryRun() ReconcileOption {
	return func(o *reconcileOptions) {
		o.dryRun = true
	}
}

// Reconcile converges the slot index to match storage presence.
//
// For each slot 1..MaxSlots in ascending order: a slot with storage
// content but no summary gets a synthesized one; a slot with a summary
// but no storage content loses it; everything else is untouched. When the
// pass changed anything, the updated index is written to the reserved
// index slot and the memo refreshed. A converged index writes nothing.
func (c *client) Reconcile(ctx context.Context, opts ...ReconcileOption) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	var ro reconcileOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&ro)
		}
	}

	meta := c.options.resolveMetadata()

	// Work on a copy so a failed persist never corrupts the memo.
	c.mu.Lock()
	if c.index == nil {
		c.index = c.loadIndex()
	}
	next := c.index.Copy()
	c.mu.Unlock()

	result := &Result{}
	added := make(map[int]*slots.Summary)
	removed := make(map[int]*slots.Summary)

	for slot := constants.FirstSaveSlot; slot <= meta.MaxSlots; slot++ {
		onStorage := c.options.storage.Exists(slot)
		inIndex := next.Has(slot)

		switch {
		case onStorage && !inIndex:
			summary := c.synthesize(logger, slot, meta)
			next.Put(slot, summary)
			added[slot] = summary
			result.Added = append(result.Added, slot)

		case !onStorage && inIndex:
			summary, _ := next.Get(slot)
			next.Delete(slot)
			removed[slot] = summary
			result.Removed = append(result.Removed, slot)
			logger.Info().Int("slot", slot).Msg("Save file gone, dropping summary")
		}
	}

	if !result.HasChanges() {
		logger.Debug().Int("slots", meta.MaxSlots).Msg("Index already converged")
		return result, nil
	}

	logger.Info().
		Int("added", len(result.Added)).
		Int("removed", len(result.Removed)).
		Msg("Index changes detected")

	if ro.dryRun {
		logger.Info().Bool("dry_run", true).Msg("Dry run completed - no changes applied")
		return result, nil
	}

	// Persist, then refresh the memo and fire hooks. The codec wraps its
	// own failures with format detail.
	data, err := c.options.indexCodec.EncodeIndex(next)
	if err != nil {
		return nil, err
	}
	if err := c.options.storage.Save(storage.IndexSlot, data); err != nil {
		return nil, errors.WrapSlot("write", storage.IndexSlot, err)
	}

	c.setIndex(next, added, removed)
	result.Saved = true

	logger.Info().
		Int("entries", next.Len()).
		Msg("Slot index reconciled and saved")

	return result, nil
}
