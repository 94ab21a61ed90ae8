package saveslot

import (
	"sync"

	"github.com/agentstation/saveslot/pkg/errors"
	"github.com/agentstation/saveslot/pkg/logging"
	"github.com/agentstation/saveslot/pkg/slots"
	"github.com/agentstation/saveslot/pkg/storage"
)

// client is the internal implementation of the Client interface.
type client struct {

	// options are the configured options for the client
	options *options

	// index is the memoized slot index; nil until first load
	mu    sync.RWMutex
	index *slots.Index

	// hooks are the event hooks for reconciliation changes
	hooks *hooks
}

// New creates a new Client instance with the given options. A storage
// provider is required; codecs default to JSON and metadata to library
// defaults.
func New(opts ...Option) (Client, error) {
	c := &client{
		options: defaults().apply(opts...),
		hooks:   newHooks(),
	}

	if c.options.storage == nil {
		return nil, errors.NewConfigError("client", "a storage provider is required", nil)
	}

	return c, nil
}

// Index returns a copy of the current slot index, loading it lazily on
// first use.
func (c *client) Index() *slots.Index {
	c.mu.RLock()
	if c.index != nil {
		cp := c.index.Copy()
		c.mu.RUnlock()
		return cp
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index == nil {
		c.index = c.loadIndex()
	}
	return c.index.Copy()
}

// loadIndex reads and decodes the index blob from the reserved slot.
// Failure is a degrade, not an error: a missing or corrupt index becomes
// an empty one, and the next reconciliation repopulates it.
func (c *client) loadIndex() *slots.Index {
	raw, err := c.options.storage.Load(storage.IndexSlot)
	if err != nil {
		if errors.IsSlotEmpty(err) {
			logging.Debug().Msg("No index blob on storage, starting empty")
		} else {
			logging.Warn().Err(err).Msg("Index blob unreadable, starting empty")
		}
		return slots.NewIndex()
	}

	idx, err := c.options.indexCodec.DecodeIndex(raw)
	if err != nil {
		logging.Warn().Err(err).Msg("Index blob undecodable, starting empty")
		return slots.NewIndex()
	}

	logging.Debug().Int("entries", idx.Len()).Msg("Slot index loaded")
	return idx
}

// setIndex swaps the memo and triggers hooks for the reconciliation
// changes. Caller must not hold the mutex.
func (c *client) setIndex(next *slots.Index, added, removed map[int]*slots.Summary) {
	c.mu.Lock()
	c.index = next
	c.mu.Unlock()

	c.hooks.trigger(added, removed)
}
