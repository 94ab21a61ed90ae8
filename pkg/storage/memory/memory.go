// Package memory provides an in-memory slot storage provider, used by
// tests and by hosts that manage persistence themselves and only need the
// reconciliation logic.
package memory

import (
	"sync"

	"github.com/agentstation/saveslot/pkg/errors"
	"github.com/agentstation/saveslot/pkg/storage"
)

// Compile-time interface checks to ensure proper implementation.
var (
	_ storage.Provider = (*Provider)(nil)
	_ storage.Deleter  = (*Provider)(nil)
)

// Option is a function that configures a memory Provider.
type Option func(*Provider) error

// WithReadOnly configures the Provider to reject writes.
func WithReadOnly(readOnly bool) Option {
	return func(p *Provider) error {
		p.readOnly = readOnly
		return nil
	}
}

// WithSlot preloads content into a slot.
func WithSlot(slot int, data []byte) Option {
	return func(p *Provider) error {
		if slot < storage.IndexSlot {
			return errors.NewSlotError("preload", slot, errors.ErrInvalidSlot)
		}
		p.slots[slot] = append([]byte(nil), data...)
		return nil
	}
}

// Provider is a map-backed slot store.
type Provider struct {
	mu       sync.RWMutex
	slots    map[int][]byte
	readOnly bool
}

// New creates an in-memory storage provider.
func New(opts ...Option) (*Provider, error) {
	p := &Provider{slots: make(map[int][]byte)}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, errors.NewConfigError("memory storage", "applying option", err)
		}
	}
	return p, nil
}

// Exists reports whether the slot holds any content.
func (p *Provider) Exists(slot int) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	data, ok := p.slots[slot]
	return ok && len(data) > 0
}

// Load returns a copy of the slot's content.
func (p *Provider) Load(slot int) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	data, ok := p.slots[slot]
	if !ok || len(data) == 0 {
		return nil, errors.NewSlotError("read", slot, errors.ErrSlotEmpty)
	}
	return append([]byte(nil), data...), nil
}

// Save stores a copy of data in the slot.
func (p *Provider) Save(slot int, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.readOnly {
		return errors.NewSlotError("write", slot, errors.ErrReadOnly)
	}
	p.slots[slot] = append([]byte(nil), data...)
	return nil
}

// Delete removes the slot's content.
func (p *Provider) Delete(slot int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.readOnly {
		return errors.NewSlotError("delete", slot, errors.ErrReadOnly)
	}
	delete(p.slots, slot)
	return nil
}
