package saveslot

import (
	"github.com/agentstation/saveslot/pkg/errors"
	"github.com/agentstation/saveslot/pkg/storage"
)

// Save encodes the memoized index and writes it to the reserved index
// slot. The index is loaded first if no memo exists yet.
func (c *client) Save() error {
	c.mu.Lock()
	if c.index == nil {
		c.index = c.loadIndex()
	}
	idx := c.index.Copy()
	c.mu.Unlock()

	data, err := c.options.indexCodec.EncodeIndex(idx)
	if err != nil {
		return err
	}

	if err := c.options.storage.Save(storage.IndexSlot, data); err != nil {
		return errors.WrapSlot("write", storage.IndexSlot, err)
	}

	return nil
}
