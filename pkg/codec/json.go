package codec

import (
	"encoding/json"

	"github.com/agentstation/saveslot/pkg/errors"
	"github.com/agentstation/saveslot/pkg/slots"
)

// Compile-time interface checks to ensure proper implementation.
var (
	_ Index = (*JSON)(nil)
	_ Save  = (*JSON)(nil)
)

// JSON encodes the index and decodes saves using the host engine's JSON
// representation. The index is a slot-number-keyed object; absent slots
// are simply absent keys.
type JSON struct{}

// NewJSON creates a JSON codec.
func NewJSON() *JSON {
	return &JSON{}
}

// EncodeIndex serializes the index to JSON.
func (c *JSON) EncodeIndex(idx *slots.Index) ([]byte, error) {
	data, err := json.Marshal(idx.Snapshot())
	if err != nil {
		return nil, errors.WrapParse("json", "index", err)
	}
	return data, nil
}

// DecodeIndex deserializes an index from JSON.
func (c *JSON) DecodeIndex(data []byte) (*slots.Index, error) {
	entries := make(map[int]*slots.Summary)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.WrapParse("json", "index", err)
	}
	return slots.NewIndexFromMap(entries), nil
}

// DecodeSave deserializes the readable subset of a save blob from JSON.
func (c *JSON) DecodeSave(data []byte) (*slots.SaveData, error) {
	var save slots.SaveData
	if err := json.Unmarshal(data, &save); err != nil {
		return nil, errors.WrapParse("json", "save", err)
	}
	return &save, nil
}
