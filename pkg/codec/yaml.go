package codec

import (
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/saveslot/pkg/errors"
	"github.com/agentstation/saveslot/pkg/slots"
)

// Compile-time interface checks to ensure proper implementation.
var (
	_ Index = (*YAML)(nil)
	_ Save  = (*YAML)(nil)
)

// YAML encodes the index and decodes saves as YAML. Useful for hosts that
// keep a human-editable index file and for CLI inspection of save data.
type YAML struct{}

// NewYAML creates a YAML codec.
func NewYAML() *YAML {
	return &YAML{}
}

// EncodeIndex serializes the index to YAML. Slot numbers become string
// keys on the wire; YAML mappings carry quoted keys and goccy refuses to
// coerce them back into ints, so decoding converts keys explicitly.
func (c *YAML) EncodeIndex(idx *slots.Index) ([]byte, error) {
	snapshot := idx.Snapshot()
	entries := make(map[string]*slots.Summary, len(snapshot))
	for slot, s := range snapshot {
		entries[strconv.Itoa(slot)] = s
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return nil, errors.WrapParse("yaml", "index", err)
	}
	return data, nil
}

// DecodeIndex deserializes an index from YAML.
func (c *YAML) DecodeIndex(data []byte) (*slots.Index, error) {
	raw := make(map[string]*slots.Summary)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapParse("yaml", "index", err)
	}
	entries := make(map[int]*slots.Summary, len(raw))
	for key, s := range raw {
		slot, err := strconv.Atoi(key)
		if err != nil {
			return nil, errors.NewParseError("yaml", "index", "slot key "+strconv.Quote(key)+" is not a number", err)
		}
		entries[slot] = s
	}
	return slots.NewIndexFromMap(entries), nil
}

// DecodeSave deserializes the readable subset of a save blob from YAML.
func (c *YAML) DecodeSave(data []byte) (*slots.SaveData, error) {
	var save slots.SaveData
	if err := yaml.Unmarshal(data, &save); err != nil {
		return nil, errors.WrapParse("yaml", "save", err)
	}
	return &save, nil
}
