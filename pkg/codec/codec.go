// Package codec defines the byte-level encodings the host engine uses for
// the slot index and for save blobs. The formats themselves belong to the
// host; this package only maps them onto the slots data model. JSON is the
// default encoding, with a YAML variant for human-readable index files and
// CLI inspection.
package codec

import "github.com/agentstation/saveslot/pkg/slots"

// Index serializes the slot index to and from the byte representation
// stored in the reserved index slot.
type Index interface {
	EncodeIndex(idx *slots.Index) ([]byte, error)
	DecodeIndex(data []byte) (*slots.Index, error)
}

// Save deserializes a save slot's raw bytes into the SaveData subset the
// synthesizer reads. Encoding full saves is the host engine's job, so no
// encoder is defined here.
type Save interface {
	DecodeSave(data []byte) (*slots.SaveData, error)
}
