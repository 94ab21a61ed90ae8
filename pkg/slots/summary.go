// Package slots defines the save-slot data model: the slot index stored in
// the reserved index slot, the per-slot display summaries shown in a load
// menu, and the subset of a decoded save blob this library reads when it
// has to rebuild a missing summary.
package slots

import "time"

// SpriteRef identifies one image inside a sprite or portrait sheet.
type SpriteRef struct {
	Sheet string `json:"sheet" yaml:"sheet"`
	Index int    `json:"index" yaml:"index"`
}

// Summary is the cached display metadata for one save slot. Summaries
// written by the host engine's save routine and summaries synthesized by
// reconciliation have the same shape; a synthesized one may carry fallback
// values when the save blob could not be fully read.
type Summary struct {
	// GameID identifies the game the save belongs to.
	GameID string `json:"gameId" yaml:"gameId"`

	// Title is the game title at save time.
	Title string `json:"title" yaml:"title"`

	// Characters are the walking sprites of the active party, in order.
	Characters []SpriteRef `json:"characters" yaml:"characters"`

	// Faces are the menu portraits of the active party, in order.
	Faces []SpriteRef `json:"faces" yaml:"faces"`

	// Playtime is the formatted HH:MM:SS play duration, or the unknown
	// sentinel when it could not be derived.
	Playtime string `json:"playtime" yaml:"playtime"`

	// Timestamp is when the summary was created or rebuilt.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Copy returns a deep copy of the summary.
func (s *Summary) Copy() *Summary {
	if s == nil {
		return nil
	}
	out := *s
	if s.Characters != nil {
		out.Characters = make([]SpriteRef, len(s.Characters))
		copy(out.Characters, s.Characters)
	}
	if s.Faces != nil {
		out.Faces = make([]SpriteRef, len(s.Faces))
		copy(out.Faces, s.Faces)
	}
	return &out
}

// Equal reports whether two summaries carry identical display metadata.
func (s *Summary) Equal(other *Summary) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.GameID != other.GameID || s.Title != other.Title || s.Playtime != other.Playtime {
		return false
	}
	if !s.Timestamp.Equal(other.Timestamp) {
		return false
	}
	return equalRefs(s.Characters, other.Characters) && equalRefs(s.Faces, other.Faces)
}

func equalRefs(a, b []SpriteRef) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
