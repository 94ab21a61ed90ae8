package slots

import (
	"strconv"

	"github.com/agentstation/saveslot/pkg/errors"
)

// SaveData is the subset of a decoded save blob that summary synthesis
// reads. The host engine owns the full schema; fields outside these
// sub-paths are ignored by the save codec.
type SaveData struct {
	// Party holds the ordered roster of active party member actor IDs.
	Party Party `json:"party" yaml:"party"`

	// Actors holds the display attributes of every actor in the save.
	Actors []Actor `json:"actors" yaml:"actors"`

	// System holds engine bookkeeping, including the elapsed-frame counter.
	System System `json:"system" yaml:"system"`
}

// Party is the active party roster at save time.
type Party struct {
	Members []int `json:"members" yaml:"members"`
}

// Actor carries the display attributes of one actor.
type Actor struct {
	ID             int    `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	CharacterSheet string `json:"characterSheet" yaml:"characterSheet"`
	CharacterIndex int    `json:"characterIndex" yaml:"characterIndex"`
	FaceSheet      string `json:"faceSheet" yaml:"faceSheet"`
	FaceIndex      int    `json:"faceIndex" yaml:"faceIndex"`
}

// System is the engine bookkeeping section of a save blob.
type System struct {
	// PlaytimeFrames is the elapsed-frame counter at save time.
	PlaytimeFrames int64 `json:"playtimeFrames" yaml:"playtimeFrames"`
}

// Actor returns the actor with the given ID, if present.
func (d *SaveData) Actor(id int) (*Actor, bool) {
	for i := range d.Actors {
		if d.Actors[i].ID == id {
			return &d.Actors[i], true
		}
	}
	return nil, false
}

// PartyGraphics extracts the walking sprites and portraits of the active
// party, in roster order, capped at limit members. A roster entry naming
// an actor the save does not contain is an extraction error.
func (d *SaveData) PartyGraphics(limit int) (characters, faces []SpriteRef, err error) {
	members := d.Party.Members
	if limit >= 0 && len(members) > limit {
		members = members[:limit]
	}
	characters = make([]SpriteRef, 0, len(members))
	faces = make([]SpriteRef, 0, len(members))
	for _, id := range members {
		actor, ok := d.Actor(id)
		if !ok {
			return nil, nil, errors.NewNotFoundError("actor", strconv.Itoa(id))
		}
		characters = append(characters, SpriteRef{Sheet: actor.CharacterSheet, Index: actor.CharacterIndex})
		faces = append(faces, SpriteRef{Sheet: actor.FaceSheet, Index: actor.FaceIndex})
	}
	return characters, faces, nil
}

// PlaytimeText derives the formatted playtime from the save's
// elapsed-frame counter. A negative counter is an extraction error.
func (d *SaveData) PlaytimeText() (string, error) {
	if d.System.PlaytimeFrames < 0 {
		return "", errors.NewValidationError("playtimeFrames", d.System.PlaytimeFrames, "frame counter is negative")
	}
	return FormatPlaytime(d.System.PlaytimeFrames), nil
}
