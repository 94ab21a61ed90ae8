package saveslot

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/saveslot/pkg/slots"
)

// synthesize rebuilds a best-effort summary for a slot that has storage
// content but no index entry. It starts from a placeholder (empty rosters,
// current game title, unknown playtime, current instant) and upgrades
// fields as decoding and extraction succeed.
//
// Extraction is deliberately short-circuited: the roster is extracted
// before playtime, and the first failure abandons the rest, keeping only
// what was extracted so far. A corrupt save blob must never hide the slot
// from the player; losing cosmetic metadata is acceptable, losing access
// to the save is not.
func (c *client) synthesize(logger *zerolog.Logger, slot int, meta Metadata) *slots.Summary {
	summary := &slots.Summary{
		GameID:     meta.GameID,
		Title:      meta.Title,
		Characters: []slots.SpriteRef{},
		Faces:      []slots.SpriteRef{},
		Playtime:   slots.UnknownPlaytime,
		Timestamp:  c.options.now(),
	}

	raw, err := c.options.storage.Load(slot)
	if err != nil {
		logger.Warn().Err(err).Int("slot", slot).Msg("Save file unreadable, keeping placeholder summary")
		return summary
	}

	save, err := c.options.saveCodec.DecodeSave(raw)
	if err != nil {
		logger.Warn().Err(err).Int("slot", slot).Msg("Save blob undecodable, keeping placeholder summary")
		return summary
	}

	characters, faces, err := save.PartyGraphics(meta.MaxPartySize)
	if err != nil {
		logger.Warn().Err(err).Int("slot", slot).Msg("Party extraction failed, keeping placeholder summary")
		return summary
	}
	summary.Characters = characters
	summary.Faces = faces

	playtime, err := save.PlaytimeText()
	if err != nil {
		logger.Warn().Err(err).Int("slot", slot).Msg("Playtime extraction failed, keeping partial summary")
		return summary
	}
	summary.Playtime = playtime

	logger.Info().
		Int("slot", slot).
		Int("party", len(summary.Characters)).
		Str("playtime", summary.Playtime).
		Msg("Synthesized summary for untracked save file")

	return summary
}
