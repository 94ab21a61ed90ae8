package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/saveslot/pkg/errors"
)

func sampleSave() *SaveData {
	return &SaveData{
		Party: Party{Members: []int{1, 2, 3}},
		Actors: []Actor{
			{ID: 1, Name: "Alia", CharacterSheet: "Actor1", CharacterIndex: 0, FaceSheet: "Actor1", FaceIndex: 0},
			{ID: 2, Name: "Bren", CharacterSheet: "Actor2", CharacterIndex: 3, FaceSheet: "Actor2", FaceIndex: 3},
			{ID: 3, Name: "Cael", CharacterSheet: "Actor3", CharacterIndex: 1, FaceSheet: "Actor3", FaceIndex: 1},
		},
		System: System{PlaytimeFrames: 7260},
	}
}

func TestPartyGraphics(t *testing.T) {
	characters, faces, err := sampleSave().PartyGraphics(4)
	require.NoError(t, err)

	assert.Equal(t, []SpriteRef{
		{Sheet: "Actor1", Index: 0},
		{Sheet: "Actor2", Index: 3},
		{Sheet: "Actor3", Index: 1},
	}, characters)
	assert.Len(t, faces, 3)
}

func TestPartyGraphicsCapsAtLimit(t *testing.T) {
	characters, faces, err := sampleSave().PartyGraphics(2)
	require.NoError(t, err)
	assert.Len(t, characters, 2)
	assert.Len(t, faces, 2)
}

func TestPartyGraphicsUnknownActor(t *testing.T) {
	save := sampleSave()
	save.Party.Members = []int{1, 42}

	_, _, err := save.PartyGraphics(4)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestPlaytimeText(t *testing.T) {
	text, err := sampleSave().PlaytimeText()
	require.NoError(t, err)
	assert.Equal(t, "00:02:01", text)
}

func TestPlaytimeTextNegativeCounter(t *testing.T) {
	save := sampleSave()
	save.System.PlaytimeFrames = -5

	_, err := save.PlaytimeText()
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
