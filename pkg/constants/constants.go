// Package constants provides shared constants used throughout the saveslot
// codebase. This includes slot bounds, playtime conversion factors, file
// permissions, and other values that should be consistent across the
// library and its tooling.
package constants

// Playtime constants define how an elapsed-frame counter maps to wall time
const (
	// FramesPerSecond is the host engine's fixed frame rate used to
	// convert an elapsed-frame counter into seconds of playtime
	FramesPerSecond = 60

	// SecondsPerMinute is the number of seconds in a minute
	SecondsPerMinute = 60

	// MinutesPerHour is the number of minutes in an hour
	MinutesPerHour = 60
)

// Slot constants define the bounds of the save-slot number space
const (
	// IndexSlot is the reserved slot number holding the index blob.
	// It is never reconciled as a savefile slot.
	IndexSlot = 0

	// FirstSaveSlot is the lowest valid savefile slot number
	FirstSaveSlot = 1

	// DefaultMaxSlots is the default number of savefile slots when the
	// host metadata does not report one
	DefaultMaxSlots = 20

	// DefaultMaxPartySize is the default cap on active party members
	// recorded in a slot summary
	DefaultMaxPartySize = 4
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
