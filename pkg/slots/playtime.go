package slots

import (
	"fmt"

	"github.com/agentstation/saveslot/pkg/constants"
)

// UnknownPlaytime is the sentinel shown when playtime could not be derived
// from a save blob.
const UnknownPlaytime = "??:??:??"

// FormatPlaytime converts an elapsed-frame counter into an HH:MM:SS string.
// Each component truncates at its unit boundary and is zero-padded to two
// digits. Negative counters yield the unknown sentinel.
func FormatPlaytime(frames int64) string {
	if frames < 0 {
		return UnknownPlaytime
	}
	total := frames / constants.FramesPerSecond
	hours := total / (constants.SecondsPerMinute * constants.MinutesPerHour)
	minutes := (total / constants.SecondsPerMinute) % constants.MinutesPerHour
	seconds := total % constants.SecondsPerMinute
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
