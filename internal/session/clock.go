package session

import (
	"fmt"
	"time"
)

// ElapsedSeconds returns the whole seconds between start and now.
// Negative spans (clock skew, a start stamped in the future) report zero so
// they can never corrupt a total. Because this reads wall-clock time instead
// of counting ticks, it stays correct across arbitrary process suspension.
func ElapsedSeconds(start, now time.Time) int {
	secs := int(now.Sub(start) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}

// WholeMinutes converts session seconds into committable minutes:
// floor(s/60) for a full minute or more, 1 for any shorter non-empty
// session, 0 for an empty one. A sub-minute session is never lost.
func WholeMinutes(seconds int) int {
	switch {
	case seconds >= 60:
		return seconds / 60
	case seconds > 0:
		return 1
	default:
		return 0
	}
}

// FormatClock renders seconds as hh:mm:ss.
func FormatClock(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	h := totalSeconds / 3600
	m := totalSeconds % 3600 / 60
	s := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
