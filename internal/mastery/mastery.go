// Package mastery derives progress toward the 10,000-minute goal from a
// skill's committed total. It is a read-only view except for the one-shot
// celebration latch.
package mastery

import "github.com/abhisek/tenk/internal/skill"

// Threshold is the mastery target in minutes, after the "10,000-hour rule".
const Threshold = 10000

// Progress returns the ratio of committed minutes to the threshold,
// clamped to 1.
func Progress(totalMinutes int) float64 {
	if totalMinutes >= Threshold {
		return 1
	}
	if totalMinutes < 0 {
		return 0
	}
	return float64(totalMinutes) / float64(Threshold)
}

// IsMastered reports whether the total has reached the threshold.
func IsMastered(totalMinutes int) bool {
	return totalMinutes >= Threshold
}

// ShouldCelebrate reports whether the threshold has been reached and the
// celebration has not been shown yet. A caller that celebrates must call
// MarkCelebrated and persist the skill immediately, so the celebration
// fires exactly once.
func ShouldCelebrate(sk *skill.Skill) bool {
	return IsMastered(sk.TotalMinutes) && !sk.HasShownConfetti
}

// MarkCelebrated sets the one-shot latch. It is never reset.
func MarkCelebrated(sk *skill.Skill) {
	sk.HasShownConfetti = true
}
