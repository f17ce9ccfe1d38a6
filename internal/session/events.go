package session

import "github.com/abhisek/tenk/internal/skill"

// Events receives session state changes. Implementations are best-effort:
// they must not block and their failures are never surfaced to the timing
// logic.
type Events interface {
	SessionStarted(sk *skill.Skill)
	SessionResumed(sk *skill.Skill)
	SessionPaused(sk *skill.Skill, sessionSeconds int)
	SessionUpdated(sk *skill.Skill, sessionSeconds int)
	SessionStopped(sk *skill.Skill, commit *Commit)
}

// NopEvents discards all events.
type NopEvents struct{}

func (NopEvents) SessionStarted(*skill.Skill)          {}
func (NopEvents) SessionResumed(*skill.Skill)          {}
func (NopEvents) SessionPaused(*skill.Skill, int)      {}
func (NopEvents) SessionUpdated(*skill.Skill, int)     {}
func (NopEvents) SessionStopped(*skill.Skill, *Commit) {}
