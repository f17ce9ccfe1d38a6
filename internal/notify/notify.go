// Package notify records session lifecycle events to a structured log
// file so practice history can be audited outside the app.
package notify

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/abhisek/tenk/internal/session"
	"github.com/abhisek/tenk/internal/skill"
)

// Announcer writes session events as structured log lines. A disabled
// announcer silently drops everything, so callers never need a nil check.
type Announcer struct {
	log     zerolog.Logger
	file    *os.File
	enabled bool
}

// NewAnnouncer opens (or creates) the log file at path in append mode.
// Failure to open yields a disabled announcer rather than an error;
// event logging is best effort and must never block a session.
func NewAnnouncer(path string) *Announcer {
	if path == "" {
		return &Announcer{}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &Announcer{}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return &Announcer{}
	}
	return &Announcer{
		log:     zerolog.New(f).With().Timestamp().Logger(),
		file:    f,
		enabled: true,
	}
}

// Close releases the underlying log file.
func (a *Announcer) Close() error {
	if a.file == nil {
		return nil
	}
	return a.file.Close()
}

func (a *Announcer) SessionStarted(sk *skill.Skill) {
	if !a.enabled {
		return
	}
	a.event("session_started", sk).Send()
}

func (a *Announcer) SessionResumed(sk *skill.Skill) {
	if !a.enabled {
		return
	}
	a.event("session_resumed", sk).Send()
}

func (a *Announcer) SessionPaused(sk *skill.Skill, seconds int) {
	if !a.enabled {
		return
	}
	a.event("session_paused", sk).Int("seconds", seconds).Send()
}

func (a *Announcer) SessionUpdated(sk *skill.Skill, seconds int) {
	if !a.enabled {
		return
	}
	a.event("session_updated", sk).Int("seconds", seconds).Send()
}

func (a *Announcer) SessionStopped(sk *skill.Skill, commit *session.Commit) {
	if !a.enabled {
		return
	}
	ev := a.event("session_stopped", sk)
	if commit != nil {
		ev = ev.Int("seconds", commit.Seconds).
			Int("minutes", commit.Minutes).
			Int("total_minutes", commit.TotalMinutes).
			Str("date", commit.Date).
			Bool("newly_mastered", commit.NewlyMastered)
	}
	ev.Send()
}

func (a *Announcer) event(name string, sk *skill.Skill) *zerolog.Event {
	ev := a.log.Info().Str("event", name)
	if sk != nil {
		ev = ev.Str("skill_id", sk.ID).Str("title", sk.Title)
	}
	return ev
}

var _ session.Events = (*Announcer)(nil)
