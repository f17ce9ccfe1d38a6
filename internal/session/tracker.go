package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/tenk/internal/mastery"
	"github.com/abhisek/tenk/internal/skill"
	"github.com/abhisek/tenk/internal/store"
)

// ErrSessionConflict is returned when Start is attempted while a different
// skill holds the active pointer.
var ErrSessionConflict = errors.New("another skill is already counting")

// ErrNoSession is returned when Pause, Resume, or Stop is invoked with no
// session in progress.
var ErrNoSession = errors.New("no session in progress")

// State is the lifecycle state of the single system-wide session.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "idle"
	}
}

// Commit describes the durable result of stopping a session.
type Commit struct {
	SkillID       string
	Date          string // calendar date the minutes were logged under
	Seconds       int    // raw session seconds
	Minutes       int    // committed minutes after whole-minute rounding
	TotalMinutes  int    // skill total after the commit
	NewlyMastered bool   // this commit crossed the 10,000-minute threshold
}

// Tracker owns the running/paused/stopped lifecycle of the active practice
// session. It is the only component that mutates the active-skill pointer,
// and it advances its in-memory state only after the corresponding durable
// write succeeds, so memory and storage never disagree after a failure.
//
// Elapsed time is always recomputed from the persisted start instant, never
// from an incrementing tick count: a session survives process suspension of
// any length and is recovered exactly on the next wall-clock read.
type Tracker struct {
	skills store.SkillRepo
	active store.ActiveRepo
	events Events
	now    func() time.Time

	state       State
	sk          *skill.Skill
	startTime   time.Time
	accumulated int // seconds held for the session but not yet committed
}

// NewTracker creates an idle tracker. A nil events sink discards events.
func NewTracker(skills store.SkillRepo, active store.ActiveRepo, events Events) *Tracker {
	if events == nil {
		events = NopEvents{}
	}
	return &Tracker{
		skills: skills,
		active: active,
		events: events,
		now:    time.Now,
	}
}

// State returns the current session state.
func (t *Tracker) State() State {
	return t.state
}

// Skill returns the skill of the session in progress, or nil when idle.
func (t *Tracker) Skill() *skill.Skill {
	return t.sk
}

// SessionSeconds reports the session's elapsed seconds at now: the held
// accumulator plus, while running, the live span since the last start.
func (t *Tracker) SessionSeconds(now time.Time) int {
	switch t.state {
	case StateRunning:
		return t.accumulated + ElapsedSeconds(t.startTime, now)
	case StatePaused:
		return t.accumulated
	default:
		return 0
	}
}

// Start begins a session for the given skill. It fails with
// ErrSessionConflict when a different skill holds the active pointer, and
// leaves no record marked active on any failure. Starting the skill that is
// already running is a no-op.
func (t *Tracker) Start(ctx context.Context, skillID string) error {
	if t.state != StateIdle {
		if t.sk != nil && t.sk.ID == skillID {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrSessionConflict, t.sk.ID)
	}

	activeID, err := t.active.ActiveSkillID(ctx)
	if err != nil {
		return fmt.Errorf("read active pointer: %w", err)
	}
	if activeID != "" && activeID != skillID {
		return fmt.Errorf("%w: %s", ErrSessionConflict, activeID)
	}

	sk, err := t.skills.Get(ctx, skillID)
	if err != nil {
		return err
	}

	now := t.now()
	staged := sk.Clone()
	staged.IsActive = true
	staged.StartTime = &now
	staged.LastActiveAt = &now

	// Pointer first: a crash between the two writes leaves a pointer at an
	// inactive record, which Restore clears, never a stranded active record.
	if err := t.active.SetActiveSkillID(ctx, staged.ID); err != nil {
		return fmt.Errorf("set active pointer: %w", err)
	}
	if err := t.skills.Save(ctx, staged); err != nil {
		// Leave no record marked active; a dangling pointer survives an
		// unwind failure here and is cleared by Restore.
		_ = t.active.SetActiveSkillID(ctx, "")
		return err
	}

	t.state = StateRunning
	t.sk = staged
	t.startTime = now
	t.accumulated = 0
	t.events.SessionStarted(staged)
	return nil
}

// Pause moves a running session to paused: the elapsed span is folded into
// the session accumulator and the persisted start instant is cleared.
// Durable minute fields are never touched by a pause.
func (t *Tracker) Pause(ctx context.Context) error {
	switch t.state {
	case StatePaused:
		return nil
	case StateIdle:
		return ErrNoSession
	}

	now := t.now()
	elapsed := ElapsedSeconds(t.startTime, now)

	staged := t.sk.Clone()
	staged.StartTime = nil
	if err := t.skills.Save(ctx, staged); err != nil {
		return err
	}

	t.state = StatePaused
	t.sk = staged
	t.startTime = time.Time{}
	t.accumulated += elapsed
	t.events.SessionPaused(staged, t.accumulated)
	return nil
}

// Resume restarts a paused session with a fresh start instant, keeping the
// accumulator, and re-asserts the active pointer.
func (t *Tracker) Resume(ctx context.Context) error {
	switch t.state {
	case StateRunning:
		return nil
	case StateIdle:
		return ErrNoSession
	}

	now := t.now()
	staged := t.sk.Clone()
	staged.StartTime = &now
	staged.LastActiveAt = &now
	if err := t.active.SetActiveSkillID(ctx, staged.ID); err != nil {
		return fmt.Errorf("set active pointer: %w", err)
	}
	if err := t.skills.Save(ctx, staged); err != nil {
		// The record keeps its paused shape and the pointer already
		// named this skill, so nothing needs unwinding.
		return err
	}

	t.state = StateRunning
	t.sk = staged
	t.startTime = now
	t.events.SessionResumed(staged)
	return nil
}

// Stop ends the session and commits its whole minutes to the skill's total
// and daily log. A session that accumulated zero seconds commits nothing
// but still clears the active state and pointer. The calendar date is
// computed once for the entire commit.
func (t *Tracker) Stop(ctx context.Context) (*Commit, error) {
	if t.state == StateIdle {
		return nil, ErrNoSession
	}

	now := t.now()
	seconds := t.accumulated
	if t.state == StateRunning {
		seconds += ElapsedSeconds(t.startTime, now)
	}
	minutes := WholeMinutes(seconds)
	today := skill.Today(now)

	staged := t.sk.Clone()
	wasMastered := mastery.IsMastered(staged.TotalMinutes)
	if minutes > 0 {
		staged.LogMinutes(today, minutes)
	}
	staged.IsActive = false
	staged.StartTime = nil
	staged.LastActiveAt = nil

	if err := t.skills.Save(ctx, staged); err != nil {
		return nil, err
	}

	commit := &Commit{
		SkillID:       staged.ID,
		Date:          today,
		Seconds:       seconds,
		Minutes:       minutes,
		TotalMinutes:  staged.TotalMinutes,
		NewlyMastered: !wasMastered && mastery.IsMastered(staged.TotalMinutes),
	}

	t.state = StateIdle
	t.sk = nil
	t.startTime = time.Time{}
	t.accumulated = 0
	t.events.SessionStopped(staged, commit)

	if err := t.clearPointer(ctx, staged.ID); err != nil {
		// The minutes are durable; only the pointer cleanup failed.
		return commit, err
	}
	return commit, nil
}

func (t *Tracker) clearPointer(ctx context.Context, skillID string) error {
	activeID, err := t.active.ActiveSkillID(ctx)
	if err != nil {
		return fmt.Errorf("read active pointer: %w", err)
	}
	if activeID != skillID {
		return nil
	}
	if err := t.active.SetActiveSkillID(ctx, ""); err != nil {
		return fmt.Errorf("clear active pointer: %w", err)
	}
	return nil
}

// Restore reattaches to a session persisted by an earlier process: a
// running session resumes counting from its stored start instant, so time
// elapsed while no process was alive is recovered exactly. A stale pointer
// with no matching record is cleared.
func (t *Tracker) Restore(ctx context.Context) error {
	if t.state != StateIdle {
		return nil
	}

	activeID, err := t.active.ActiveSkillID(ctx)
	if err != nil {
		return fmt.Errorf("read active pointer: %w", err)
	}
	if activeID == "" {
		return nil
	}

	sk, err := t.skills.Get(ctx, activeID)
	if errors.Is(err, store.ErrNotFound) {
		return t.active.SetActiveSkillID(ctx, "")
	}
	if err != nil {
		return err
	}

	switch {
	case sk.IsActive && sk.StartTime != nil:
		t.state = StateRunning
		t.sk = sk
		t.startTime = *sk.StartTime
		t.accumulated = 0
	case sk.IsActive:
		// Paused when the last process exited; its accumulator was
		// transient and is gone, only uncommitted paused seconds are lost.
		t.state = StatePaused
		t.sk = sk
		t.accumulated = 0
	default:
		return t.active.SetActiveSkillID(ctx, "")
	}
	return nil
}

// Announce emits a progress event for the session in progress. Display
// code calls this periodically; it has no effect while idle.
func (t *Tracker) Announce(now time.Time) {
	if t.state == StateIdle {
		return
	}
	t.events.SessionUpdated(t.sk, t.SessionSeconds(now))
}

// Detach drops the in-memory session without touching storage. It is used
// after the session's skill record has been deleted out from under the
// tracker, where a Stop would recreate the record.
func (t *Tracker) Detach(skillID string) {
	if t.sk == nil || t.sk.ID != skillID {
		return
	}
	t.state = StateIdle
	t.sk = nil
	t.startTime = time.Time{}
	t.accumulated = 0
}
