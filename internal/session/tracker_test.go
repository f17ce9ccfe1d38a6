package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/tenk/internal/mastery"
	"github.com/abhisek/tenk/internal/skill"
	"github.com/abhisek/tenk/internal/store"
)

// memSkillRepo implements store.SkillRepo in memory, cloning on the way in
// and out like real storage would.
type memSkillRepo struct {
	skills  map[string]*skill.Skill
	saveErr error
	saves   int
}

func newMemSkillRepo(skills ...*skill.Skill) *memSkillRepo {
	m := &memSkillRepo{skills: make(map[string]*skill.Skill)}
	for _, sk := range skills {
		m.skills[sk.ID] = sk.Clone()
	}
	return m
}

func (m *memSkillRepo) List(_ context.Context) ([]*skill.Skill, error) {
	var out []*skill.Skill
	for _, sk := range m.skills {
		out = append(out, sk.Clone())
	}
	return out, nil
}

func (m *memSkillRepo) Get(_ context.Context, id string) (*skill.Skill, error) {
	sk, ok := m.skills[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return sk.Clone(), nil
}

func (m *memSkillRepo) Save(_ context.Context, sk *skill.Skill) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.skills[sk.ID] = sk.Clone()
	m.saves++
	return nil
}

func (m *memSkillRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.skills[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.skills, id)
	return nil
}

// memActiveRepo implements store.ActiveRepo in memory.
type memActiveRepo struct {
	id     string
	getErr error
	setErr error
}

func (m *memActiveRepo) ActiveSkillID(_ context.Context) (string, error) {
	return m.id, m.getErr
}

func (m *memActiveRepo) SetActiveSkillID(_ context.Context, id string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.id = id
	return nil
}

// recordingEvents counts emitted session events.
type recordingEvents struct {
	started, resumed, paused, updated, stopped int
	lastCommit                                 *Commit
}

func (r *recordingEvents) SessionStarted(*skill.Skill)      { r.started++ }
func (r *recordingEvents) SessionResumed(*skill.Skill)      { r.resumed++ }
func (r *recordingEvents) SessionPaused(*skill.Skill, int)  { r.paused++ }
func (r *recordingEvents) SessionUpdated(*skill.Skill, int) { r.updated++ }
func (r *recordingEvents) SessionStopped(_ *skill.Skill, c *Commit) {
	r.stopped++
	r.lastCommit = c
}

// testClock drives the tracker with simulated wall-clock time.
type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time          { return c.t }
func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestSkill(title, category string) *skill.Skill {
	sk, err := skill.New(title, category, "")
	if err != nil {
		panic(err)
	}
	return sk
}

func newTestTracker(repo *memSkillRepo, active *memActiveRepo) (*Tracker, *testClock) {
	clk := &testClock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local)}
	tr := NewTracker(repo, active, nil)
	tr.now = clk.now
	return tr, clk
}

func TestStartStopCommitsWholeMinutes(t *testing.T) {
	ctx := context.Background()
	piano := newTestSkill("Piano", "Music")
	repo := newMemSkillRepo(piano)
	active := &memActiveRepo{}
	tr, clk := newTestTracker(repo, active)

	if err := tr.Start(ctx, piano.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if active.id != piano.ID {
		t.Errorf("active pointer = %q, want %q", active.id, piano.ID)
	}

	clk.advance(130 * time.Second)

	commit, err := tr.Stop(ctx)
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if commit.Seconds != 130 || commit.Minutes != 2 {
		t.Errorf("commit = %ds/%dmin, want 130s/2min", commit.Seconds, commit.Minutes)
	}

	stored, err := repo.Get(ctx, piano.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.TotalMinutes != 2 {
		t.Errorf("TotalMinutes = %d, want 2", stored.TotalMinutes)
	}
	today := skill.Today(clk.t)
	if len(stored.DailyLogs) != 1 || stored.DailyLogs[0].Date != today || stored.DailyLogs[0].Minutes != 2 {
		t.Errorf("DailyLogs = %+v, want [{%s 2}]", stored.DailyLogs, today)
	}
	if stored.IsActive || stored.StartTime != nil {
		t.Error("skill still marked active after stop")
	}
	if active.id != "" {
		t.Errorf("active pointer = %q after stop, want empty", active.id)
	}
	if tr.State() != StateIdle {
		t.Errorf("state = %s, want idle", tr.State())
	}
}

func TestPauseResumeAccumulates(t *testing.T) {
	ctx := context.Background()
	sk := newTestSkill("Guitar", "Music")
	repo := newMemSkillRepo(sk)
	tr, clk := newTestTracker(repo, &memActiveRepo{})

	if err := tr.Start(ctx, sk.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clk.advance(30 * time.Second)
	if err := tr.Pause(ctx); err != nil {
		t.Fatalf("Pause: %v", err)
	}

	// Paused time never counts.
	clk.advance(10 * time.Minute)
	if got := tr.SessionSeconds(clk.t); got != 30 {
		t.Errorf("SessionSeconds while paused = %d, want 30", got)
	}

	stored, _ := repo.Get(ctx, sk.ID)
	if stored.TotalMinutes != 0 || len(stored.DailyLogs) != 0 {
		t.Error("pause must not commit minutes")
	}
	if stored.StartTime != nil {
		t.Error("StartTime still set while paused")
	}

	if err := tr.Resume(ctx); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	clk.advance(40 * time.Second)

	commit, err := tr.Stop(ctx)
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if commit.Seconds != 70 || commit.Minutes != 1 {
		t.Errorf("commit = %ds/%dmin, want 70s/1min", commit.Seconds, commit.Minutes)
	}
}

func TestSubMinuteSessionCommitsOneMinute(t *testing.T) {
	ctx := context.Background()
	sk := newTestSkill("Chess", "Games")
	repo := newMemSkillRepo(sk)
	tr, clk := newTestTracker(repo, &memActiveRepo{})

	if err := tr.Start(ctx, sk.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clk.advance(45 * time.Second)
	commit, err := tr.Stop(ctx)
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if commit.Minutes != 1 {
		t.Errorf("Minutes = %d, want 1", commit.Minutes)
	}
}

func TestZeroElapsedStopCommitsNothing(t *testing.T) {
	ctx := context.Background()
	sk := newTestSkill("Chess", "Games")
	sk.TotalMinutes = 7
	sk.DailyLogs = []skill.DailyLog{{Date: "2025-05-30", Minutes: 7}}
	repo := newMemSkillRepo(sk)
	active := &memActiveRepo{}
	tr, _ := newTestTracker(repo, active)

	if err := tr.Start(ctx, sk.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	commit, err := tr.Stop(ctx)
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if commit.Minutes != 0 {
		t.Errorf("Minutes = %d, want 0", commit.Minutes)
	}

	stored, _ := repo.Get(ctx, sk.ID)
	if stored.TotalMinutes != 7 || len(stored.DailyLogs) != 1 {
		t.Errorf("zero-elapsed stop mutated totals: %d min, %d logs", stored.TotalMinutes, len(stored.DailyLogs))
	}
	if active.id != "" {
		t.Error("active pointer not cleared")
	}
}

func TestStartConflict(t *testing.T) {
	ctx := context.Background()
	a := newTestSkill("Piano", "Music")
	b := newTestSkill("Sketching", "Art")
	repo := newMemSkillRepo(a, b)
	tr, clk := newTestTracker(repo, &memActiveRepo{})

	if err := tr.Start(ctx, a.ID); err != nil {
		t.Fatalf("Start a: %v", err)
	}
	if err := tr.Start(ctx, b.ID); !errors.Is(err, ErrSessionConflict) {
		t.Fatalf("Start b while a running: %v, want ErrSessionConflict", err)
	}

	// The rejected start must not disturb the running session.
	bStored, _ := repo.Get(ctx, b.ID)
	if bStored.IsActive {
		t.Error("conflicting start mutated skill b")
	}

	clk.advance(90 * time.Second)
	if _, err := tr.Stop(ctx); err != nil {
		t.Fatalf("Stop a: %v", err)
	}
	if err := tr.Start(ctx, b.ID); err != nil {
		t.Fatalf("Start b after stop: %v", err)
	}
}

func TestStartSameSkillTwiceIsNoop(t *testing.T) {
	ctx := context.Background()
	sk := newTestSkill("Piano", "Music")
	repo := newMemSkillRepo(sk)
	tr, clk := newTestTracker(repo, &memActiveRepo{})

	if err := tr.Start(ctx, sk.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clk.advance(50 * time.Second)
	if err := tr.Start(ctx, sk.ID); err != nil {
		t.Fatalf("second Start: %v", err)
	}
	if got := tr.SessionSeconds(clk.t); got != 50 {
		t.Errorf("SessionSeconds = %d, want 50 (restart must not reset)", got)
	}
}

func TestOpsWithoutSession(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTestTracker(newMemSkillRepo(), &memActiveRepo{})

	if err := tr.Pause(ctx); !errors.Is(err, ErrNoSession) {
		t.Errorf("Pause: %v, want ErrNoSession", err)
	}
	if err := tr.Resume(ctx); !errors.Is(err, ErrNoSession) {
		t.Errorf("Resume: %v, want ErrNoSession", err)
	}
	if _, err := tr.Stop(ctx); !errors.Is(err, ErrNoSession) {
		t.Errorf("Stop: %v, want ErrNoSession", err)
	}
}

func TestStartUnknownSkill(t *testing.T) {
	tr, _ := newTestTracker(newMemSkillRepo(), &memActiveRepo{})
	if err := tr.Start(context.Background(), "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Start: %v, want ErrNotFound", err)
	}
}

func TestSameDayCommitsShareOneLogEntry(t *testing.T) {
	ctx := context.Background()
	sk := newTestSkill("Piano", "Music")
	repo := newMemSkillRepo(sk)
	tr, clk := newTestTracker(repo, &memActiveRepo{})

	for _, secs := range []int{130, 70} {
		if err := tr.Start(ctx, sk.ID); err != nil {
			t.Fatalf("Start: %v", err)
		}
		clk.advance(time.Duration(secs) * time.Second)
		if _, err := tr.Stop(ctx); err != nil {
			t.Fatalf("Stop: %v", err)
		}
	}

	stored, _ := repo.Get(ctx, sk.ID)
	if len(stored.DailyLogs) != 1 {
		t.Fatalf("DailyLogs count = %d, want 1", len(stored.DailyLogs))
	}
	if stored.DailyLogs[0].Minutes != 3 {
		t.Errorf("day minutes = %d, want 3", stored.DailyLogs[0].Minutes)
	}

	sum := 0
	for _, l := range stored.DailyLogs {
		sum += l.Minutes
	}
	if sum != stored.TotalMinutes {
		t.Errorf("sum of daily logs %d != total %d", sum, stored.TotalMinutes)
	}
}

func TestRestoreRecoversRunningSession(t *testing.T) {
	ctx := context.Background()
	sk := newTestSkill("Piano", "Music")
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local)
	sk.IsActive = true
	sk.StartTime = &start
	repo := newMemSkillRepo(sk)
	active := &memActiveRepo{id: sk.ID}

	tr := NewTracker(repo, active, nil)
	clk := &testClock{t: start.Add(125 * time.Second)}
	tr.now = clk.now

	if err := tr.Restore(ctx); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if tr.State() != StateRunning {
		t.Fatalf("state = %s, want running", tr.State())
	}
	// Time spent with no process alive is recovered exactly.
	if got := tr.SessionSeconds(clk.t); got != 125 {
		t.Errorf("SessionSeconds = %d, want 125", got)
	}
}

func TestRestoreClearsStalePointer(t *testing.T) {
	ctx := context.Background()
	active := &memActiveRepo{id: "deleted-skill"}
	tr, _ := newTestTracker(newMemSkillRepo(), active)

	if err := tr.Restore(ctx); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if tr.State() != StateIdle {
		t.Errorf("state = %s, want idle", tr.State())
	}
	if active.id != "" {
		t.Errorf("stale pointer = %q, want cleared", active.id)
	}
}

func TestStopSaveFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	sk := newTestSkill("Piano", "Music")
	repo := newMemSkillRepo(sk)
	tr, clk := newTestTracker(repo, &memActiveRepo{})

	if err := tr.Start(ctx, sk.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clk.advance(90 * time.Second)

	repo.saveErr = errors.New("disk full")
	if _, err := tr.Stop(ctx); err == nil {
		t.Fatal("Stop succeeded despite save failure")
	}

	// The session survives the failed write and can be retried.
	if tr.State() != StateRunning {
		t.Errorf("state = %s after failed stop, want running", tr.State())
	}
	repo.saveErr = nil
	commit, err := tr.Stop(ctx)
	if err != nil {
		t.Fatalf("retried Stop: %v", err)
	}
	if commit.Minutes != 1 {
		t.Errorf("retried commit minutes = %d, want 1", commit.Minutes)
	}
}

func TestStartPointerFailureLeavesRecordInactive(t *testing.T) {
	ctx := context.Background()
	piano := newTestSkill("Piano", "Music")
	chess := newTestSkill("Chess", "Games")
	repo := newMemSkillRepo(piano, chess)
	active := &memActiveRepo{setErr: errors.New("disk full")}
	tr, _ := newTestTracker(repo, active)

	if err := tr.Start(ctx, piano.ID); err == nil {
		t.Fatal("Start succeeded despite pointer write failure")
	}
	if tr.State() != StateIdle {
		t.Errorf("state = %s after failed start, want idle", tr.State())
	}
	stored, _ := repo.Get(ctx, piano.ID)
	if stored.IsActive || stored.StartTime != nil {
		t.Error("failed start left the record marked active")
	}

	// A start of another skill after recovery must not find a second
	// record contending for the active mark.
	active.setErr = nil
	if err := tr.Start(ctx, chess.ID); err != nil {
		t.Fatalf("Start after recovery: %v", err)
	}
	all, _ := repo.List(ctx)
	activeCount := 0
	for _, sk := range all {
		if sk.IsActive {
			activeCount++
		}
	}
	if activeCount != 1 {
		t.Errorf("active records = %d, want 1", activeCount)
	}
}

func TestStartSaveFailureUnwindsPointer(t *testing.T) {
	ctx := context.Background()
	sk := newTestSkill("Piano", "Music")
	repo := newMemSkillRepo(sk)
	active := &memActiveRepo{}
	tr, _ := newTestTracker(repo, active)

	repo.saveErr = errors.New("disk full")
	if err := tr.Start(ctx, sk.ID); err == nil {
		t.Fatal("Start succeeded despite save failure")
	}
	if active.id != "" {
		t.Errorf("active pointer = %q after failed start, want empty", active.id)
	}
	if tr.State() != StateIdle {
		t.Errorf("state = %s after failed start, want idle", tr.State())
	}

	repo.saveErr = nil
	if err := tr.Start(ctx, sk.ID); err != nil {
		t.Fatalf("retried Start: %v", err)
	}
}

func TestResumePointerFailureKeepsPausedState(t *testing.T) {
	ctx := context.Background()
	sk := newTestSkill("Piano", "Music")
	repo := newMemSkillRepo(sk)
	active := &memActiveRepo{}
	tr, clk := newTestTracker(repo, active)

	if err := tr.Start(ctx, sk.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clk.advance(30 * time.Second)
	if err := tr.Pause(ctx); err != nil {
		t.Fatalf("Pause: %v", err)
	}

	active.setErr = errors.New("disk full")
	if err := tr.Resume(ctx); err == nil {
		t.Fatal("Resume succeeded despite pointer write failure")
	}
	if tr.State() != StatePaused {
		t.Errorf("state = %s after failed resume, want paused", tr.State())
	}
	stored, _ := repo.Get(ctx, sk.ID)
	if stored.StartTime != nil {
		t.Error("failed resume wrote a start instant")
	}

	active.setErr = nil
	if err := tr.Resume(ctx); err != nil {
		t.Fatalf("retried Resume: %v", err)
	}
	clk.advance(30 * time.Second)
	commit, err := tr.Stop(ctx)
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if commit.Seconds != 60 {
		t.Errorf("commit seconds = %d, want 60", commit.Seconds)
	}
}

func TestCommitReportsNewlyMastered(t *testing.T) {
	ctx := context.Background()
	sk := newTestSkill("Piano", "Music")
	sk.TotalMinutes = mastery.Threshold - 1
	sk.DailyLogs = []skill.DailyLog{{Date: "2025-05-30", Minutes: mastery.Threshold - 1}}
	repo := newMemSkillRepo(sk)
	tr, clk := newTestTracker(repo, &memActiveRepo{})

	if err := tr.Start(ctx, sk.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clk.advance(60 * time.Second)
	commit, err := tr.Stop(ctx)
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if !commit.NewlyMastered {
		t.Error("crossing the threshold must report NewlyMastered")
	}

	// A later session on a mastered skill does not report it again.
	if err := tr.Start(ctx, sk.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clk.advance(60 * time.Second)
	commit, err = tr.Stop(ctx)
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if commit.NewlyMastered {
		t.Error("NewlyMastered reported twice")
	}
}

func TestEventsEmitted(t *testing.T) {
	ctx := context.Background()
	sk := newTestSkill("Piano", "Music")
	repo := newMemSkillRepo(sk)
	events := &recordingEvents{}
	clk := &testClock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local)}
	tr := NewTracker(repo, &memActiveRepo{}, events)
	tr.now = clk.now

	if err := tr.Start(ctx, sk.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clk.advance(30 * time.Second)
	tr.Announce(clk.t)
	if err := tr.Pause(ctx); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if err := tr.Resume(ctx); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	clk.advance(40 * time.Second)
	if _, err := tr.Stop(ctx); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	if events.started != 1 || events.paused != 1 || events.resumed != 1 || events.updated != 1 || events.stopped != 1 {
		t.Errorf("events = %+v, want one of each", events)
	}
	if events.lastCommit == nil || events.lastCommit.Minutes != 1 {
		t.Errorf("stop event commit = %+v, want 1 minute", events.lastCommit)
	}
}

func TestDetachDropsSessionWithoutSaving(t *testing.T) {
	ctx := context.Background()
	sk := newTestSkill("Piano", "Music")
	repo := newMemSkillRepo(sk)
	tr, clk := newTestTracker(repo, &memActiveRepo{})

	if err := tr.Start(ctx, sk.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clk.advance(90 * time.Second)
	saves := repo.saves

	tr.Detach(sk.ID)
	if tr.State() != StateIdle || tr.Skill() != nil {
		t.Error("Detach left session state behind")
	}
	if repo.saves != saves {
		t.Error("Detach wrote to storage")
	}
}
