package counting

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tenk/internal/screen"
	sess "github.com/abhisek/tenk/internal/session"
	"github.com/abhisek/tenk/internal/skill"
	"github.com/abhisek/tenk/internal/store"
)

// memSkillRepo implements store.SkillRepo for testing.
type memSkillRepo struct {
	skills map[string]*skill.Skill
}

func newMemSkillRepo(skills ...*skill.Skill) *memSkillRepo {
	m := &memSkillRepo{skills: make(map[string]*skill.Skill)}
	for _, sk := range skills {
		m.skills[sk.ID] = sk.Clone()
	}
	return m
}

func (m *memSkillRepo) List(context.Context) ([]*skill.Skill, error) {
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
	m.skills[sk.ID] = sk.Clone()
	return nil
}

func (m *memSkillRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.skills[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.skills, id)
	return nil
}

// memActiveRepo implements store.ActiveRepo for testing.
type memActiveRepo struct {
	id string
}

func (m *memActiveRepo) ActiveSkillID(context.Context) (string, error) { return m.id, nil }
func (m *memActiveRepo) SetActiveSkillID(_ context.Context, id string) error {
	m.id = id
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testCountingScreen(t *testing.T) (*CountingScreen, *memSkillRepo) {
	t.Helper()
	sk, err := skill.New("Guitar", "Music", "")
	if err != nil {
		t.Fatal(err)
	}
	repo := newMemSkillRepo(sk)
	tracker := sess.NewTracker(repo, &memActiveRepo{}, nil)
	return New(Deps{Tracker: tracker}, sk.ID), repo
}

func TestCountingScreen_InitStartsSession(t *testing.T) {
	c, _ := testCountingScreen(t)

	cmd := c.Init()
	if cmd == nil {
		t.Fatal("expected tick command after Init")
	}
	if c.deps.Tracker.State() != sess.StateRunning {
		t.Errorf("state = %v, want running", c.deps.Tracker.State())
	}
}

func TestCountingScreen_InitReattachesSameSkill(t *testing.T) {
	c, _ := testCountingScreen(t)
	c.Init()

	// Entering again for the same skill must not error or restart.
	c2 := New(c.deps, c.skillID)
	c2.Init()
	if c2.errMsg != "" {
		t.Errorf("unexpected error: %q", c2.errMsg)
	}
	if c.deps.Tracker.State() != sess.StateRunning {
		t.Errorf("state = %v, want running", c.deps.Tracker.State())
	}
}

func TestCountingScreen_InitConflict(t *testing.T) {
	c, repo := testCountingScreen(t)
	c.Init()

	other, err := skill.New("Chess", "Games", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(context.Background(), other); err != nil {
		t.Fatal(err)
	}

	c2 := New(c.deps, other.ID)
	c2.Init()
	if c2.errMsg == "" {
		t.Error("expected a conflict error when another session is running")
	}
}

func TestCountingScreen_SpaceTogglesPause(t *testing.T) {
	c, _ := testCountingScreen(t)
	c.Init()

	var scr screen.Screen = c
	scr, _ = scr.Update(keyPress(' '))
	if c.deps.Tracker.State() != sess.StatePaused {
		t.Errorf("state = %v, want paused", c.deps.Tracker.State())
	}

	_, cmd := scr.Update(keyPress(' '))
	if c.deps.Tracker.State() != sess.StateRunning {
		t.Errorf("state = %v, want running", c.deps.Tracker.State())
	}
	if cmd == nil {
		t.Error("expected tick command to restart on resume")
	}
}

func TestCountingScreen_StopShowsSummary(t *testing.T) {
	c, repo := testCountingScreen(t)
	c.Init()

	var scr screen.Screen = c
	scr, _ = scr.Update(keyPress('s'))
	cs := scr.(*CountingScreen)
	if cs.stopped == nil {
		t.Fatal("expected stop commit to be recorded")
	}
	if c.deps.Tracker.State() != sess.StateIdle {
		t.Errorf("state = %v, want idle", c.deps.Tracker.State())
	}

	got, err := repo.Get(context.Background(), c.skillID)
	if err != nil {
		t.Fatal(err)
	}
	if got.IsActive {
		t.Error("skill should no longer be active after stop")
	}

	view := cs.View(80, 24)
	if !strings.Contains(view, "Session saved") {
		t.Error("expected session summary view after stop")
	}
}

func TestCountingScreen_AnyKeyLeavesAfterStop(t *testing.T) {
	c, _ := testCountingScreen(t)
	c.Init()

	var scr screen.Screen = c
	scr, _ = scr.Update(keyPress('s'))
	_, cmd := scr.Update(keyPress(' '))
	if cmd == nil {
		t.Error("expected pop command after stop summary")
	}
}

func TestCountingScreen_ViewShowsSkill(t *testing.T) {
	c, _ := testCountingScreen(t)
	c.Init()

	view := c.View(80, 24)
	if !strings.Contains(view, "Guitar") {
		t.Error("expected skill title in view")
	}
	if !strings.Contains(view, "this session") {
		t.Error("expected session delta in view")
	}
}
