package home

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
	ordered []string
	skills  map[string]*skill.Skill
}

func newMemSkillRepo(skills ...*skill.Skill) *memSkillRepo {
	m := &memSkillRepo{skills: make(map[string]*skill.Skill)}
	for _, sk := range skills {
		m.ordered = append(m.ordered, sk.ID)
		m.skills[sk.ID] = sk.Clone()
	}
	return m
}

func (m *memSkillRepo) List(context.Context) ([]*skill.Skill, error) {
	var out []*skill.Skill
	for _, id := range m.ordered {
		if sk, ok := m.skills[id]; ok {
			out = append(out, sk.Clone())
		}
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
	if _, ok := m.skills[sk.ID]; !ok {
		m.ordered = append(m.ordered, sk.ID)
	}
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

func mustSkill(t *testing.T, title string) *skill.Skill {
	t.Helper()
	sk, err := skill.New(title, "Music", "")
	if err != nil {
		t.Fatal(err)
	}
	return sk
}

func testHomeScreen(t *testing.T, skills ...*skill.Skill) (*HomeScreen, *memSkillRepo) {
	t.Helper()
	repo := newMemSkillRepo(skills...)
	tracker := sess.NewTracker(repo, &memActiveRepo{}, nil)
	h := New(Deps{Skills: repo, Tracker: tracker})

	// Run the load command synchronously, the way the runtime would.
	if cmd := h.Init(); cmd != nil {
		h.Update(cmd())
	}
	return h, repo
}

func TestHomeScreen_EmptyState(t *testing.T) {
	h, _ := testHomeScreen(t)

	view := h.View(80, 24)
	if !strings.Contains(view, "No skills yet") {
		t.Error("expected empty state message")
	}
}

func TestHomeScreen_ListsSkills(t *testing.T) {
	h, _ := testHomeScreen(t, mustSkill(t, "Guitar"), mustSkill(t, "Chess"))

	view := h.View(80, 24)
	if !strings.Contains(view, "Guitar") || !strings.Contains(view, "Chess") {
		t.Errorf("expected both skills in view, got:\n%s", view)
	}
}

func TestHomeScreen_CursorNavigation(t *testing.T) {
	h, _ := testHomeScreen(t, mustSkill(t, "Guitar"), mustSkill(t, "Chess"))

	var scr screen.Screen = h
	scr, _ = scr.Update(keyPress('j'))
	if h.cursor != 1 {
		t.Errorf("cursor = %d, want 1", h.cursor)
	}
	scr.Update(keyPress('j'))
	if h.cursor != 1 {
		t.Errorf("cursor = %d, want clamped at 1", h.cursor)
	}
	scr.Update(keyPress('k'))
	if h.cursor != 0 {
		t.Errorf("cursor = %d, want 0", h.cursor)
	}
}

func TestHomeScreen_EnterPushesDetail(t *testing.T) {
	h, _ := testHomeScreen(t, mustSkill(t, "Guitar"))

	var scr screen.Screen = h
	_, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command on enter")
	}
}

func TestHomeScreen_DeleteNeedsConfirmation(t *testing.T) {
	h, repo := testHomeScreen(t, mustSkill(t, "Guitar"))

	var scr screen.Screen = h
	scr, _ = scr.Update(keyPress('d'))
	if !h.confirm.Visible() {
		t.Fatal("expected delete confirmation")
	}

	// Decline: the skill stays.
	scr.Update(keyPress('n'))
	skills, _ := repo.List(context.Background())
	if len(skills) != 1 {
		t.Errorf("skills = %d, want 1 after declined delete", len(skills))
	}
}

func TestHomeScreen_DeleteConfirmed(t *testing.T) {
	h, repo := testHomeScreen(t, mustSkill(t, "Guitar"))

	var scr screen.Screen = h
	scr, _ = scr.Update(keyPress('d'))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected delete command")
	}
	h.Update(cmd())

	skills, _ := repo.List(context.Background())
	if len(skills) != 0 {
		t.Errorf("skills = %d, want 0 after delete", len(skills))
	}
}

func TestHomeScreen_DeleteActiveSkillDetachesSession(t *testing.T) {
	sk := mustSkill(t, "Guitar")
	h, repo := testHomeScreen(t, sk)
	if err := h.deps.Tracker.Start(context.Background(), sk.ID); err != nil {
		t.Fatal(err)
	}

	var scr screen.Screen = h
	scr, _ = scr.Update(keyPress('d'))
	_, cmd := scr.Update(keyPress('y'))
	h.Update(cmd())

	if h.deps.Tracker.State() != sess.StateIdle {
		t.Errorf("tracker state = %v, want idle after deleting active skill", h.deps.Tracker.State())
	}
	if _, err := repo.Get(context.Background(), sk.ID); err == nil {
		t.Error("expected skill record to be gone")
	}
}

func TestHomeScreen_ActiveBadge(t *testing.T) {
	sk := mustSkill(t, "Guitar")
	h, _ := testHomeScreen(t, sk)
	if err := h.deps.Tracker.Start(context.Background(), sk.ID); err != nil {
		t.Fatal(err)
	}

	view := h.View(80, 24)
	if !strings.Contains(view, "ACTIVE") {
		t.Error("expected ACTIVE badge for the skill being practiced")
	}
}
