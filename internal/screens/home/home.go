// Package home implements the skill list screen, the app's landing view.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tenk/internal/mastery"
	"github.com/abhisek/tenk/internal/router"
	"github.com/abhisek/tenk/internal/screen"
	"github.com/abhisek/tenk/internal/screens/addskill"
	"github.com/abhisek/tenk/internal/screens/counting"
	"github.com/abhisek/tenk/internal/screens/detail"
	sess "github.com/abhisek/tenk/internal/session"
	"github.com/abhisek/tenk/internal/skill"
	"github.com/abhisek/tenk/internal/store"
	"github.com/abhisek/tenk/internal/ui/components"
	"github.com/abhisek/tenk/internal/ui/layout"
	"github.com/abhisek/tenk/internal/ui/theme"
)

// Deps carries the repositories and services the home screen needs.
type Deps struct {
	Skills  store.SkillRepo
	Tracker *sess.Tracker
}

// skillsLoadedMsg is sent when the skill list has been read from the store.
type skillsLoadedMsg struct {
	Skills []*skill.Skill
	Err    error
}

// skillDeletedMsg is sent after a delete attempt completes.
type skillDeletedMsg struct {
	Err error
}

// HomeScreen lists all skills with their progress toward mastery.
type HomeScreen struct {
	deps    Deps
	skills  []*skill.Skill
	cursor  int
	confirm components.Confirm
	errMsg  string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	return &HomeScreen{deps: deps}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadSkills()
}

func (h *HomeScreen) Title() string {
	return "Skills"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.confirm.Visible() {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "S", Description: "Practice"},
		{Key: "A", Description: "Add"},
		{Key: "E", Description: "Edit"},
		{Key: "D", Description: "Delete"},
	}
}

func (h *HomeScreen) loadSkills() tea.Cmd {
	return func() tea.Msg {
		skills, err := h.deps.Skills.List(context.Background())
		return skillsLoadedMsg{Skills: skills, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case skillsLoadedMsg:
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.errMsg = ""
		h.skills = msg.Skills
		if h.cursor >= len(h.skills) {
			h.cursor = len(h.skills) - 1
		}
		if h.cursor < 0 {
			h.cursor = 0
		}
		return h, nil

	case skillDeletedMsg:
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		return h, h.loadSkills()

	case tea.KeyMsg:
		return h.handleKey(msg)
	}
	return h, nil
}

func (h *HomeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if answered, confirmed := h.confirm.Update(msg); answered {
		if confirmed {
			return h, h.deleteSelected()
		}
		return h, nil
	}
	if h.confirm.Visible() {
		return h, nil
	}

	switch msg.String() {
	case "up", "k":
		if h.cursor > 0 {
			h.cursor--
		}
	case "down", "j":
		if h.cursor < len(h.skills)-1 {
			h.cursor++
		}
	case "enter":
		if sk := h.selected(); sk != nil {
			d := detail.New(detail.Deps{Skills: h.deps.Skills, Tracker: h.deps.Tracker}, sk.ID)
			return h, func() tea.Msg { return router.PushScreenMsg{Screen: d} }
		}
	case "s":
		if sk := h.selected(); sk != nil {
			c := counting.New(counting.Deps{Tracker: h.deps.Tracker}, sk.ID)
			return h, func() tea.Msg { return router.PushScreenMsg{Screen: c} }
		}
	case "a":
		a := addskill.New(addskill.Deps{Skills: h.deps.Skills}, nil)
		return h, func() tea.Msg { return router.PushScreenMsg{Screen: a} }
	case "e":
		if sk := h.selected(); sk != nil {
			a := addskill.New(addskill.Deps{Skills: h.deps.Skills}, sk)
			return h, func() tea.Msg { return router.PushScreenMsg{Screen: a} }
		}
	case "d":
		if sk := h.selected(); sk != nil {
			detailMsg := "All practice history for this skill will be lost."
			if h.deps.Tracker.Skill() != nil && h.deps.Tracker.Skill().ID == sk.ID {
				detailMsg = "A session is running for this skill. It will be discarded."
			}
			h.confirm.Show(fmt.Sprintf("Delete %q?", sk.Title), detailMsg)
		}
	}
	return h, nil
}

func (h *HomeScreen) selected() *skill.Skill {
	if h.cursor < 0 || h.cursor >= len(h.skills) {
		return nil
	}
	return h.skills[h.cursor]
}

func (h *HomeScreen) deleteSelected() tea.Cmd {
	sk := h.selected()
	if sk == nil {
		return nil
	}
	return func() tea.Msg {
		// Drop any live session first so Stop cannot resurrect the row.
		if active := h.deps.Tracker.Skill(); active != nil && active.ID == sk.ID {
			h.deps.Tracker.Detach(sk.ID)
		}
		err := h.deps.Skills.Delete(context.Background(), sk.ID)
		return skillDeletedMsg{Err: err}
	}
}

func (h *HomeScreen) View(width, height int) string {
	if h.errMsg != "" {
		return theme.Danger.Render("Error: " + h.errMsg)
	}

	if h.confirm.Visible() {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, h.confirm.View())
	}

	if len(h.skills) == 0 {
		empty := theme.Title.Render("No skills yet") + "\n\n" +
			theme.Subtitle.Render("Press A to add your first skill\nand start the journey to 10,000 hours")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, empty)
	}

	var rows []string
	for i, sk := range h.skills {
		rows = append(rows, h.renderRow(sk, i == h.cursor, width))
	}
	return "\n" + strings.Join(rows, "\n\n")
}

func (h *HomeScreen) renderRow(sk *skill.Skill, selected bool, width int) string {
	cursor := "  "
	titleStyle := theme.Unselected
	if selected {
		cursor = "▸ "
		titleStyle = theme.Selected
	}

	badge := ""
	if active := h.deps.Tracker.Skill(); active != nil && active.ID == sk.ID {
		if h.deps.Tracker.State() == sess.StatePaused {
			badge = "  " + theme.PausedBadge.Render("PAUSED")
		} else {
			badge = "  " + theme.ActiveBadge.Render("ACTIVE")
		}
	} else if mastery.IsMastered(sk.TotalMinutes) {
		badge = "  " + theme.Mastered.Render("★ MASTERED")
	}

	head := fmt.Sprintf("  %s%s%s  %s",
		cursor,
		titleStyle.Render(sk.Title),
		badge,
		theme.Hint.Render(sk.Category),
	)

	hours := float64(sk.TotalMinutes) / 60
	stats := fmt.Sprintf("%.1f h of %d h", hours, mastery.Threshold/60)

	barWidth := width - 12
	if barWidth > 70 {
		barWidth = 70
	}
	bar := components.NewProgressBar("", mastery.Progress(sk.TotalMinutes), true, barWidth)

	return head + "\n" +
		"      " + bar.View() + "\n" +
		"      " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(stats)
}
