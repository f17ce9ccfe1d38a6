// Package detail implements the per-skill statistics screen.
package detail

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tenk/internal/mastery"
	"github.com/abhisek/tenk/internal/router"
	"github.com/abhisek/tenk/internal/screen"
	"github.com/abhisek/tenk/internal/screens/addskill"
	"github.com/abhisek/tenk/internal/screens/counting"
	sess "github.com/abhisek/tenk/internal/session"
	"github.com/abhisek/tenk/internal/skill"
	"github.com/abhisek/tenk/internal/store"
	"github.com/abhisek/tenk/internal/ui/components"
	"github.com/abhisek/tenk/internal/ui/layout"
	"github.com/abhisek/tenk/internal/ui/theme"
)

const chartDays = 14

// Deps carries the repositories and services the detail screen needs.
type Deps struct {
	Skills  store.SkillRepo
	Tracker *sess.Tracker
}

// skillLoadedMsg is sent when the skill has been read from the store.
type skillLoadedMsg struct {
	Skill     *skill.Skill
	Celebrate bool
	Err       error
}

// DetailScreen shows one skill's progress, streaks and daily chart.
type DetailScreen struct {
	deps      Deps
	skillID   string
	sk        *skill.Skill
	celebrate bool
	errMsg    string
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New creates a detail screen for the given skill.
func New(deps Deps, skillID string) *DetailScreen {
	return &DetailScreen{deps: deps, skillID: skillID}
}

func (d *DetailScreen) Init() tea.Cmd {
	return d.loadSkill()
}

func (d *DetailScreen) Title() string {
	if d.sk != nil {
		return d.sk.Title
	}
	return "Skill"
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "S", Description: "Practice"},
		{Key: "E", Description: "Edit"},
		{Key: "Esc", Description: "Back"},
	}
}

// loadSkill reads the skill and latches the mastery celebration so the
// banner shows exactly once across app runs.
func (d *DetailScreen) loadSkill() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		sk, err := d.deps.Skills.Get(ctx, d.skillID)
		if err != nil {
			return skillLoadedMsg{Err: err}
		}

		celebrate := mastery.ShouldCelebrate(sk)
		if celebrate {
			mastery.MarkCelebrated(sk)
			if err := d.deps.Skills.Save(ctx, sk); err != nil {
				return skillLoadedMsg{Err: err}
			}
		}
		return skillLoadedMsg{Skill: sk, Celebrate: celebrate}
	}
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case skillLoadedMsg:
		if msg.Err != nil {
			d.errMsg = msg.Err.Error()
			return d, nil
		}
		d.sk = msg.Skill
		d.celebrate = msg.Celebrate
		return d, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			if d.sk != nil {
				c := counting.New(counting.Deps{Tracker: d.deps.Tracker}, d.sk.ID)
				return d, func() tea.Msg { return router.PushScreenMsg{Screen: c} }
			}
		case "e":
			if d.sk != nil {
				a := addskill.New(addskill.Deps{Skills: d.deps.Skills}, d.sk)
				return d, func() tea.Msg { return router.PushScreenMsg{Screen: a} }
			}
		}
	}
	return d, nil
}

func (d *DetailScreen) View(width, height int) string {
	if d.errMsg != "" {
		return theme.Danger.Render("Error: " + d.errMsg)
	}
	if d.sk == nil {
		return theme.Hint.Render("Loading...")
	}

	sk := d.sk
	now := time.Now()
	var sections []string

	if d.celebrate {
		banner := theme.Mastered.Render("★★★  10,000 MINUTES  ★★★") + "\n" +
			theme.Body.Render("You mastered "+sk.Title+". Take a bow.")
		sections = append(sections, theme.Card.BorderForeground(theme.Accent).Render(banner))
	}

	header := theme.Title.Render(sk.Title) + "\n" + theme.Subtitle.Render(sk.Category)
	if sk.Motivation != "" {
		header += "\n" + theme.Hint.Render("“"+sk.Motivation+"”")
	}
	sections = append(sections, header)

	barWidth := width - 8
	if barWidth > 70 {
		barWidth = 70
	}
	bar := components.NewProgressBar("", mastery.Progress(sk.TotalMinutes), true, barWidth)
	sections = append(sections, bar.View())

	sections = append(sections, d.renderStats(now))

	chart := components.NewBarChart(chartDays, 6)
	sections = append(sections, theme.Subtitle.Render("Last two weeks")+"\n"+chart.View(sk, now))

	body := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().Padding(1, 4).Width(width).Render(body)
}

func (d *DetailScreen) renderStats(now time.Time) string {
	sk := d.sk
	hours := float64(sk.TotalMinutes) / 60

	rows := [][2]string{
		{"Total", fmt.Sprintf("%.1f hours (%d minutes)", hours, sk.TotalMinutes)},
		{"Today", fmt.Sprintf("%d minutes", sk.MinutesOn(skill.Today(now)))},
		{"Practice days", fmt.Sprintf("%d", sk.PracticeDays())},
		{"Daily average", fmt.Sprintf("%.1f minutes", sk.AverageDailyMinutes(now))},
		{"Started", sk.CreatedAt.Format("Jan 2, 2006")},
	}

	keyStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(16)
	var lines []string
	for _, r := range rows {
		lines = append(lines, keyStyle.Render(r[0])+theme.Body.Render(r[1]))
	}
	return strings.Join(lines, "\n")
}
