// Package counting implements the live practice session screen: a
// large running clock over the skill's accumulated total.
package counting

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tenk/internal/router"
	"github.com/abhisek/tenk/internal/screen"
	sess "github.com/abhisek/tenk/internal/session"
	"github.com/abhisek/tenk/internal/ui/layout"
	"github.com/abhisek/tenk/internal/ui/theme"
)

// Deps carries the services the counting screen needs.
type Deps struct {
	Tracker *sess.Tracker
}

// timerTickMsg is sent every second while the session is running.
type timerTickMsg time.Time

// CountingScreen shows the active session for one skill.
type CountingScreen struct {
	deps         Deps
	skillID      string
	errMsg       string
	stopped      *sess.Commit
	lastAnnounce int
}

var _ screen.Screen = (*CountingScreen)(nil)
var _ screen.KeyHintProvider = (*CountingScreen)(nil)

// New creates a counting screen for the given skill.
func New(deps Deps, skillID string) *CountingScreen {
	return &CountingScreen{deps: deps, skillID: skillID}
}

func (c *CountingScreen) Init() tea.Cmd {
	tracker := c.deps.Tracker

	// Re-entering the screen for the skill already being practiced
	// just reattaches the view; anything else starts a session.
	if active := tracker.Skill(); active == nil || active.ID != c.skillID {
		if err := tracker.Start(context.Background(), c.skillID); err != nil {
			c.errMsg = err.Error()
			return nil
		}
	}

	if tracker.State() == sess.StateRunning {
		return tickCmd()
	}
	return nil
}

func (c *CountingScreen) Title() string {
	return "Practice"
}

func (c *CountingScreen) KeyHints() []layout.KeyHint {
	if c.errMsg != "" || c.stopped != nil {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	pauseLabel := "Pause"
	if c.deps.Tracker.State() == sess.StatePaused {
		pauseLabel = "Resume"
	}
	return []layout.KeyHint{
		{Key: "Space", Description: pauseLabel},
		{Key: "S", Description: "Stop & save"},
		{Key: "Esc", Description: "Keep running in background"},
	}
}

func (c *CountingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if c.deps.Tracker.State() != sess.StateRunning {
			return c, nil
		}
		c.announceEveryMinute(time.Time(msg))
		return c, tickCmd()

	case tea.KeyMsg:
		return c.handleKey(msg)
	}
	return c, nil
}

func (c *CountingScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if c.errMsg != "" || c.stopped != nil {
		return c, func() tea.Msg { return router.PopScreenMsg{} }
	}

	tracker := c.deps.Tracker
	switch msg.String() {
	case "space", " ":
		switch tracker.State() {
		case sess.StateRunning:
			if err := tracker.Pause(context.Background()); err != nil {
				c.errMsg = err.Error()
			}
			return c, nil
		case sess.StatePaused:
			if err := tracker.Resume(context.Background()); err != nil {
				c.errMsg = err.Error()
				return c, nil
			}
			return c, tickCmd()
		}
	case "s":
		commit, err := tracker.Stop(context.Background())
		if err != nil {
			c.errMsg = err.Error()
			return c, nil
		}
		c.stopped = commit
		return c, nil
	}
	return c, nil
}

// announceEveryMinute emits a session heartbeat once per whole minute.
func (c *CountingScreen) announceEveryMinute(now time.Time) {
	secs := c.deps.Tracker.SessionSeconds(now)
	if secs/60 > c.lastAnnounce {
		c.lastAnnounce = secs / 60
		c.deps.Tracker.Announce(now)
	}
}

func (c *CountingScreen) View(width, height int) string {
	if c.errMsg != "" {
		body := theme.Danger.Render("Session error") + "\n\n" + theme.Body.Render(c.errMsg)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
	}
	if c.stopped != nil {
		return c.renderStopped(width, height)
	}

	sk := c.deps.Tracker.Skill()
	if sk == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No session running"))
	}

	now := time.Now()
	sessionSecs := c.deps.Tracker.SessionSeconds(now)
	totalSecs := sk.TotalMinutes*60 + sessionSecs

	title := theme.Title.Render(sk.Title)
	clock := renderBigClock(sess.FormatClock(totalSecs))
	delta := theme.Body.Render("+" + sess.FormatClock(sessionSecs) + " this session")

	status := ""
	if c.deps.Tracker.State() == sess.StatePaused {
		status = "\n\n" + theme.PausedBadge.Render(" PAUSED ")
	}

	motivation := ""
	if sk.Motivation != "" {
		motivation = "\n\n" + theme.Hint.Render("“"+sk.Motivation+"”")
	}

	body := title + "\n\n" + clock + "\n\n" + delta + status + motivation
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (c *CountingScreen) renderStopped(width, height int) string {
	commit := c.stopped
	lines := []string{
		theme.Title.Render("Session saved"),
		"",
		theme.Body.Render(fmt.Sprintf("Practiced %s, logged %d min on %s",
			sess.FormatClock(commit.Seconds), commit.Minutes, commit.Date)),
		theme.Subtitle.Render(fmt.Sprintf("%d minutes total", commit.TotalMinutes)),
	}
	if commit.NewlyMastered {
		lines = append(lines, "", theme.Mastered.Render("★ 10,000 minutes — skill mastered! ★"))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(lines, "\n"))
}

// renderBigClock spaces out the digits so the timer reads from across
// the room.
func renderBigClock(clock string) string {
	var sb strings.Builder
	for i, r := range clock {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteRune(r)
	}
	return theme.Clock.Render(sb.String())
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
