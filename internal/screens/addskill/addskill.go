// Package addskill implements the create/edit skill form.
package addskill

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tenk/internal/router"
	"github.com/abhisek/tenk/internal/screen"
	"github.com/abhisek/tenk/internal/skill"
	"github.com/abhisek/tenk/internal/store"
	"github.com/abhisek/tenk/internal/ui/components"
	"github.com/abhisek/tenk/internal/ui/layout"
	"github.com/abhisek/tenk/internal/ui/theme"
)

// Deps carries the repositories the form needs.
type Deps struct {
	Skills store.SkillRepo
}

// skillSavedMsg is sent after a save attempt completes.
type skillSavedMsg struct {
	Err error
}

const (
	fieldTitle = iota
	fieldCategory
	fieldMotivation
	fieldCount
)

// AddSkillScreen is the create/edit form. When editing, the existing
// skill's identity and practice history are preserved.
type AddSkillScreen struct {
	deps    Deps
	editing *skill.Skill
	inputs  [fieldCount]components.TextInput
	focus   int
	errMsg  string
}

var _ screen.Screen = (*AddSkillScreen)(nil)
var _ screen.KeyHintProvider = (*AddSkillScreen)(nil)

// New creates the form. Pass a skill to edit it, nil to create.
func New(deps Deps, editing *skill.Skill) *AddSkillScreen {
	s := &AddSkillScreen{deps: deps, editing: editing}
	s.inputs[fieldTitle] = components.NewTextInput("Title", "What are you practicing?", 60)
	s.inputs[fieldCategory] = components.NewTextInput("Category", "Music, Sport, Craft...", 40)
	s.inputs[fieldMotivation] = components.NewTextInput("Why (optional)", "What keeps you going?", 120)

	if editing != nil {
		s.inputs[fieldTitle].SetValue(editing.Title)
		s.inputs[fieldCategory].SetValue(editing.Category)
		s.inputs[fieldMotivation].SetValue(editing.Motivation)
	}
	return s
}

func (s *AddSkillScreen) Init() tea.Cmd {
	return s.inputs[fieldTitle].Focus()
}

func (s *AddSkillScreen) Title() string {
	if s.editing != nil {
		return "Edit Skill"
	}
	return "New Skill"
}

func (s *AddSkillScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *AddSkillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case skillSavedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return s, s.setFocus((s.focus + fieldCount - 1) % fieldCount)
		case "enter":
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *AddSkillScreen) setFocus(idx int) tea.Cmd {
	s.inputs[s.focus].Blur()
	s.focus = idx
	return s.inputs[s.focus].Focus()
}

func (s *AddSkillScreen) submit() tea.Cmd {
	title := strings.TrimSpace(s.inputs[fieldTitle].Value())
	category := strings.TrimSpace(s.inputs[fieldCategory].Value())
	motivation := strings.TrimSpace(s.inputs[fieldMotivation].Value())

	var sk *skill.Skill
	if s.editing != nil {
		sk = s.editing.Clone()
		sk.Title = title
		sk.Category = category
		sk.Motivation = motivation
		if err := sk.Validate(); err != nil {
			s.markInvalid(err)
			return nil
		}
	} else {
		var err error
		sk, err = skill.New(title, category, motivation)
		if err != nil {
			s.markInvalid(err)
			return nil
		}
	}

	return func() tea.Msg {
		return skillSavedMsg{Err: s.deps.Skills.Save(context.Background(), sk)}
	}
}

// markInvalid pins the validation error under the offending field.
func (s *AddSkillScreen) markInvalid(err error) {
	var verr *skill.ValidationError
	if !errors.As(err, &verr) {
		s.errMsg = err.Error()
		return
	}
	idx := fieldTitle
	if verr.Field == "category" {
		idx = fieldCategory
	}
	s.inputs[idx].SetError(verr.Error())
	s.setFocus(idx)
}

func (s *AddSkillScreen) View(width, height int) string {
	heading := theme.Title.Render(s.Title())
	if s.editing != nil {
		heading += "\n" + theme.Subtitle.Render("Practice history is kept")
	}

	var fields []string
	for i := range s.inputs {
		fields = append(fields, s.inputs[i].View())
	}

	body := heading + "\n\n" + strings.Join(fields, "\n\n")
	if s.errMsg != "" {
		body += "\n\n" + theme.Danger.Render(s.errMsg)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
