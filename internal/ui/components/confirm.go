package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tenk/internal/ui/theme"
)

// Confirm is a yes/no prompt rendered as a card. The zero value is
// hidden; call Show to arm it.
type Confirm struct {
	Prompt  string
	Detail  string
	visible bool
	yes     bool
}

// Show arms the prompt with No preselected.
func (c *Confirm) Show(prompt, detail string) {
	c.Prompt = prompt
	c.Detail = detail
	c.visible = true
	c.yes = false
}

// Hide dismisses the prompt.
func (c *Confirm) Hide() {
	c.visible = false
}

// Visible reports whether the prompt is showing.
func (c Confirm) Visible() bool {
	return c.visible
}

// Update handles navigation keys. It returns (answered, confirmed):
// answered is true once the user committed or cancelled.
func (c *Confirm) Update(msg tea.Msg) (bool, bool) {
	if !c.visible {
		return false, false
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, false
	}

	switch kmsg.String() {
	case "left", "right", "h", "l", "tab":
		c.yes = !c.yes
	case "y":
		c.visible = false
		return true, true
	case "n", "esc":
		c.visible = false
		return true, false
	case "enter":
		c.visible = false
		return true, c.yes
	}
	return false, false
}

// View renders the prompt card.
func (c Confirm) View() string {
	if !c.visible {
		return ""
	}

	yesStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 2)
	noStyle := yesStyle
	if c.yes {
		yesStyle = theme.Danger.Padding(0, 2)
	} else {
		noStyle = theme.Selected.Padding(0, 2)
	}

	body := theme.Body.Render(c.Prompt)
	if c.Detail != "" {
		body += "\n" + theme.Hint.Render(c.Detail)
	}
	body += "\n\n" + yesStyle.Render("Yes") + "   " + noStyle.Render("No")

	return theme.Card.BorderForeground(theme.Error).Render(body)
}
