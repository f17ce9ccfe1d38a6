package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tenk/internal/ui/layout"
)

// Screen is one view in the app: the skill list, a session, a form.
// Screens live on the router stack and render inside the shared frame.
type Screen interface {
	// Init returns an initial command. It runs on push and again when
	// the screen is revealed by a pop, so data can be reloaded.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content between header and footer.
	View(width, height int) string

	// Title names the screen for the header bar.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
