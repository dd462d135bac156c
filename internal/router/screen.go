package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/mathadv/mathadv/internal/ui/layout"
)

// Screen is one full-window view managed by the Router. View receives the
// space left between the header and the footer.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider lets a screen show level, streak and confidence in the
// header.
type StatusProvider interface {
	Status() layout.Status
}
