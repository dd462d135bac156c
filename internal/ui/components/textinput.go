package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathadv/mathadv/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for numeric answers. It accepts
// digits, one leading minus sign and one decimal point, since division
// answers can be fractional.
type AnswerInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

// NewAnswerInput creates a focused answer input.
func NewAnswerInput(placeholder string, maxWidth int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages, dropping printable keys that cannot be part
// of a number.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && !a.accepts(key[0]) {
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

func (a AnswerInput) accepts(c byte) bool {
	v := a.Model.Value()
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == '-':
		return v == ""
	case c == '.':
		return !strings.Contains(v, ".")
	}
	return false
}

// View renders the input with a check or cross once submitted.
func (a AnswerInput) View() string {
	view := a.Model.View()
	if a.submitted {
		if a.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the trimmed input value.
func (a AnswerInput) Value() string {
	return strings.TrimSpace(a.Model.Value())
}

// NumericValue parses the input as a float.
func (a AnswerInput) NumericValue() (float64, error) {
	return strconv.ParseFloat(a.Value(), 64)
}

// Submit marks the input as submitted with a result.
func (a *AnswerInput) Submit(valid bool) {
	a.submitted = true
	a.valid = valid
	a.Model.Blur()
}
