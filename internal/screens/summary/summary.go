package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathadv/mathadv/internal/router"
	"github.com/mathadv/mathadv/internal/session"
	"github.com/mathadv/mathadv/internal/ui/components"
	"github.com/mathadv/mathadv/internal/ui/layout"
	"github.com/mathadv/mathadv/internal/ui/theme"
)

// SummaryScreen displays the end-of-session figures.
type SummaryScreen struct {
	state    session.State
	summary  session.Summary
	duration time.Duration
}

var _ router.Screen = (*SummaryScreen)(nil)
var _ router.KeyHintProvider = (*SummaryScreen)(nil)
var _ router.StatusProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(state session.State, summary session.Summary, duration time.Duration) *SummaryScreen {
	return &SummaryScreen{state: state, summary: summary, duration: duration}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) Status() layout.Status {
	return layout.Status{
		Level:      string(s.state.Level),
		Streak:     s.state.Streak,
		Confidence: s.state.Confidence,
	}
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Exit"},
		{Key: "Esc", Description: "Exit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Session complete!"))
	b.WriteString("\n\n")

	mins := int(s.duration.Minutes())
	secs := int(s.duration.Seconds()) % 60
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("%s  ·  Duration: %d:%02d", s.state.SessionID, mins, secs)))
	b.WriteString("\n\n")

	if sum.Attempts == 0 {
		b.WriteString(layout.Centered(width, theme.Hint, "No questions answered this time."))
		return b.String()
	}

	stats := fmt.Sprintf("Questions: %d      Correct: %d      Accuracy: %.1f%%      Avg time: %.2fs",
		sum.Attempts, sum.Correct, sum.Accuracy, sum.AvgTime)
	b.WriteString(layout.Centered(width, theme.Body, stats))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.TextDim), "Score over time"))
	b.WriteString("\n")
	chartWidth := min(width-8, 60)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.Sparkline(sum.CumulativeScore, chartWidth)))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(width,
		lipgloss.NewStyle().Foreground(theme.LevelColor(string(s.state.Level))).Bold(true),
		fmt.Sprintf("Next time you start at %s", s.state.Level)))

	return b.String()
}
