package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/mathadv/mathadv/internal/session"
	"github.com/mathadv/mathadv/internal/ui/components"
	"github.com/mathadv/mathadv/internal/ui/layout"
	"github.com/mathadv/mathadv/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}

	mainWidth := width
	var sidebar string
	if width >= layout.MinWidth+layout.SidebarWidth {
		mainWidth = width - layout.SidebarWidth
		sidebar = s.renderTracker(layout.SidebarWidth - 2)
	}

	var main string
	switch {
	case s.showingQuitConfirm:
		main = renderQuitConfirm(mainWidth)
	case s.showingFeedback:
		main = s.renderFeedback(mainWidth)
	default:
		main = s.renderQuestion(mainWidth)
	}

	if s.warnMsg != "" {
		main += "\n\n" + layout.Centered(mainWidth, lipgloss.NewStyle().Foreground(theme.Accent), s.warnMsg)
	}

	if sidebar == "" {
		return main
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, main, sidebar)
}

// renderQuestion renders the active puzzle and answer input.
func (s *PlayScreen) renderQuestion(width int) string {
	if s.puzzle == nil {
		return layout.Centered(width, lipgloss.NewStyle().Foreground(theme.TextDim), "\n\n  Preparing your puzzle...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(width,
		lipgloss.NewStyle().Foreground(theme.LevelColor(string(s.puzzle.Level))).Bold(true),
		fmt.Sprintf("%s  ·  confidence band: %s", s.puzzle.Level, s.puzzle.Band)))
	b.WriteString("\n\n")
	b.WriteString(theme.Question.Width(width).Render(s.puzzle.Question + " = ?"))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle(), "Answer: "+s.input.View()))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(width, theme.Hint,
		fmt.Sprintf("Try to answer within %.1fs", s.puzzle.ExpectedTime)))
	return b.String()
}

// renderFeedback renders the outcome of the last answer.
func (s *PlayScreen) renderFeedback(width int) string {
	res := s.result
	if res == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")

	if res.Correct {
		b.WriteString(layout.Centered(width, theme.Correct,
			fmt.Sprintf("Correct! Time: %.2fs", res.ResponseTime)))
	} else {
		b.WriteString(layout.Centered(width, theme.Incorrect,
			fmt.Sprintf("Incorrect. Correct answer: %s (Time: %.2fs)", res.CorrectAnswer, res.ResponseTime)))
	}
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(width, theme.Body,
		fmt.Sprintf("Confidence: %.2f", res.Confidence)))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width,
		lipgloss.NewStyle().Foreground(theme.LevelColor(string(res.NextLevel))).Bold(true),
		fmt.Sprintf("Next recommended level: %s", res.NextLevel)))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.TextDim),
		"Press any key to continue..."))
	return b.String()
}

// renderTracker renders the live tracker sidebar.
func (s *PlayScreen) renderTracker(width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Live Tracker"))
	b.WriteString("\n\n")

	if len(s.attempts) == 0 {
		b.WriteString(theme.Hint.Width(width).Render("No progress yet. Start answering questions!"))
		return theme.Sidebar.Render(b.String())
	}

	sum := sess.Summarize(s.attempts)
	rows := [][2]string{
		{"Attempted", fmt.Sprintf("%d", sum.Attempts)},
		{"Accuracy", fmt.Sprintf("%.1f%%", sum.Accuracy)},
		{"Correct", fmt.Sprintf("%d", sum.Correct)},
		{"Avg time", fmt.Sprintf("%.2fs", sum.AvgTime)},
		{"Streak", fmt.Sprintf("%d", s.state.Streak)},
	}
	for _, r := range rows {
		label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(r[0])
		value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(r[1])
		gap := max(width-lipgloss.Width(label)-lipgloss.Width(value), 1)
		b.WriteString(label + strings.Repeat(" ", gap) + value + "\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Confidence"))
	b.WriteString("\n")
	b.WriteString(components.ConfidenceBar(s.state.Confidence, width).View())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Score"))
	b.WriteString("\n")
	b.WriteString(components.Sparkline(sum.CumulativeScore, width))

	return theme.Sidebar.Render(b.String())
}

// renderQuitConfirm renders the end-of-session confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Text).Bold(true), "End session?"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.TextDim), "Your attempts are already saved."))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Success), "[Y] Yes, show my summary"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Primary), "[N] No, keep going"))
	return b.String()
}

// renderError renders a fatal error message.
func renderError(width int, errMsg string) string {
	return layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Error),
		fmt.Sprintf("\n\n\n  %s\n\n  Press any key to finish.", errMsg))
}
