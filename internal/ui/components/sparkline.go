package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mathadv/mathadv/internal/ui/theme"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders a series as one line of block characters scaled to
// its maximum. Only the last width points are drawn.
func Sparkline(series []int, width int) string {
	if len(series) == 0 || width <= 0 {
		return ""
	}
	if len(series) > width {
		series = series[len(series)-width:]
	}

	peak := 0
	for _, v := range series {
		peak = max(peak, v)
	}

	var b strings.Builder
	for _, v := range series {
		idx := 0
		if peak > 0 && v > 0 {
			idx = v * (len(sparkRunes) - 1) / peak
		}
		b.WriteRune(sparkRunes[idx])
	}
	return lipgloss.NewStyle().Foreground(theme.Secondary).Render(b.String())
}
