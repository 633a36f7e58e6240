package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a session bar like [████░░░░] 45%.
func RenderProgress(pct float64, width int, dim bool) string {
	return fmt.Sprintf("[%s] %3.0f%%", RenderCompactBar(pct, width, dim), clampPct(pct)*100)
}

// RenderCompactBar renders just the blocks, without brackets or percentage.
// Dimmed bars are drawn without color so they read as inactive.
func RenderCompactBar(pct float64, width int, dim bool) string {
	pct = clampPct(pct)
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	if dim {
		return bar
	}
	style := StyleGreen
	if pct >= 1 {
		style = StylePurple
	}
	return style.Render(bar)
}

func clampPct(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
