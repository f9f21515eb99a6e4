package render

import (
	"math"
	"strings"
)

const (
	blockFull  = "█"
	blockLight = "░"
)

// Bar renders a block-element bar chart segment: filled blocks in green,
// the remainder dimmed.
func Bar(value, maxVal float64, width int) string {
	filled := 0
	if maxVal > 0 {
		filled = int(math.Round(value / maxVal * float64(width)))
		if filled < 0 {
			filled = 0
		}
		if filled > width {
			filled = width
		}
	}
	return Green(strings.Repeat(blockFull, filled)) + Dim(strings.Repeat(blockLight, width-filled))
}

// PctBar renders a bar for a 0-100 percentage.
func PctBar(pct float64, width int) string {
	return Bar(pct, 100, width)
}

// BudgetBar renders used vs available budget as a split solid bar.
func BudgetBar(usedPct float64, width int) string {
	if usedPct > 100 {
		usedPct = 100
	}
	if usedPct < 0 {
		usedPct = 0
	}
	used := int(usedPct / 100 * float64(width))
	return Yellow(strings.Repeat(blockFull, used)) + Green(strings.Repeat(blockFull, width-used))
}
