// Package render draws terminal boxes, bar charts, and grades from the
// analysis engine's structured output. It never computes analysis results
// itself.
package render

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/term"
)

// Box-drawing runes, matching the cacheforge-stats report style.
const (
	boxTL = "┌"
	boxTR = "┐"
	boxBL = "└"
	boxBR = "┘"
	boxH  = "─"
	boxV  = "│"
	boxML = "├"
	boxMR = "┤"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI escape sequences for length calculations.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// Width returns the report width: the terminal width clamped to [40, 80],
// or 60 when the terminal size is unavailable.
func Width() int {
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 60
	}
	if cols < 40 {
		return 40
	}
	if cols > 80 {
		return 80
	}
	return cols
}

// BoxTop returns the top border of a box of inner width w.
func BoxTop(w int) string {
	return boxTL + strings.Repeat(boxH, w) + boxTR
}

// BoxBottom returns the bottom border.
func BoxBottom(w int) string {
	return boxBL + strings.Repeat(boxH, w) + boxBR
}

// BoxSep returns a horizontal separator.
func BoxSep(w int) string {
	return boxML + strings.Repeat(boxH, w) + boxMR
}

// BoxRow returns text framed by box verticals, padded to width w.
// Embedded ANSI codes do not count against the padding.
func BoxRow(text string, w int) string {
	visible := len([]rune(StripANSI(text)))
	pad := w - visible - 1
	if pad < 0 {
		pad = 0
	}
	return fmt.Sprintf("%s %s%s%s", boxV, text, strings.Repeat(" ", pad), boxV)
}

// BoxEmpty returns an empty framed row.
func BoxEmpty(w int) string {
	return BoxRow("", w)
}

// Rule returns a dim horizontal rule for use inside a box.
func Rule(w int) string {
	return Dim("  " + strings.Repeat(boxH, w-4))
}
