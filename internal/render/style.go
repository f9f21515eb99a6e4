package render

import "github.com/fatih/color"

// Sprint helpers shared by the renderers. fatih/color honors NO_COLOR and
// non-TTY output on its own.
var (
	Green   = color.New(color.FgHiGreen).SprintFunc()
	Yellow  = color.New(color.FgHiYellow).SprintFunc()
	Red     = color.New(color.FgHiRed).SprintFunc()
	Cyan    = color.New(color.FgHiCyan).SprintFunc()
	White   = color.New(color.FgHiWhite).SprintFunc()
	Dim     = color.New(color.Faint).SprintFunc()
	Bold    = color.New(color.Bold).SprintFunc()
	Title   = color.New(color.Bold, color.FgHiCyan).SprintFunc()
	Heading = color.New(color.Bold, color.FgHiWhite).SprintFunc()
)
