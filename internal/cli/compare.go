package cli

import (
	"fmt"

	"github.com/cacheforge-ai/cacheforge-skills/internal/render"
	"github.com/cacheforge-ai/cacheforge-skills/internal/snapshot"
	"github.com/spf13/cobra"
)

type compareOptions struct {
	before string
	after  string
}

// NewCompareCmd creates the compare command.
func NewCompareCmd() *cobra.Command {
	opts := &compareOptions{}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare before/after analysis snapshots",
		Long: `Compares two snapshots saved by 'cacheforge analyze --snapshot' and
reports token savings, efficiency change, issues resolved, and a
per-file breakdown of what changed.`,
		Example: `  cacheforge compare --before snap1.json --after snap2.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(opts)
		},
	}

	cmd.Flags().StringVar(&opts.before, "before", "", "Path to before snapshot JSON")
	cmd.Flags().StringVar(&opts.after, "after", "", "Path to after snapshot JSON")
	cmd.MarkFlagRequired("before")
	cmd.MarkFlagRequired("after")

	return cmd
}

func runCompare(opts *compareOptions) error {
	before, err := snapshot.Load(opts.before)
	if err != nil {
		return err
	}
	after, err := snapshot.Load(opts.after)
	if err != nil {
		return err
	}

	diff := snapshot.Diff(before, after)

	w := render.Width()
	barW := max(w-40, 10)

	fmt.Println()
	fmt.Println(render.BoxTop(w))
	fmt.Println(render.BoxRow(render.Title(" Before / After Comparison"), w))
	fmt.Println(render.BoxSep(w))

	// Token savings
	fmt.Println(render.BoxRow(render.Heading(" Token Savings"), w))
	fmt.Println(render.BoxRow(fmt.Sprintf("  Before:     %s", render.White(render.Tokens(diff.TokensBefore))), w))
	fmt.Println(render.BoxRow(fmt.Sprintf("  After:      %s", render.Green(render.Tokens(diff.TokensAfter))), w))
	switch saved := diff.Saved(); {
	case saved > 0:
		fmt.Println(render.BoxRow(fmt.Sprintf("  Saved:      %s  (%.1f%%)",
			render.Bold(render.Green(render.Tokens(saved))), diff.SavedPct()), w))
	case saved < 0:
		fmt.Println(render.BoxRow(fmt.Sprintf("  Added:      %s  (+%.1f%%)",
			render.Bold(render.Red(render.Tokens(-saved))), -diff.SavedPct()), w))
	default:
		fmt.Println(render.BoxRow("  Change:     "+render.Dim("None"), w))
	}
	fmt.Println(render.BoxEmpty(w))

	// Visual comparison
	fmt.Println(render.BoxRow(render.Heading(" Visual"), w))
	maxTokens := max(diff.TokensBefore, diff.TokensAfter, 1)
	fmt.Println(render.BoxRow(fmt.Sprintf("  Before  %s  %s",
		render.Bar(float64(diff.TokensBefore), float64(maxTokens), barW), render.Tokens(diff.TokensBefore)), w))
	fmt.Println(render.BoxRow(fmt.Sprintf("  After   %s  %s",
		render.Bar(float64(diff.TokensAfter), float64(maxTokens), barW), render.Tokens(diff.TokensAfter)), w))
	fmt.Println(render.BoxEmpty(w))

	// Efficiency
	fmt.Println(render.BoxRow(render.Heading(" Efficiency"), w))
	fmt.Println(render.BoxRow(fmt.Sprintf("  Before:     %s  (%.0f/100)", render.Grade(diff.EfficiencyBefore), diff.EfficiencyBefore), w))
	fmt.Println(render.BoxRow(fmt.Sprintf("  After:      %s  (%.0f/100)", render.Grade(diff.EfficiencyAfter), diff.EfficiencyAfter), w))
	if delta := diff.EfficiencyDelta(); delta > 0 {
		fmt.Println(render.BoxRow("  Improvement: "+render.Green(fmt.Sprintf("+%.0f points", delta)), w))
	}
	fmt.Println(render.BoxEmpty(w))

	// Issues
	fmt.Println(render.BoxRow(render.Heading(" Issues Resolved"), w))
	fmt.Println(render.BoxRow(fmt.Sprintf("  Before:  %d issues", diff.IssuesBefore), w))
	fmt.Println(render.BoxRow(fmt.Sprintf("  After:   %d issues", diff.IssuesAfter), w))
	if fixed := diff.IssuesFixed(); fixed > 0 {
		fmt.Println(render.BoxRow(fmt.Sprintf("  Fixed:   %s", render.Green(fixed)), w))
	}
	fmt.Println(render.BoxEmpty(w))

	// Per-file changes
	if len(diff.Changes) > 0 {
		fmt.Println(render.BoxSep(w))
		fmt.Println(render.BoxRow(render.Heading(" File Changes"), w))
		for _, change := range diff.Changes {
			var indicator string
			switch d := change.Delta(); {
			case d > 0:
				indicator = render.Green("-" + render.Tokens(d))
			case d < 0:
				indicator = render.Red("+" + render.Tokens(-d))
			default:
				indicator = render.Dim("=")
			}
			fmt.Println(render.BoxRow(fmt.Sprintf("  %-37s%6s → %6s  %s",
				render.Truncate(change.Name, 35), render.Tokens(change.Before), render.Tokens(change.After), indicator), w))
		}
		fmt.Println(render.BoxEmpty(w))
	}

	printFooter(w)
	fmt.Println()

	return nil
}
