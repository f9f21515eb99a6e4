package cli

import (
	"fmt"
	"strings"

	"github.com/cacheforge-ai/cacheforge-skills/internal/analysis"
	"github.com/cacheforge-ai/cacheforge-skills/internal/config"
	"github.com/cacheforge-ai/cacheforge-skills/internal/render"
	"github.com/cacheforge-ai/cacheforge-skills/internal/snapshot"
	"github.com/cacheforge-ai/cacheforge-skills/internal/workspace"
	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	workspace string
	budget    int
	model     string
	snapshot  string
}

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze workspace context files for token usage and efficiency",
		Long: `Scans the workspace for persistent context files (SOUL.md, MEMORY.md,
installed skills, hidden config directories), estimates their token cost,
detects redundant content, and scores overall context efficiency against
the budget.

Use --snapshot to save the result for a later 'cacheforge compare'.`,
		Example: `  cacheforge analyze
  cacheforge analyze --workspace ~/.openclaw/workspace
  cacheforge analyze --model gpt-4o
  cacheforge analyze --snapshot before.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(opts)
		},
	}

	addScanFlags(cmd, &opts.workspace, &opts.budget, &opts.model)
	cmd.Flags().StringVar(&opts.snapshot, "snapshot", "", "Save analysis snapshot to FILE (for later comparison)")

	return cmd
}

// addScanFlags registers the flags shared by analyze and report.
func addScanFlags(cmd *cobra.Command, ws *string, budget *int, model *string) {
	cmd.Flags().StringVar(ws, "workspace", "", "Workspace directory (default: from config)")
	cmd.Flags().IntVar(budget, "budget", 0, "Context window token budget (default: from config or model)")
	cmd.Flags().StringVar(model, "model", "", "Resolve budget from a known model's context window")
}

// resolveScanTarget applies flag > model > config precedence.
func resolveScanTarget(ws string, budget int, model string) (string, int, error) {
	cfg := config.LoadOrDefault()

	if ws == "" {
		ws = cfg.Workspace
	}
	if budget == 0 {
		if model != "" {
			window, ok := config.BudgetForModel(model)
			if !ok {
				return "", 0, fmt.Errorf("unknown model: %s (known: %v)", model, config.KnownModels())
			}
			budget = window
		} else {
			budget = cfg.Budget
		}
	}
	return ws, budget, nil
}

func runAnalyze(opts *analyzeOptions) error {
	ws, budget, err := resolveScanTarget(opts.workspace, opts.budget, opts.model)
	if err != nil {
		return err
	}

	docs, err := workspace.Scan(ws)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		printWarning("No context files found in: %s", ws)
		fmt.Println(dim("  Looked for: " + strings.Join(workspace.WellKnownFiles, ", ")))
		return nil
	}

	report := analysis.Analyze(docs, budget)
	displayAnalysis(ws, report)

	if opts.snapshot != "" {
		snap := snapshot.FromReport(ws, report)
		if err := snapshot.Save(snap, opts.snapshot); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}
		printSuccess("Snapshot saved: %s", opts.snapshot)
	}

	return nil
}

// displayAnalysis renders the full analyze report.
func displayAnalysis(ws string, report *analysis.Report) {
	w := render.Width()
	barW := max(w-40, 10)
	budgetPct := report.BudgetPct()

	fmt.Println()
	fmt.Println(render.BoxTop(w))
	fmt.Println(render.BoxRow(render.Title(" Context Window Analysis"), w))
	fmt.Println(render.BoxRow(render.Dim(" Workspace: "+ws), w))
	fmt.Println(render.BoxSep(w))

	// Overview
	fmt.Println(render.BoxRow(render.Heading(" Overview"), w))
	fmt.Println(render.BoxRow(fmt.Sprintf("  Files scanned:     %s", render.White(len(report.Documents))), w))
	fmt.Println(render.BoxRow(fmt.Sprintf("  Total tokens:      %s  (approx.)", render.Bold(render.Tokens(report.TotalTokens))), w))
	fmt.Println(render.BoxRow(fmt.Sprintf("  Context budget:    %s", render.White(render.Tokens(report.Budget))), w))
	fmt.Println(render.BoxRow(fmt.Sprintf("  Budget used:       %s  %.1f%%", render.PctBar(budgetPct, barW), budgetPct), w))
	fmt.Println(render.BoxRow(fmt.Sprintf("  Efficiency score:  %s  (%.0f/100)", render.Grade(report.Efficiency), report.Efficiency), w))
	fmt.Println(render.BoxEmpty(w))

	// Per-file breakdown
	fmt.Println(render.BoxSep(w))
	fmt.Println(render.BoxRow(render.Heading(" File Breakdown"), w))
	fmt.Println(render.BoxRow(render.Rule(w), w))

	maxFileTokens := 1
	for _, doc := range report.Documents {
		if doc.Tokens > maxFileTokens {
			maxFileTokens = doc.Tokens
		}
	}
	for _, doc := range report.Documents {
		filePct := 0.0
		if report.TotalTokens > 0 {
			filePct = float64(doc.Tokens) / float64(report.TotalTokens) * 100
		}
		fileBar := render.Bar(float64(doc.Tokens), float64(maxFileTokens), max(barW-5, 5))
		line := fmt.Sprintf("  %-32s%s  %6s  (%.0f%%)",
			render.Truncate(doc.Name, 30), fileBar, render.Tokens(doc.Tokens), filePct)
		fmt.Println(render.BoxRow(line, w))
	}
	fmt.Println(render.BoxEmpty(w))

	// Budget visualization
	fmt.Println(render.BoxSep(w))
	fmt.Println(render.BoxRow(render.Heading(" Context Budget"), w))
	usedPct := min(budgetPct, 100)
	fmt.Println(render.BoxRow("  "+render.BudgetBar(usedPct, w-8), w))
	fmt.Println(render.BoxRow(fmt.Sprintf("  %s Static content: %.1f%%    %s Available: %.1f%%",
		render.Yellow("█"), usedPct, render.Green("█"), 100-usedPct), w))
	fmt.Println(render.BoxEmpty(w))

	// Redundancy findings
	if len(report.Issues) > 0 {
		fmt.Println(render.BoxSep(w))
		fmt.Println(render.BoxRow(render.Heading(" Optimization Opportunities"), w))
		for _, doc := range report.Documents {
			issues := report.Issues[doc.Name]
			if len(issues) == 0 {
				continue
			}
			fmt.Println(render.BoxRow("  "+render.Cyan(doc.Name), w))
			for i, issue := range issues {
				if i >= 5 {
					break
				}
				fmt.Println(render.BoxRow(fmt.Sprintf("    %s %s: %s", warning("⚠"), issue.Kind, issue.Detail), w))
			}
		}
		fmt.Println(render.BoxEmpty(w))
	}

	// Recommendations
	fmt.Println(render.BoxSep(w))
	fmt.Println(render.BoxRow(render.Heading(" Recommendations"), w))
	for i, rec := range analysis.Recommend(report) {
		if i >= 6 {
			break
		}
		savings := ""
		if rec.Savings > 0 {
			savings = render.Green(fmt.Sprintf(" (~%s tokens)", render.Tokens(rec.Savings)))
		}
		fmt.Println(render.BoxRow(fmt.Sprintf("  %s %s%s", render.Dim(fmt.Sprintf("%d.", i+1)), rec.Text, savings), w))
	}
	fmt.Println(render.BoxEmpty(w))

	printFooter(w)
	fmt.Println()
}

// printFooter closes a report box with the standard disclaimer.
func printFooter(w int) {
	fmt.Println(render.BoxSep(w))
	fmt.Println(render.BoxRow(render.Dim("  ℹ  Token estimates are approximate (~4 chars/token)"), w))
	fmt.Println(render.BoxRow(render.Dim("  Want automatic token optimization? Try CacheForge"), w))
	fmt.Println(render.BoxRow(render.Dim("  https://app.anvil-ai.io"), w))
	fmt.Println(render.BoxBottom(w))
}
