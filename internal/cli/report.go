package cli

import (
	"fmt"
	"strings"

	"github.com/cacheforge-ai/cacheforge-skills/internal/analysis"
	"github.com/cacheforge-ai/cacheforge-skills/internal/render"
	"github.com/cacheforge-ai/cacheforge-skills/internal/workspace"
	"github.com/spf13/cobra"
)

type reportOptions struct {
	workspace string
	budget    int
	model     string
}

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a comprehensive context engineering report",
		Long: `Produces a full context health report: token distribution by category
(system prompts, memory, skills, configuration), per-prompt compression
analysis, and memory file density.`,
		Example: `  cacheforge report
  cacheforge report --workspace ~/.openclaw/workspace --budget 128000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(opts)
		},
	}

	addScanFlags(cmd, &opts.workspace, &opts.budget, &opts.model)

	return cmd
}

func runReport(opts *reportOptions) error {
	ws, budget, err := resolveScanTarget(opts.workspace, opts.budget, opts.model)
	if err != nil {
		return err
	}

	docs, err := workspace.Scan(ws)
	if err != nil {
		return err
	}

	report := analysis.Analyze(docs, budget)
	categories := analysis.Categorize(docs)

	w := render.Width()
	barW := max(w-40, 10)
	budgetPct := report.BudgetPct()

	fmt.Println()
	fmt.Println(render.BoxTop(w))
	fmt.Println(render.BoxRow(render.Title(" Context Engineering Report"), w))
	fmt.Println(render.BoxRow(render.Dim(" Workspace: "+ws), w))
	fmt.Println(render.BoxSep(w))

	// Overall health
	fmt.Println(render.BoxRow(render.Heading(" Context Health"), w))
	fmt.Println(render.BoxEmpty(w))
	fmt.Println(render.BoxRow(fmt.Sprintf("  %-20s%s", "Efficiency", render.Grade(report.Efficiency)), w))
	fmt.Println(render.BoxRow(fmt.Sprintf("  %-20s%.1f%%", "Budget Usage", budgetPct), w))
	fmt.Println(render.BoxRow(fmt.Sprintf("  %-20s%d", "Files", len(report.Documents)), w))
	fmt.Println(render.BoxRow(fmt.Sprintf("  %-20s%s", "Total Tokens", render.Tokens(report.TotalTokens)), w))
	fmt.Println(render.BoxEmpty(w))
	fmt.Println(render.BoxRow(fmt.Sprintf("  Budget  %s  %.1f%%", render.PctBar(budgetPct, barW), budgetPct), w))
	fmt.Println(render.BoxEmpty(w))

	// Category breakdown
	fmt.Println(render.BoxSep(w))
	fmt.Println(render.BoxRow(render.Heading(" Token Distribution by Category"), w))
	fmt.Println(render.BoxRow(render.Rule(w), w))

	maxCatTokens := 1
	for _, cat := range categories {
		if cat.Tokens > maxCatTokens {
			maxCatTokens = cat.Tokens
		}
	}
	for _, cat := range categories {
		catPct := 0.0
		if report.TotalTokens > 0 {
			catPct = float64(cat.Tokens) / float64(report.TotalTokens) * 100
		}
		catBar := render.Bar(float64(cat.Tokens), float64(maxCatTokens), barW)
		fmt.Println(render.BoxRow(fmt.Sprintf("  %-22s%s  %6s  (%.0f%%)",
			cat.Name, catBar, render.Tokens(cat.Tokens), catPct), w))
		for _, doc := range cat.Documents {
			fmt.Println(render.BoxRow(fmt.Sprintf("    %-32s%6s",
				render.Dim(doc.Name), render.Tokens(doc.Tokens)), w))
		}
	}
	fmt.Println(render.BoxEmpty(w))

	// System prompt analysis
	prompts := analysis.PromptDocuments(docs)
	if len(prompts) > 0 {
		fmt.Println(render.BoxSep(w))
		fmt.Println(render.BoxRow(render.Heading(" System Prompt Analysis"), w))
		for _, doc := range prompts {
			issues := report.Issues[doc.Name]
			lines := strings.Count(doc.Content, "\n") + 1
			compression := float64(max(0, 100-len(issues)*10))
			fmt.Println(render.BoxRow("  "+render.Cyan(doc.Name), w))
			fmt.Println(render.BoxRow(fmt.Sprintf("    Tokens: %s  |  Lines: %d  |  Compression: %s",
				render.Tokens(doc.Tokens), lines, render.Grade(compression)), w))
			for i, issue := range issues {
				if i >= 3 {
					break
				}
				fmt.Println(render.BoxRow(fmt.Sprintf("    %s %s", warning("⚠"), issue.Detail), w))
			}
		}
		fmt.Println(render.BoxEmpty(w))
	}

	// Memory analysis
	if mem, ok := docs["MEMORY.md"]; ok {
		fmt.Println(render.BoxSep(w))
		fmt.Println(render.BoxRow(render.Heading(" Memory File Analysis"), w))
		memLines := strings.Split(mem.Content, "\n")
		nonEmpty := 0
		for _, line := range memLines {
			if strings.TrimSpace(line) != "" {
				nonEmpty++
			}
		}
		fmt.Println(render.BoxRow(fmt.Sprintf("  Size:       %s tokens (%d lines)",
			render.Tokens(mem.Tokens), len(memLines)), w))
		fmt.Println(render.BoxRow(fmt.Sprintf("  Density:    %d%% non-empty lines",
			nonEmpty*100/max(len(memLines), 1)), w))
		if mem.Tokens > 2000 {
			fmt.Println(render.BoxRow(fmt.Sprintf("  %s Memory file is large, consider pruning stale entries", warning("⚠")), w))
		}
		if mem.Tokens > 5000 {
			fmt.Println(render.BoxRow(fmt.Sprintf("  %s Memory file exceeds 5K tokens: significant context overhead", errorIcon), w))
		}
		fmt.Println(render.BoxEmpty(w))
	}

	printFooter(w)
	fmt.Println()

	return nil
}
