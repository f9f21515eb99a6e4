package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/cacheforge-ai/cacheforge-skills/internal/analysis"
	"github.com/cacheforge-ai/cacheforge-skills/internal/config"
	"github.com/cacheforge-ai/cacheforge-skills/internal/render"
	"github.com/spf13/cobra"
)

type auditToolsOptions struct {
	config string
}

// NewAuditToolsCmd creates the audit-tools command.
func NewAuditToolsCmd() *cobra.Command {
	opts := &auditToolsOptions{}

	cmd := &cobra.Command{
		Use:   "audit-tools",
		Short: "Audit tool definitions for overhead and overlap",
		Long: `Parses tool/function definitions from an agent config file, estimates
the token cost of each definition, and flags pairs of tools with similar
names or descriptions that could be consolidated.

Supports flat "tools"/"functions" lists (OpenAI style) and "mcpServers"
maps with per-server tool lists.`,
		Example: `  cacheforge audit-tools
  cacheforge audit-tools --config ~/.openclaw/openclaw.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuditTools(opts)
		},
	}

	cmd.Flags().StringVar(&opts.config, "config", "", "Agent config file with tool definitions (default: from config)")

	return cmd
}

func runAuditTools(opts *auditToolsOptions) error {
	path := opts.config
	if path == "" {
		path = config.LoadOrDefault().ToolConfig
	}

	// Missing or malformed config degrades to an empty tool list; the
	// audit itself never fails on bad input.
	var tools []analysis.ToolDefinition
	data, err := os.ReadFile(path)
	if err != nil {
		printWarning("Could not read %s: %v", path, err)
	} else {
		tools, err = analysis.ParseToolDefinitions(data)
		if err != nil {
			printWarning("Could not parse %s: %v", path, err)
		}
	}

	if len(tools) == 0 {
		printWarning("No tool definitions found in: %s", path)
		return nil
	}

	totalTokens := 0
	maxToolTokens := 1
	for _, t := range tools {
		totalTokens += t.Tokens
		if t.Tokens > maxToolTokens {
			maxToolTokens = t.Tokens
		}
	}
	overlaps := analysis.FindOverlaps(tools)

	w := render.Width()
	barW := max(w-45, 10)

	fmt.Println()
	fmt.Println(render.BoxTop(w))
	fmt.Println(render.BoxRow(render.Title(" Tool Definition Audit"), w))
	fmt.Println(render.BoxRow(render.Dim(" Config: "+path), w))
	fmt.Println(render.BoxSep(w))

	// Summary
	fmt.Println(render.BoxRow(render.Heading(" Summary"), w))
	fmt.Println(render.BoxRow(fmt.Sprintf("  Tools defined:       %s", render.Bold(len(tools))), w))
	fmt.Println(render.BoxRow(fmt.Sprintf("  Total token cost:    %s  (approx.)", render.Bold(render.Tokens(totalTokens))), w))
	fmt.Println(render.BoxRow(fmt.Sprintf("  Avg per tool:        %s", render.White(render.Tokens(totalTokens/len(tools)))), w))
	if len(overlaps) > 0 {
		fmt.Println(render.BoxRow(fmt.Sprintf("  Potential overlaps:  %s", render.Yellow(len(overlaps))), w))
	}
	fmt.Println(render.BoxEmpty(w))

	// Per-tool breakdown, heaviest first
	fmt.Println(render.BoxSep(w))
	fmt.Println(render.BoxRow(render.Heading(" Per-Tool Token Cost"), w))

	sorted := make([]analysis.ToolDefinition, len(tools))
	copy(sorted, tools)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Tokens > sorted[j].Tokens
	})
	for _, t := range sorted {
		pct := float64(t.Tokens) / float64(totalTokens) * 100
		toolBar := render.Bar(float64(t.Tokens), float64(maxToolTokens), barW)
		fmt.Println(render.BoxRow(fmt.Sprintf("  %-27s%s  %6s  (%.0f%%)",
			render.Truncate(t.Name, 25), toolBar, render.Tokens(t.Tokens), pct), w))
	}
	fmt.Println(render.BoxEmpty(w))

	// Overlaps
	if len(overlaps) > 0 {
		fmt.Println(render.BoxSep(w))
		fmt.Println(render.BoxRow(render.Bold(render.Yellow(" Potential Overlaps")), w))
		for _, pair := range overlaps {
			fmt.Println(render.BoxRow(fmt.Sprintf("  %s %s  %s  %s",
				warning("⚠"), pair.ToolA, render.Dim("↔"), pair.ToolB), w))
			fmt.Println(render.BoxRow("    "+render.Dim(string(pair.Reason)), w))
		}
		fmt.Println(render.BoxEmpty(w))
	}

	// Recommendations
	fmt.Println(render.BoxSep(w))
	fmt.Println(render.BoxRow(render.Heading(" Recommendations"), w))
	for i, rec := range analysis.AuditRecommend(tools, overlaps) {
		fmt.Println(render.BoxRow(fmt.Sprintf("  %s %s", render.Dim(fmt.Sprintf("%d.", i+1)), rec.Text), w))
	}
	fmt.Println(render.BoxEmpty(w))

	printFooter(w)
	fmt.Println()

	return nil
}
