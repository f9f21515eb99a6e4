package analysis

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniqueWords builds content from distinct 4-char words so no trigram ever
// repeats and no line duplicates another.
func uniqueWords(count int) string {
	words := make([]string, count)
	for i := range words {
		words[i] = fmt.Sprintf("w%03d", i)
	}
	return strings.Join(words, " ")
}

func TestAnalyze_CleanWorkspace(t *testing.T) {
	// 110 distinct words joined by spaces: 549 chars, 137 tokens. Against
	// a budget of 1000 that is 13.7%, landing on the 80-point size step.
	docs := DocumentSet{
		"A.md": NewDocument("A.md", "/ws/A.md", uniqueWords(110)),
	}

	report := Analyze(docs, 1000)
	assert.Equal(t, 137, report.TotalTokens)
	assert.Equal(t, 1000, report.Budget)
	assert.Empty(t, report.Issues)
	assert.Zero(t, report.IssueCount())
	assert.InDelta(t, 92.0, report.Efficiency, 1e-9)
	assert.InDelta(t, 13.7, report.BudgetPct(), 1e-9)
}

func TestAnalyze_CollectsIssuesPerDocument(t *testing.T) {
	dup := strings.Repeat("Q", 25)
	docs := DocumentSet{
		"clean.md": NewDocument("clean.md", "", uniqueWords(20)),
		"noisy.md": NewDocument("noisy.md", "", dup+"\nmiddle line of content here\n"+dup),
	}

	report := Analyze(docs, 200000)
	require.Contains(t, report.Issues, "noisy.md")
	assert.NotContains(t, report.Issues, "clean.md")
	assert.Equal(t, 1, report.IssueCount())
}

func TestAnalyze_DocumentsSortedByTokens(t *testing.T) {
	docs := DocumentSet{
		"small.md": NewDocument("small.md", "", uniqueWords(10)),
		"big.md":   NewDocument("big.md", "", uniqueWords(100)),
	}

	report := Analyze(docs, 200000)
	require.Len(t, report.Documents, 2)
	assert.Equal(t, "big.md", report.Documents[0].Name)
	assert.Equal(t, "small.md", report.Documents[1].Name)
}

func TestReport_BudgetPctZeroBudget(t *testing.T) {
	r := &Report{TotalTokens: 500, Budget: 0}
	assert.Zero(t, r.BudgetPct())
}

func TestCategorize(t *testing.T) {
	docs := DocumentSet{
		"SOUL.md":             NewDocument("SOUL.md", "", uniqueWords(30)),
		"MEMORY.md":           NewDocument("MEMORY.md", "", uniqueWords(20)),
		"skills/git/SKILL.md": NewDocument("skills/git/SKILL.md", "", uniqueWords(15)),
		".claude/settings.md": NewDocument(".claude/settings.md", "", uniqueWords(10)),
		"README.md":           NewDocument("README.md", "", uniqueWords(5)),
		"skills/web/SKILL.md": NewDocument("skills/web/SKILL.md", "", uniqueWords(25)),
	}

	breakdown := Categorize(docs)
	require.Len(t, breakdown, 5)

	assert.Equal(t, "System Prompts", breakdown[0].Name)
	assert.Equal(t, "Memory & State", breakdown[1].Name)
	assert.Equal(t, "Skill Definitions", breakdown[2].Name)
	assert.Equal(t, "Configuration", breakdown[3].Name)
	assert.Equal(t, "Other", breakdown[4].Name)

	require.Len(t, breakdown[2].Documents, 2)
	// Within a category documents stay in descending token order.
	assert.Equal(t, "skills/web/SKILL.md", breakdown[2].Documents[0].Name)
	assert.Equal(t, breakdown[2].Documents[0].Tokens+breakdown[2].Documents[1].Tokens, breakdown[2].Tokens)
}

func TestCategorize_EmptyCategoriesOmitted(t *testing.T) {
	docs := DocumentSet{
		"AGENTS.md": NewDocument("AGENTS.md", "", uniqueWords(10)),
	}

	breakdown := Categorize(docs)
	require.Len(t, breakdown, 1)
	assert.Equal(t, "Other", breakdown[0].Name)
}

func TestPromptDocuments(t *testing.T) {
	docs := DocumentSet{
		"SOUL.md":   NewDocument("SOUL.md", "", uniqueWords(10)),
		"CLAUDE.md": NewDocument("CLAUDE.md", "", uniqueWords(40)),
		"MEMORY.md": NewDocument("MEMORY.md", "", uniqueWords(20)),
	}

	prompts := PromptDocuments(docs)
	require.Len(t, prompts, 2)
	assert.Equal(t, "CLAUDE.md", prompts[0].Name)
	assert.Equal(t, "SOUL.md", prompts[1].Name)
}
