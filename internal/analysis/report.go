package analysis

import "strings"

// Category names, in display order.
var categoryOrder = []string{
	"System Prompts",
	"Memory & State",
	"Skill Definitions",
	"Configuration",
	"Other",
}

var systemPromptNames = map[string]bool{
	"SOUL.md": true, "SYSTEM.md": true, "PERSONA.md": true, "INSTRUCTIONS.md": true,
}

var memoryNames = map[string]bool{
	"MEMORY.md": true, "CONTEXT.md": true,
}

// CategoryBreakdown groups a document set's token cost by role.
type CategoryBreakdown struct {
	Name      string
	Documents []Document // descending token order
	Tokens    int
}

// Categorize buckets documents by their role in the agent's context.
// Empty categories are omitted; order is fixed for display.
func Categorize(docs DocumentSet) []CategoryBreakdown {
	buckets := make(map[string][]Document)
	for _, doc := range docs.Sorted() {
		buckets[categoryFor(doc.Name)] = append(buckets[categoryFor(doc.Name)], doc)
	}

	var out []CategoryBreakdown
	for _, name := range categoryOrder {
		items := buckets[name]
		if len(items) == 0 {
			continue
		}
		tokens := 0
		for _, d := range items {
			tokens += d.Tokens
		}
		out = append(out, CategoryBreakdown{Name: name, Documents: items, Tokens: tokens})
	}
	return out
}

func categoryFor(name string) string {
	switch {
	case systemPromptNames[name]:
		return "System Prompts"
	case memoryNames[name]:
		return "Memory & State"
	case strings.HasPrefix(name, "skills/"):
		return "Skill Definitions"
	case strings.HasPrefix(name, "."):
		return "Configuration"
	default:
		return "Other"
	}
}

// PromptDocuments returns the system-prompt documents present in the set,
// CLAUDE.md included, in descending token order.
func PromptDocuments(docs DocumentSet) []Document {
	var out []Document
	for _, doc := range docs.Sorted() {
		if systemPromptNames[doc.Name] || doc.Name == "CLAUDE.md" {
			out = append(out, doc)
		}
	}
	return out
}
