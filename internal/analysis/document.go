package analysis

import "sort"

// Document is one named unit of text contributing to the context budget.
// Tokens is derived from Content and is never authoritative.
type Document struct {
	Name    string
	Path    string // opaque origin label, not interpreted here
	Content string
	Tokens  int
}

// NewDocument creates a Document with its token estimate filled in.
func NewDocument(name, path, content string) Document {
	return Document{
		Name:    name,
		Path:    path,
		Content: content,
		Tokens:  EstimateTokens(content),
	}
}

// DocumentSet maps document name to document. Names are unique; the set is
// built once per analysis run and treated as immutable afterwards.
type DocumentSet map[string]Document

// TotalTokens sums the estimated tokens of every document in the set.
func (s DocumentSet) TotalTokens() int {
	total := 0
	for _, d := range s {
		total += d.Tokens
	}
	return total
}

// Sorted returns the documents ordered by descending token count, ties
// broken by name. Display order is re-derived here, never carried over
// from scan order.
func (s DocumentSet) Sorted() []Document {
	docs := make([]Document, 0, len(s))
	for _, d := range s {
		docs = append(docs, d)
	}
	sort.Slice(docs, func(i, j int) bool {
		if docs[i].Tokens != docs[j].Tokens {
			return docs[i].Tokens > docs[j].Tokens
		}
		return docs[i].Name < docs[j].Name
	})
	return docs
}
