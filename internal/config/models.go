package config

// DefaultBudget is the fallback context window when no model is named.
const DefaultBudget = 200_000

// modelContextWindows maps known model names to their context window size.
var modelContextWindows = map[string]int{
	"claude-3-opus":     200_000,
	"claude-3.5-sonnet": 200_000,
	"claude-3-haiku":    200_000,
	"gpt-4-turbo":       128_000,
	"gpt-4o":            128_000,
	"gpt-4":             8_192,
	"gpt-3.5-turbo":     16_385,
}

// BudgetForModel returns the context window for a known model name.
func BudgetForModel(model string) (int, bool) {
	budget, ok := modelContextWindows[model]
	return budget, ok
}

// KnownModels returns the model names with known context windows.
func KnownModels() []string {
	models := make([]string, 0, len(modelContextWindows))
	for m := range modelContextWindows {
		models = append(models, m)
	}
	return models
}
