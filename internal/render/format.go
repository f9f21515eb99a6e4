package render

import "fmt"

// Tokens formats a token count for humans: 1.3M, 847K, 198.
func Tokens(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// USD formats a dollar amount.
func USD(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// Truncate shortens a name for fixed-width table columns.
func Truncate(name string, maxLen int) string {
	if len(name) > maxLen {
		return name[:maxLen]
	}
	return name
}

// Grade returns a colored letter grade for an efficiency score (0-100).
func Grade(score float64) string {
	switch {
	case score >= 90:
		return Bold(Green("A+"))
	case score >= 80:
		return Green("A")
	case score >= 70:
		return Green("B")
	case score >= 60:
		return Yellow("C")
	case score >= 40:
		return Yellow("D")
	default:
		return Red("F")
	}
}
