package utils

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// NormalizeCategory converts a category label to lowercase for storage consistency
func NormalizeCategory(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// FormatCategoryForDisplay converts a normalized category to title case for display
func FormatCategoryForDisplay(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	name = strings.ToLower(name)
	return strings.ToUpper(string(name[0])) + name[1:]
}

// NormalizeCategories converts a slice of category labels to lowercase
func NormalizeCategories(names []string) []string {
	normalized := make([]string, len(names))
	for i, name := range names {
		normalized[i] = NormalizeCategory(name)
	}
	return normalized
}

// FormatMoney renders a monetary value with the currency glyph and exactly
// two decimals. NaN and negative values render as zero rather than
// propagating an invalid display string.
func FormatMoney(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		amount = 0
	}
	return fmt.Sprintf("%s%.2f", CurrencyGlyph, amount)
}

// CleanFileName removes invalid characters from filename
func CleanFileName(filename string) string {
	reg := regexp.MustCompile(`[<>:"/\\|?*]`)
	cleaned := reg.ReplaceAllString(filename, "_")

	cleaned = strings.TrimSpace(cleaned)
	cleaned = regexp.MustCompile(`\s+`).ReplaceAllString(cleaned, "_")

	return cleaned
}
