package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	currencyChars  = regexp.MustCompile(`[€$,%\s]`)
	numericPattern = regexp.MustCompile(`-?\d+\.?\d*`)
)

// CleanNumericValue parses a free-form monetary string into a float.
// Currency symbols, percent signs, thousands separators and whitespace are
// stripped; a parenthesized value is negative (accounting convention); the
// first signed-decimal substring wins. Never fails: any ambiguity resolves
// to 0.
func CleanNumericValue(value string) float64 {
	if value == "" || value == "0" {
		return 0
	}

	cleaned := currencyChars.ReplaceAllString(value, "")
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = "-" + cleaned[1:len(cleaned)-1]
	}

	match := numericPattern.FindString(cleaned)
	if match == "" {
		return 0
	}

	num, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return num
}
