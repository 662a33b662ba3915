package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatCurrency renders an amount string as a euro display value:
// thousands-separated, no decimals, minus sign ahead of the symbol.
// Unparseable amounts render as "€0".
func FormatCurrency(amount string) string {
	num := CleanNumericValue(amount)
	formatted := "€" + groupThousands(int64(math.Round(math.Abs(num))))
	if num < 0 {
		return "-" + formatted
	}
	return formatted
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(groups, ",")
}

// ResultRow is one Field/Value line of the display table.
type ResultRow struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

var displayFields = []string{
	"total_revenue", "total_expenses", "depreciation", "deductions",
	"net_taxable_income", "final_tax_owed",
}

// ResultsTable converts a flat financial-data mapping into a two-column
// display table, company name and country first. Pure: the same input
// always yields the same rows.
func ResultsTable(financialData map[string]string) []ResultRow {
	rows := []ResultRow{
		{Field: "Company Name", Value: valueOr(financialData["company_name"], "Not found")},
		{Field: "Country", Value: valueOr(financialData["country"], "Not found")},
	}
	for _, key := range displayFields {
		rows = append(rows, ResultRow{Field: fieldLabel(key), Value: FormatCurrency(financialData[key])})
	}
	return rows
}

func fieldLabel(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func valueOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
