package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "€1,234", FormatCurrency("1234.3"))
	assert.Equal(t, "€0", FormatCurrency("not a number"))
	assert.Equal(t, "€0", FormatCurrency(""))
	assert.Equal(t, "-€2,000", FormatCurrency("(2,000)"))
	assert.Equal(t, "€1,234,568", FormatCurrency("1234567.89"))
	assert.Equal(t, "€500", FormatCurrency("500"))
}

func TestResultsTable(t *testing.T) {
	data := map[string]string{
		"company_name":       "Acme BV",
		"country":            "Netherlands",
		"total_revenue":      "400000",
		"total_expenses":     "150000",
		"depreciation":       "20000",
		"deductions":         "10000",
		"net_taxable_income": "220000",
		"final_tax_owed":     "43160",
	}

	rows := ResultsTable(data)

	assert.Len(t, rows, 8)
	assert.Equal(t, ResultRow{Field: "Company Name", Value: "Acme BV"}, rows[0])
	assert.Equal(t, ResultRow{Field: "Country", Value: "Netherlands"}, rows[1])
	assert.Equal(t, ResultRow{Field: "Total Revenue", Value: "€400,000"}, rows[2])
	assert.Equal(t, ResultRow{Field: "Final Tax Owed", Value: "€43,160"}, rows[7])
}

func TestResultsTableMissingFields(t *testing.T) {
	rows := ResultsTable(map[string]string{})

	assert.Equal(t, "Not found", rows[0].Value)
	assert.Equal(t, "Not found", rows[1].Value)
	for _, row := range rows[2:] {
		assert.Equal(t, "€0", row.Value)
	}
}

func TestResultsTableIdempotent(t *testing.T) {
	data := map[string]string{
		"company_name":  "Acme BV",
		"total_revenue": "12345",
	}

	first := ResultsTable(data)
	second := ResultsTable(data)

	assert.Equal(t, first, second)
}
