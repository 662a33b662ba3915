package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinancialQuarterHasData(t *testing.T) {
	assert.False(t, FinancialQuarter{}.HasData())
	assert.False(t, ZeroQuarter().HasData())
	assert.False(t, FinancialQuarter{Revenue: " 0 "}.HasData())
	assert.True(t, FinancialQuarter{Deductions: "150"}.HasData())
}

func TestDefaultSummary(t *testing.T) {
	summary := DefaultSummary()

	assert.Len(t, summary.Quarters, 4)
	for _, key := range QuarterKeys {
		assert.Equal(t, ZeroQuarter(), summary.Quarters[key])
	}
	assert.Equal(t, "Not found", summary.Overall.CompanyName)
	assert.Equal(t, "Not found", summary.Overall.Country)
	assert.Equal(t, "0", summary.Overall.FinalTaxOwed)
}
