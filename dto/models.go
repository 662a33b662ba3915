package dto

import "strings"

// Quarter keys in fiscal order. Every summary returned to a caller carries
// all four, populated.
var QuarterKeys = []string{"Q1", "Q2", "Q3", "Q4"}

// FinancialQuarter holds the six extracted figures for one fiscal quarter.
// Fields are strings on purpose: the model returns placeholder values like
// "0" and "Not found" and callers receive them unchanged. Numeric
// interpretation goes through utils.CleanNumericValue.
type FinancialQuarter struct {
	Revenue          string `json:"revenue"`
	Expenditures     string `json:"expenditures"`
	Depreciation     string `json:"depreciation"`
	Deductions       string `json:"deductions"`
	NetTaxableIncome string `json:"net_taxable_income"`
	FinalTaxOwed     string `json:"final_tax_owed"`
}

// HasData reports whether the quarter carries any real value, i.e. at least
// one field that is neither empty nor "0".
func (q FinancialQuarter) HasData() bool {
	for _, v := range []string{
		q.Revenue, q.Expenditures, q.Depreciation,
		q.Deductions, q.NetTaxableIncome, q.FinalTaxOwed,
	} {
		v = strings.TrimSpace(v)
		if v != "" && v != "0" {
			return true
		}
	}
	return false
}

// OverallFinancials holds company identity plus annual totals.
type OverallFinancials struct {
	CompanyName      string `json:"company_name"`
	Country          string `json:"country"`
	Revenue          string `json:"revenue"`
	Expenditures     string `json:"expenditures"`
	Depreciation     string `json:"depreciation"`
	Deductions       string `json:"deductions"`
	NetTaxableIncome string `json:"net_taxable_income"`
	FinalTaxOwed     string `json:"final_tax_owed"`
}

// FinancialSummary is the canonical extraction result: four quarters plus
// the overall record. Built fresh per request, never persisted.
type FinancialSummary struct {
	Quarters map[string]FinancialQuarter `json:"quarters"`
	Overall  OverallFinancials           `json:"overall"`
}

// ExtractedText is the ingestion result: prose text plus a serialized view
// of any tabular data found in the document.
type ExtractedText struct {
	Text       string
	TablesText string
}

// ZeroQuarter returns a quarter with every figure set to "0".
func ZeroQuarter() FinancialQuarter {
	return FinancialQuarter{
		Revenue:          "0",
		Expenditures:     "0",
		Depreciation:     "0",
		Deductions:       "0",
		NetTaxableIncome: "0",
		FinalTaxOwed:     "0",
	}
}

// DefaultSummary returns a fully populated summary with zeroed figures and
// "Not found" text fields. Returned whenever the model output cannot be
// parsed, so callers never see a partial payload.
func DefaultSummary() *FinancialSummary {
	quarters := make(map[string]FinancialQuarter, len(QuarterKeys))
	for _, key := range QuarterKeys {
		quarters[key] = ZeroQuarter()
	}
	return &FinancialSummary{
		Quarters: quarters,
		Overall: OverallFinancials{
			CompanyName:      "Not found",
			Country:          "Not found",
			Revenue:          "0",
			Expenditures:     "0",
			Depreciation:     "0",
			Deductions:       "0",
			NetTaxableIncome: "0",
			FinalTaxOwed:     "0",
		},
	}
}
