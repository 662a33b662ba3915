package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/krishna2323777/tax-analyser-final/client"
	"github.com/krishna2323777/tax-analyser-final/dto"
	"github.com/krishna2323777/tax-analyser-final/utils"
)

// maxCombinedChars caps the user content sent to the model. A hard cost
// guard: truncation is a plain character cut with no attempt to preserve
// semantic completeness.
const maxCombinedChars = 15000

// ExtractService orchestrates the model call: prompt assembly, invocation,
// and repair of the returned JSON into the canonical summary.
type ExtractService struct {
	completions client.CompletionClient
}

func NewExtractService(completions client.CompletionClient) *ExtractService {
	return &ExtractService{
		completions: completions,
	}
}

// ExtractFinancialData turns ingested document content into a
// FinancialSummary. If the model call itself fails the error surfaces as a
// ModelCallError; once the model has responded, the caller always receives
// a well-formed summary — unparseable output degrades to the default-filled
// one.
func (s *ExtractService) ExtractFinancialData(ctx context.Context, extracted *dto.ExtractedText) (*dto.FinancialSummary, error) {
	combined := fmt.Sprintf("DOCUMENT TEXT:\n%s\n\nTABLE DATA:\n%s", extracted.Text, extracted.TablesText)
	if len(combined) > maxCombinedChars {
		combined = combined[:maxCombinedChars]
	}

	raw, err := s.completions.Complete(ctx, BuildExtractionPrompt(), combined)
	if err != nil {
		return nil, &dto.ModelCallError{Err: err}
	}

	cleaned := stripCodeFences(raw)
	if cleaned == "" {
		log.Println("model returned an empty completion, using default summary")
		return dto.DefaultSummary(), nil
	}

	summary := &dto.FinancialSummary{}
	if err := json.Unmarshal([]byte(cleaned), summary); err != nil {
		log.Printf("model returned invalid JSON: %v", err)
		return dto.DefaultSummary(), nil
	}

	repairSummary(summary)
	return summary, nil
}

// stripCodeFences removes Markdown code-fence wrapping some models add
// around their JSON output.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// repairSummary enforces the completeness invariant: all four quarters
// present with every field non-empty. When no quarter carries any real
// value, all four are synthesized from the overall totals; partially
// populated quarters are trusted and only their empty fields zero-filled.
func repairSummary(summary *dto.FinancialSummary) {
	if summary.Quarters == nil {
		summary.Quarters = make(map[string]dto.FinancialQuarter, len(dto.QuarterKeys))
	}

	hasData := false
	for _, key := range dto.QuarterKeys {
		if summary.Quarters[key].HasData() {
			hasData = true
			break
		}
	}

	if !hasData {
		quarter := quarterFromOverall(summary.Overall)
		for _, key := range dto.QuarterKeys {
			summary.Quarters[key] = quarter
		}
	} else {
		for _, key := range dto.QuarterKeys {
			q := summary.Quarters[key]
			fillEmptyFields(&q)
			summary.Quarters[key] = q
		}
	}

	fillOverall(&summary.Overall)
}

// quarterFromOverall splits each overall figure evenly across the quarters.
// Integer floor division: a remainder of up to 3 is dropped so the four
// quarters stay identical.
func quarterFromOverall(overall dto.OverallFinancials) dto.FinancialQuarter {
	return dto.FinancialQuarter{
		Revenue:          quarterShare(overall.Revenue),
		Expenditures:     quarterShare(overall.Expenditures),
		Depreciation:     quarterShare(overall.Depreciation),
		Deductions:       quarterShare(overall.Deductions),
		NetTaxableIncome: quarterShare(overall.NetTaxableIncome),
		FinalTaxOwed:     quarterShare(overall.FinalTaxOwed),
	}
}

func quarterShare(value string) string {
	total := int64(utils.CleanNumericValue(value))
	return strconv.FormatInt(total/4, 10)
}

func fillEmptyFields(q *dto.FinancialQuarter) {
	for _, field := range []*string{
		&q.Revenue, &q.Expenditures, &q.Depreciation,
		&q.Deductions, &q.NetTaxableIncome, &q.FinalTaxOwed,
	} {
		if strings.TrimSpace(*field) == "" {
			*field = "0"
		}
	}
}

func fillOverall(o *dto.OverallFinancials) {
	if strings.TrimSpace(o.CompanyName) == "" {
		o.CompanyName = "Not found"
	}
	if strings.TrimSpace(o.Country) == "" {
		o.Country = "Not found"
	}
	for _, field := range []*string{
		&o.Revenue, &o.Expenditures, &o.Depreciation,
		&o.Deductions, &o.NetTaxableIncome, &o.FinalTaxOwed,
	} {
		if strings.TrimSpace(*field) == "" {
			*field = "0"
		}
	}
}
