package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/krishna2323777/tax-analyser-final/dto"
)

func newTestIngestService() *IngestService {
	return NewIngestService(NewPDFProcessor(), nil)
}

func TestIngestCSVKeywordFilter(t *testing.T) {
	svc := newTestIngestService()
	csvData := []byte("Name,Value\nRevenue,1000\nUnrelated,5\n")

	extracted, err := svc.IngestDocument(csvData, "report.csv")

	require.NoError(t, err)
	assert.Equal(t, "Revenue 1000", extracted.Text)
	assert.Contains(t, extracted.TablesText, "Name | Value")
	assert.Contains(t, extracted.TablesText, "Revenue | 1000")
	assert.Contains(t, extracted.TablesText, "Unrelated | 5")
}

func TestIngestCSVKeywordsCaseInsensitive(t *testing.T) {
	svc := newTestIngestService()
	csvData := []byte("TOTAL SALES,9000\nDEPRECIATION,400\nnotes,hello\n")

	extracted, err := svc.IngestDocument(csvData, "Report.CSV")

	require.NoError(t, err)
	assert.Contains(t, extracted.Text, "TOTAL SALES 9000")
	assert.Contains(t, extracted.Text, "DEPRECIATION 400")
	assert.NotContains(t, extracted.Text, "notes")
}

func TestIngestCSVNoMatchingRows(t *testing.T) {
	svc := newTestIngestService()
	csvData := []byte("Name,Value\n")

	_, err := svc.IngestDocument(csvData, "header_only.csv")

	assert.ErrorIs(t, err, dto.ErrNoReadableContent)
}

func TestIngestUnsupportedExtension(t *testing.T) {
	svc := newTestIngestService()

	_, err := svc.IngestDocument([]byte("plain text"), "notes.txt")

	assert.ErrorIs(t, err, dto.ErrUnsupportedFileType)
}

func TestIngestCorruptPDF(t *testing.T) {
	svc := newTestIngestService()

	_, err := svc.IngestDocument([]byte("definitely not a pdf"), "broken.pdf")

	var ingestionErr *dto.IngestionError
	assert.ErrorAs(t, err, &ingestionErr)
}

func TestIngestXLSXKeywordFilter(t *testing.T) {
	svc := newTestIngestService()

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Name", "Value"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Revenue", "1000"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"Unrelated", "5"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	extracted, err := svc.IngestDocument(buf.Bytes(), "report.xlsx")

	require.NoError(t, err)
	assert.Equal(t, "Revenue 1000", extracted.Text)
	assert.Contains(t, extracted.TablesText, "Unrelated | 5")
}

func TestIngestMalformedXLSX(t *testing.T) {
	svc := newTestIngestService()

	_, err := svc.IngestDocument([]byte("not a spreadsheet"), "report.xlsx")

	var ingestionErr *dto.IngestionError
	assert.ErrorAs(t, err, &ingestionErr)
}

func TestRenderHeaderedTable(t *testing.T) {
	rows := [][]string{
		{"Quarter", "Revenue"},
		{"Q1", "1000"},
		{"Q2", "1200"},
	}

	rendered := renderHeaderedTable(rows)

	assert.Equal(t, "Quarter | Revenue\nQ1 | 1000\nQ2 | 1200\n", rendered)
}

func TestRenderHeaderedTableColumnMismatch(t *testing.T) {
	rows := [][]string{
		{"Quarter", "Revenue"},
		{"Q1", "1000", "extra"},
	}

	rendered := renderHeaderedTable(rows)

	assert.Contains(t, rendered, "col_1 | col_2 | col_3")
	assert.Contains(t, rendered, "Quarter | Revenue")
	assert.Contains(t, rendered, "Q1 | 1000 | extra")
}

func TestRenderHeaderedTableTooFewRows(t *testing.T) {
	assert.Equal(t, "", renderHeaderedTable([][]string{{"only", "header"}}))
	assert.Equal(t, "", renderHeaderedTable(nil))
}
