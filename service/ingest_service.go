package service

import (
	"bytes"
	"encoding/csv"
	"log"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/krishna2323777/tax-analyser-final/client"
	"github.com/krishna2323777/tax-analyser-final/dto"
)

// Rows mentioning any of these survive the CSV/XLSX keyword filter and form
// the prose text handed to the model.
var financialKeywords = []string{
	"revenue", "sales", "expenses", "depreciation", "deductions",
	"net income", "profit", "loss", "tax",
}

// IngestService turns raw file bytes into the two text blobs the extraction
// pipeline works with: prose text and a serialized view of tabular data.
type IngestService struct {
	pdfProcessor    PDFProcessor
	tesseractClient *client.TesseractClient
}

func NewIngestService(pdfProcessor PDFProcessor, tesseractClient *client.TesseractClient) *IngestService {
	return &IngestService{
		pdfProcessor:    pdfProcessor,
		tesseractClient: tesseractClient,
	}
}

// IngestDocument classifies the file by extension and extracts its content.
// Returns ErrUnsupportedFileType for unknown extensions and
// ErrNoReadableContent when extraction produced nothing usable, so the
// model is never invoked on empty input.
func (s *IngestService) IngestDocument(data []byte, filename string) (*dto.ExtractedText, error) {
	var extracted *dto.ExtractedText
	var err error

	// Tabular formats gate on the keyword-filtered prose: a spreadsheet
	// without a single financial row has nothing worth sending downstream.
	tabular := false

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		extracted, err = s.ingestPDF(data)
	case ".csv":
		extracted, err = s.ingestCSV(data)
		tabular = true
	case ".xlsx":
		extracted, err = s.ingestXLSX(data)
		tabular = true
	default:
		return nil, dto.ErrUnsupportedFileType
	}

	if err != nil {
		return nil, &dto.IngestionError{Err: err}
	}

	if strings.TrimSpace(extracted.Text) == "" {
		if tabular || strings.TrimSpace(extracted.TablesText) == "" {
			return nil, dto.ErrNoReadableContent
		}
	}

	return extracted, nil
}

func (s *IngestService) ingestPDF(data []byte) (*dto.ExtractedText, error) {
	text, err := s.pdfProcessor.ExtractText(data)
	if err != nil {
		return nil, err
	}

	tablesText, err := s.pdfProcessor.ExtractTables(data)
	if err != nil {
		// Table rendering is best-effort; the prose text still goes out.
		log.Printf("PDF table extraction failed: %v", err)
		tablesText = ""
	}

	if strings.TrimSpace(text) == "" {
		log.Println("PDF has no embedded text, attempting OCR on page images")
		text = s.ocrFallback(data)
	}

	return &dto.ExtractedText{Text: text, TablesText: tablesText}, nil
}

// ocrFallback recovers text from scanned PDFs by running Tesseract over the
// extracted page images. Failures are non-fatal: an empty result simply
// leaves the no-readable-content check to fire.
func (s *IngestService) ocrFallback(data []byte) string {
	if s.tesseractClient == nil {
		return ""
	}

	images, err := s.pdfProcessor.ExtractImages(data)
	if err != nil || len(images) == 0 {
		log.Printf("failed to extract images for OCR: %v", err)
		return ""
	}

	var combined strings.Builder
	for _, img := range images {
		pageText, err := s.tesseractClient.ExtractTextFromImage(img)
		if err != nil {
			log.Printf("OCR failed for a page: %v", err)
			continue
		}
		combined.WriteString(pageText)
		combined.WriteString("\n")
	}

	return combined.String()
}

func (s *IngestService) ingestCSV(data []byte) (*dto.ExtractedText, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return extractFromRows(rows), nil
}

func (s *IngestService) ingestXLSX(data []byte) (*dto.ExtractedText, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var all [][]string
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
	}

	return extractFromRows(all), nil
}

// extractFromRows applies the keyword filter to build the prose text while
// the full table, filtered or not, becomes the tables text.
func extractFromRows(rows [][]string) *dto.ExtractedText {
	var keyRows []string
	for _, row := range rows {
		var cells []string
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				cells = append(cells, cell)
			}
		}
		if len(cells) == 0 {
			continue
		}

		rowStr := strings.Join(cells, " ")
		if containsFinancialKeyword(rowStr) {
			keyRows = append(keyRows, rowStr)
		}
	}

	return &dto.ExtractedText{
		Text:       strings.Join(keyRows, "\n"),
		TablesText: renderRows(rows),
	}
}

func containsFinancialKeyword(row string) bool {
	lower := strings.ToLower(row)
	for _, kw := range financialKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
