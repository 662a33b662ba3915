package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishna2323777/tax-analyser-final/dto"
	"github.com/krishna2323777/tax-analyser-final/service"
)

type stubCompletionClient struct {
	response string
	err      error
	calls    int
}

func (s *stubCompletionClient) Complete(_ context.Context, _, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func newTestRouter(stub *stubCompletionClient) *gin.Engine {
	gin.SetMode(gin.TestMode)

	ingestService := service.NewIngestService(service.NewPDFProcessor(), nil)
	extractService := service.NewExtractService(stub)
	extractHandler := NewExtractHandler(ingestService, extractService)

	router := gin.New()
	router.POST("/api/v1/tax/extract", extractHandler.ExtractFinancials)
	return router
}

func newUploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tax/extract", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestExtractFinancialsCSV(t *testing.T) {
	stub := &stubCompletionClient{response: `{
		"quarters": {
			"Q1": {"revenue": "1000", "expenditures": "200", "depreciation": "50", "deductions": "50", "net_taxable_income": "700", "final_tax_owed": "133"}
		},
		"overall": {"company_name": "Acme BV", "country": "Netherlands", "revenue": "4000"}
	}`}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newUploadRequest(t, "report.csv", []byte("Revenue,4000\nExpenses,800\n")))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, stub.calls)

	var summary dto.FinancialSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, "Acme BV", summary.Overall.CompanyName)
	assert.Len(t, summary.Quarters, 4)
	assert.Equal(t, "1000", summary.Quarters["Q1"].Revenue)
}

func TestExtractFinancialsUnsupportedType(t *testing.T) {
	stub := &stubCompletionClient{}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newUploadRequest(t, "notes.txt", []byte("some text")))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.CodeUnsupportedFileType, resp.Error)
	// rejected before any model call
	assert.Equal(t, 0, stub.calls)
}

func TestExtractFinancialsNoReadableContent(t *testing.T) {
	stub := &stubCompletionClient{}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newUploadRequest(t, "header_only.csv", []byte("Name,Value\n")))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.CodeNoReadableContent, resp.Error)
	assert.Equal(t, 0, stub.calls)
}

func TestExtractFinancialsModelFailure(t *testing.T) {
	stub := &stubCompletionClient{err: assert.AnError}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newUploadRequest(t, "report.csv", []byte("Revenue,4000\n")))

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.CodeModelCallFailed, resp.Error)
}

func TestExtractFinancialsMissingFile(t *testing.T) {
	router := newTestRouter(&stubCompletionClient{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tax/extract", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.CodeFileRequired, resp.Error)
}
