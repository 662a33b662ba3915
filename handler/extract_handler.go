package handler

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krishna2323777/tax-analyser-final/dto"
	"github.com/krishna2323777/tax-analyser-final/service"
)

type ExtractHandler struct {
	ingestService  *service.IngestService
	extractService *service.ExtractService
}

func NewExtractHandler(ingestService *service.IngestService, extractService *service.ExtractService) *ExtractHandler {
	return &ExtractHandler{
		ingestService:  ingestService,
		extractService: extractService,
	}
}

// ExtractFinancials handles the POST /tax/extract endpoint
func (h *ExtractHandler) ExtractFinancials(c *gin.Context) {
	log.Println("Received tax extraction request")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, dto.CodeFileRequired, "A document file is required", err)
		return
	}

	request := &dto.ExtractionRequest{File: fileHeader}
	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, dto.CodeFileRequired, err.Error(), err)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, dto.CodeIngestionFailed, "Failed to open uploaded file", err)
		return
	}
	defer f.Close()

	fileBytes, err := io.ReadAll(f)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, dto.CodeIngestionFailed, "Failed to read uploaded file", err)
		return
	}

	log.Printf("Processing document %s (%d bytes)", fileHeader.Filename, len(fileBytes))

	extracted, err := h.ingestService.IngestDocument(fileBytes, fileHeader.Filename)
	if err != nil {
		h.handleIngestionError(c, err)
		return
	}

	summary, err := h.extractService.ExtractFinancialData(c.Request.Context(), extracted)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, dto.CodeModelCallFailed, "Failed to analyse document", err)
		return
	}

	log.Println("Tax extraction completed successfully")
	c.JSON(http.StatusOK, summary)
}

// handleIngestionError maps ingestion failures to user-visible 400s.
func (h *ExtractHandler) handleIngestionError(c *gin.Context, err error) {
	var ingestionErr *dto.IngestionError

	switch {
	case errors.Is(err, dto.ErrUnsupportedFileType):
		h.sendError(c, http.StatusBadRequest, dto.CodeUnsupportedFileType, err.Error(), err)
	case errors.Is(err, dto.ErrNoReadableContent):
		h.sendError(c, http.StatusBadRequest, dto.CodeNoReadableContent, err.Error(), err)
	case errors.As(err, &ingestionErr):
		h.sendError(c, http.StatusBadRequest, dto.CodeIngestionFailed, ingestionErr.Error(), err)
	default:
		h.sendError(c, http.StatusInternalServerError, dto.CodeInternalError, "Failed to ingest document", err)
	}
}

// sendError sends a structured error response
func (h *ExtractHandler) sendError(c *gin.Context, statusCode int, code, message string, err error) {
	if err != nil {
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   code,
		Message: message,
		Code:    statusCode,
	})
}
