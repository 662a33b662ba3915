package dto

// Error codes returned in the ErrorResponse envelope.
const (
	CodeFileRequired        = "FILE_REQUIRED"
	CodeUnsupportedFileType = "UNSUPPORTED_FILE_TYPE"
	CodeNoReadableContent   = "NO_READABLE_CONTENT"
	CodeIngestionFailed     = "INGESTION_FAILED"
	CodeModelCallFailed     = "MODEL_CALL_FAILED"
	CodeInternalError       = "INTERNAL_ERROR"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
