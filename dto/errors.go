package dto

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type; allowed: pdf, csv, xlsx")
	ErrNoReadableContent   = errors.New("no readable content found in document")
)

// IngestionError wraps a parsing-library failure (corrupt PDF, malformed
// CSV/XLSX). Surfaced to the caller as a 400 with the original cause.
type IngestionError struct {
	Err error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("document ingestion failed: %v", e.Err)
}

func (e *IngestionError) Unwrap() error {
	return e.Err
}

// ModelCallError wraps a failed model invocation (auth, rate limit,
// transport). Surfaced as a 500; never retried.
type ModelCallError struct {
	Err error
}

func (e *ModelCallError) Error() string {
	return fmt.Sprintf("model call failed: %v", e.Err)
}

func (e *ModelCallError) Unwrap() error {
	return e.Err
}
