package dto

import (
	"errors"
	"mime/multipart"
	"path/filepath"
)

// ExtractionRequest represents the incoming multipart request.
type ExtractionRequest struct {
	File *multipart.FileHeader `form:"file" binding:"required"`
}

// Validate performs basic validation on the request
func (r *ExtractionRequest) Validate() error {
	if r.File == nil {
		return errors.New("a document file is required")
	}
	if filepath.Ext(r.File.Filename) == "" {
		return errors.New("filename must carry an extension")
	}
	return nil
}
