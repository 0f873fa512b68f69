package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lenddesk/los/internal/domain/valueobject"
)

// Document is an uploaded file's metadata. Created on upload, never mutated
// or deleted; the raw bytes live in blob storage at FileLocation.
type Document struct {
	ID            string
	ApplicationID string
	DocumentType  string
	FileLocation  string
	UploadDate    time.Time
}

// NewDocument validates and builds a document record with a generated ID.
func NewDocument(applicationID, documentType, fileLocation string, now time.Time) (Document, error) {
	if applicationID == "" {
		return Document{}, valueobject.NewValidationError("application ID is required")
	}
	if documentType == "" {
		return Document{}, valueobject.NewValidationError("document type is required")
	}
	if fileLocation == "" {
		return Document{}, valueobject.NewValidationError("file location is required")
	}
	return Document{
		ID:            uuid.New().String(),
		ApplicationID: applicationID,
		DocumentType:  documentType,
		FileLocation:  fileLocation,
		UploadDate:    now,
	}, nil
}
