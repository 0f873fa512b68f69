package usecase

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"

	"github.com/lenddesk/los/internal/application/dto"
	"github.com/lenddesk/los/internal/domain/event"
	"github.com/lenddesk/los/internal/domain/model"
	"github.com/lenddesk/los/internal/domain/port"
	"github.com/lenddesk/los/internal/domain/valueobject"
)

// UploadDocumentUseCase decodes an uploaded file, writes it to blob storage,
// and appends the document metadata record to the application.
type UploadDocumentUseCase struct {
	appRepo   port.LoanApplicationRepository
	docRepo   port.DocumentRepository
	store     port.DocumentStore
	publisher port.EventPublisher
}

// NewUploadDocumentUseCase wires dependencies.
func NewUploadDocumentUseCase(
	appRepo port.LoanApplicationRepository,
	docRepo port.DocumentRepository,
	store port.DocumentStore,
	publisher port.EventPublisher,
) *UploadDocumentUseCase {
	return &UploadDocumentUseCase{
		appRepo:   appRepo,
		docRepo:   docRepo,
		store:     store,
		publisher: publisher,
	}
}

// Execute stores the base64-encoded file and records its metadata.
func (uc *UploadDocumentUseCase) Execute(
	ctx context.Context,
	req dto.UploadDocumentRequest,
) (dto.DocumentResponse, error) {
	if req.ApplicationID == "" || req.DocumentType == "" || req.FileContent == "" {
		return dto.DocumentResponse{}, valueobject.NewValidationError(
			"application_id, document_type, and file_content are required")
	}

	data, err := base64.StdEncoding.DecodeString(req.FileContent)
	if err != nil {
		return dto.DocumentResponse{}, valueobject.NewValidationError("file_content is not valid base64")
	}

	app, err := uc.appRepo.FindByID(ctx, req.ApplicationID)
	if err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("find application: %w", err)
	}

	key := fmt.Sprintf("%s/%s", app.ID(), uuid.New().String())
	location, err := uc.store.Put(ctx, key, "application/octet-stream", data)
	if err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("store document: %w", err)
	}

	doc, err := model.NewDocument(app.ID(), req.DocumentType, location, nowUTC())
	if err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("create document: %w", err)
	}

	if err := uc.docRepo.Save(ctx, doc); err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("save document: %w", err)
	}

	uploaded := event.NewDocumentUploaded(app.ID(), doc.ID, doc.DocumentType, doc.FileLocation)
	if err := uc.publisher.Publish(ctx, uploaded); err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toDocumentResponse(doc), nil
}
