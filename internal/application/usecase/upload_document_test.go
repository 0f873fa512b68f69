package usecase_test

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenddesk/los/internal/application/dto"
	"github.com/lenddesk/los/internal/application/usecase"
	"github.com/lenddesk/los/internal/domain/event"
	"github.com/lenddesk/los/internal/domain/model"
	"github.com/lenddesk/los/internal/domain/valueobject"
)

type uploadDeps struct {
	appRepo   *mockApplicationRepository
	docRepo   *mockDocumentRepository
	store     *mockDocumentStore
	publisher *mockEventPublisher
}

func newUploadDeps() *uploadDeps {
	return &uploadDeps{
		appRepo: &mockApplicationRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.LoanApplication, error) {
				return applicationWithStatus(valueobject.ApplicationStatusSubmitted, decimal.NewFromInt(120_000)), nil
			},
		},
		docRepo:   &mockDocumentRepository{},
		store:     &mockDocumentStore{},
		publisher: &mockEventPublisher{},
	}
}

func (d *uploadDeps) useCase() *usecase.UploadDocumentUseCase {
	return usecase.NewUploadDocumentUseCase(d.appRepo, d.docRepo, d.store, d.publisher)
}

func uploadRequest() dto.UploadDocumentRequest {
	return dto.UploadDocumentRequest{
		ApplicationID: "app-001",
		DocumentType:  "TAX_RETURN",
		FileContent:   base64.StdEncoding.EncodeToString([]byte("2024 tax return")),
	}
}

func TestUploadDocument_Success(t *testing.T) {
	deps := newUploadDeps()

	resp, err := deps.useCase().Execute(context.Background(), uploadRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "app-001", resp.ApplicationID)
	assert.Equal(t, "TAX_RETURN", resp.DocumentType)
	assert.True(t, strings.HasPrefix(resp.FileLocation, "app-001/"))

	require.Len(t, deps.store.storedKeys, 1)
	require.Len(t, deps.docRepo.savedDocs, 1)
	assert.Equal(t, resp.FileLocation, deps.docRepo.savedDocs[0].FileLocation)

	require.Len(t, deps.publisher.publishedEvents, 1)
	uploaded, ok := deps.publisher.publishedEvents[0].(event.DocumentUploaded)
	require.True(t, ok)
	assert.Equal(t, resp.ID, uploaded.DocumentID)
}

func TestUploadDocument_Validation(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		deps := newUploadDeps()
		req := uploadRequest()
		req.DocumentType = ""

		_, err := deps.useCase().Execute(context.Background(), req)
		require.Error(t, err)
		assert.True(t, valueobject.IsValidation(err))
		assert.Empty(t, deps.store.storedKeys)
	})

	t.Run("file content is not base64", func(t *testing.T) {
		deps := newUploadDeps()
		req := uploadRequest()
		req.FileContent = "not base64!!"

		_, err := deps.useCase().Execute(context.Background(), req)
		require.Error(t, err)
		assert.True(t, valueobject.IsValidation(err))
		assert.Empty(t, deps.store.storedKeys)
	})
}

func TestUploadDocument_StoreFailure(t *testing.T) {
	deps := newUploadDeps()
	deps.store.putFunc = func(_ context.Context, _, _ string, _ []byte) (string, error) {
		return "", errors.New("bucket unavailable")
	}

	_, err := deps.useCase().Execute(context.Background(), uploadRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket unavailable")
	assert.Empty(t, deps.docRepo.savedDocs)
	assert.Empty(t, deps.publisher.publishedEvents)
}
