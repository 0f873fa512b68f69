package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lenddesk/los/internal/domain/model"
)

// DocumentRepo implements port.DocumentRepository. Documents are append-only
// metadata records; the raw bytes live in blob storage.
type DocumentRepo struct {
	pool *pgxpool.Pool
}

// NewDocumentRepo creates a new repository backed by PostgreSQL.
func NewDocumentRepo(pool *pgxpool.Pool) *DocumentRepo {
	return &DocumentRepo{pool: pool}
}

// Save appends a document metadata record.
func (r *DocumentRepo) Save(ctx context.Context, doc model.Document) error {
	query := `
		INSERT INTO documents (id, application_id, document_type, file_location, upload_date)
		VALUES ($1,$2,$3,$4,$5)
	`
	_, err := r.pool.Exec(ctx, query,
		doc.ID, doc.ApplicationID, doc.DocumentType, doc.FileLocation, doc.UploadDate,
	)
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// FindByApplicationID lists all documents attached to an application in
// upload order.
func (r *DocumentRepo) FindByApplicationID(ctx context.Context, applicationID string) ([]model.Document, error) {
	query := `
		SELECT id, application_id, document_type, file_location, upload_date
		FROM documents
		WHERE application_id = $1
		ORDER BY upload_date
	`
	rows, err := r.pool.Query(ctx, query, applicationID)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var result []model.Document
	for rows.Next() {
		var doc model.Document
		if err := rows.Scan(&doc.ID, &doc.ApplicationID, &doc.DocumentType, &doc.FileLocation, &doc.UploadDate); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		result = append(result, doc)
	}
	return result, rows.Err()
}
