package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lenddesk/los/internal/domain/model"
	pkgpostgres "github.com/lenddesk/los/pkg/postgres"
)

// UnderwritingWriteRepo implements port.UnderwritingWriter. The decision
// upsert and the application save run in a single transaction, so a failed
// application save (including an optimistic-lock conflict) rolls the
// decision back.
type UnderwritingWriteRepo struct {
	pool *pgxpool.Pool
}

// NewUnderwritingWriteRepo creates a new repository backed by PostgreSQL.
func NewUnderwritingWriteRepo(pool *pgxpool.Pool) *UnderwritingWriteRepo {
	return &UnderwritingWriteRepo{pool: pool}
}

// SaveDecisionAndApplication atomically persists an evaluation outcome.
func (r *UnderwritingWriteRepo) SaveDecisionAndApplication(
	ctx context.Context,
	decision model.UnderwritingDecision,
	app model.LoanApplication,
) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := upsertDecision(ctx, tx, decision); err != nil {
			return err
		}
		return saveApplication(ctx, tx, app)
	})
}
