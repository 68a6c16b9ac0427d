package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/nkostic/transferhub/internal/domain"
	"github.com/nkostic/transferhub/internal/infrastructure/postgres/generated"
	"github.com/nkostic/transferhub/internal/usecase"
)

// TransferRepository implements usecase.TransferRepository.
type TransferRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewTransferRepository creates a new TransferRepository.
func NewTransferRepository(pool *pgxpool.Pool) *TransferRepository {
	return &TransferRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Append inserts a transfer if expectedPredecessorID still identifies the
// player's latest record. A transaction-scoped advisory lock keyed on the
// player serializes concurrent appends so the predecessor check is
// authoritative; a stale predecessor returns domain.ErrTransferConflict.
func (r *TransferRepository) Append(ctx context.Context, tx usecase.Transaction, transfer *domain.Transfer, expectedPredecessorID *string) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	if err := queries.AcquirePlayerAppendLock(ctx, transfer.PlayerID); err != nil {
		return err
	}

	_, err := queries.AppendTransfer(ctx, generated.AppendTransferParams{
		ID:                    transfer.ID,
		PlayerID:              transfer.PlayerID,
		OldTeamID:             transfer.OldTeamID,
		NewTeamID:             transfer.NewTeamID,
		ContractFee:           decimalToNumeric(transfer.ContractFee),
		CreatedAt:             timeToPgTimestamptz(transfer.CreatedAt),
		ExpectedPredecessorID: expectedPredecessorID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTransferConflict
		}

		return err
	}

	return nil
}

// GetByID retrieves a transfer by ID.
func (r *TransferRepository) GetByID(ctx context.Context, id string) (*domain.Transfer, error) {
	row, err := r.queries.GetTransferByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransferNotFound
		}

		return nil, err
	}

	return rowToTransfer(row), nil
}

// ListByPlayer lists a player's transfers, oldest first.
func (r *TransferRepository) ListByPlayer(ctx context.Context, playerID int64) ([]*domain.Transfer, error) {
	rows, err := r.queries.ListTransfersByPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	transfers := make([]*domain.Transfer, 0, len(rows))
	for _, row := range rows {
		transfers = append(transfers, rowToTransfer(row))
	}

	return transfers, nil
}

// GetLatestByPlayer returns the player's most recent transfer, or nil when
// the player has none.
func (r *TransferRepository) GetLatestByPlayer(ctx context.Context, playerID int64) (*domain.Transfer, error) {
	row, err := r.queries.GetLatestTransferByPlayer(ctx, playerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return rowToTransfer(row), nil
}

// GetEarliestByPlayer returns the player's first transfer, or nil when the
// player has none.
func (r *TransferRepository) GetEarliestByPlayer(ctx context.Context, playerID int64) (*domain.Transfer, error) {
	row, err := r.queries.GetEarliestTransferByPlayer(ctx, playerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return rowToTransfer(row), nil
}

func rowToTransfer(row generated.Transfer) *domain.Transfer {
	return &domain.Transfer{
		ID:          row.ID,
		PlayerID:    row.PlayerID,
		OldTeamID:   row.OldTeamID,
		NewTeamID:   row.NewTeamID,
		ContractFee: numericToDecimal(row.ContractFee),
		CreatedAt:   row.CreatedAt.Time,
	}
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
