package usecase

import (
	"context"
	"time"

	"github.com/nkostic/transferhub/internal/domain"
)

// TransferRepository defines data access for the transfer ledger.
type TransferRepository interface {
	// Append inserts a transfer only if expectedPredecessorID still
	// identifies the player's latest record (nil meaning "no records").
	// A lost race returns domain.ErrTransferConflict and writes nothing.
	Append(ctx context.Context, tx Transaction, transfer *domain.Transfer, expectedPredecessorID *string) error
	GetByID(ctx context.Context, id string) (*domain.Transfer, error)
	ListByPlayer(ctx context.Context, playerID int64) ([]*domain.Transfer, error)
	// GetLatestByPlayer returns the player's most recent record by creation
	// time, or nil when the player has no records.
	GetLatestByPlayer(ctx context.Context, playerID int64) (*domain.Transfer, error)
	// GetEarliestByPlayer returns the player's first record by creation
	// time, or nil when the player has no records.
	GetEarliestByPlayer(ctx context.Context, playerID int64) (*domain.Transfer, error)
}

// PlayerDirectory is the remote authority for players.
type PlayerDirectory interface {
	GetPlayer(ctx context.Context, id int64) (*domain.Player, error)
}

// TeamDirectory is the remote authority for teams.
type TeamDirectory interface {
	// CheckTeamsExist returns nil when every id exists,
	// domain.ErrTeamNotFound when at least one does not.
	CheckTeamsExist(ctx context.Context, ids []int64) error
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
