package usecase

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v4"
	"github.com/jonboulle/clockwork"

	"github.com/nkostic/transferhub/internal/domain"
)

// TransferUseCase orchestrates player transfers: it validates the player
// and both teams against their directories, derives the old team from the
// ledger, computes the contract fee and appends the new record.
type TransferUseCase struct {
	txManager    TransactionManager
	transferRepo TransferRepository
	outboxRepo   OutboxRepository
	players      PlayerDirectory
	teams        TeamDirectory
	idGen        IDGenerator
	clock        clockwork.Clock
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(
	txManager TransactionManager,
	transferRepo TransferRepository,
	outboxRepo OutboxRepository,
	players PlayerDirectory,
	teams TeamDirectory,
	idGen IDGenerator,
	clock clockwork.Clock,
) *TransferUseCase {
	return &TransferUseCase{
		txManager:    txManager,
		transferRepo: transferRepo,
		outboxRepo:   outboxRepo,
		players:      players,
		teams:        teams,
		idGen:        idGen,
		clock:        clock,
	}
}

// CreateTransferInput represents input for creating a transfer.
type CreateTransferInput struct {
	PlayerID  int64
	NewTeamID int64
	// Commission is an integer percentage applied on top of the base fee.
	// The 1-10 range is a request-boundary rule; the formula applies any
	// value it is given.
	Commission int64
}

// GetPlayerTeams returns the distinct set of team ids a player has ever
// been transferred to. A player with no recorded transfers yields an
// empty set. The player must exist in the Player Directory.
func (uc *TransferUseCase) GetPlayerTeams(ctx context.Context, playerID int64) ([]int64, error) {
	if _, err := uc.players.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	transfers, err := uc.transferRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]bool, len(transfers))
	teamIDs := make([]int64, 0, len(transfers))

	for _, t := range transfers {
		if !seen[t.NewTeamID] {
			seen[t.NewTeamID] = true
			teamIDs = append(teamIDs, t.NewTeamID)
		}
	}

	return teamIDs, nil
}

// CreateTransfer records a player's move to a new team.
//
// The pipeline is read-remote, read-local, write-local-last: every remote
// check is read-only and the single ledger append happens at the end, so
// any failure leaves the ledger untouched. Concurrent transfers for the
// same player are serialized by the conditional append: the record used
// for old-team derivation must still be the latest at write time, and a
// lost race re-runs the pipeline.
func (uc *TransferUseCase) CreateTransfer(ctx context.Context, input CreateTransferInput) (*domain.Transfer, error) {
	player, err := uc.players.GetPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	var transfer *domain.Transfer

	operation := func() error {
		t, err := uc.attemptTransfer(ctx, player, input)
		if err != nil {
			if errors.Is(err, domain.ErrTransferConflict) {
				return err
			}

			return backoff.Permanent(err)
		}

		transfer = t

		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = appendRetryInterval

	err = backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(b, maxAppendRetries), ctx))
	if err != nil {
		return nil, err
	}

	return transfer, nil
}

func (uc *TransferUseCase) attemptTransfer(ctx context.Context, player *domain.Player, input CreateTransferInput) (*domain.Transfer, error) {
	// Derive the old team from the most recent record. A first-ever
	// assignment uses the new team id as sentinel.
	latest, err := uc.transferRepo.GetLatestByPlayer(ctx, player.ID)
	if err != nil {
		return nil, err
	}

	oldTeamID := input.NewTeamID

	var expectedPredecessorID *string

	if latest != nil {
		if latest.NewTeamID == input.NewTeamID {
			return nil, domain.ErrSameTeamTransfer
		}

		oldTeamID = latest.NewTeamID
		expectedPredecessorID = &latest.ID
	}

	teamIDs := []int64{input.NewTeamID}
	if oldTeamID != input.NewTeamID {
		teamIDs = append(teamIDs, oldTeamID)
	}

	if err := uc.teams.CheckTeamsExist(ctx, teamIDs); err != nil {
		return nil, err
	}

	now := uc.clock.Now().UTC()

	var months int64

	earliest, err := uc.transferRepo.GetEarliestByPlayer(ctx, player.ID)
	if err != nil {
		return nil, err
	}

	if earliest != nil {
		months = domain.MonthsBetween(earliest.CreatedAt, now)
	}

	fee := domain.ContractFee(months, domain.AgeYears(player.DateOfBirth, now), input.Commission)

	transfer := &domain.Transfer{
		ID:          uc.idGen.Generate(),
		PlayerID:    player.ID,
		OldTeamID:   oldTeamID,
		NewTeamID:   input.NewTeamID,
		ContractFee: fee,
		CreatedAt:   now,
	}

	if err := transfer.Validate(); err != nil {
		return nil, err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.transferRepo.Append(ctx, tx, transfer, expectedPredecessorID); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   transfer.ID,
		AggregateType: domain.AggregateTypeTransfer,
		EventType:     domain.EventTypeTransferCreated,
		Payload:       domain.NewTransferCreatedEvent(transfer).AsMap(),
		CreatedAt:     now,
	}

	if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return transfer, nil
}

// GetTransfer retrieves a transfer by ID.
func (uc *TransferUseCase) GetTransfer(ctx context.Context, id string) (*domain.Transfer, error) {
	return uc.transferRepo.GetByID(ctx, id)
}

// ListTransfersByPlayer lists a player's transfer history, oldest first.
func (uc *TransferUseCase) ListTransfersByPlayer(ctx context.Context, playerID int64) ([]*domain.Transfer, error) {
	return uc.transferRepo.ListByPlayer(ctx, playerID)
}
