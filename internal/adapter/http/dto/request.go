package dto

import (
	"errors"

	"github.com/nkostic/transferhub/internal/usecase"
)

// CreateTransferRequest represents a request to create a transfer.
type CreateTransferRequest struct {
	PlayerID   int64 `json:"player_id"`
	NewTeamID  int64 `json:"new_team_id"`
	Commission int64 `json:"commission"`
}

// Validate enforces the request contract. The commission band is a
// boundary rule: the orchestrator itself applies whatever it is given.
func (r *CreateTransferRequest) Validate() error {
	if r.PlayerID <= 0 {
		return errors.New("player_id is required")
	}

	if r.NewTeamID <= 0 {
		return errors.New("new_team_id is required")
	}

	if r.Commission < 1 || r.Commission > 10 {
		return errors.New("commission must be between 1 and 10")
	}

	return nil
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransferRequest) ToUseCaseInput() usecase.CreateTransferInput {
	return usecase.CreateTransferInput{
		PlayerID:   r.PlayerID,
		NewTeamID:  r.NewTeamID,
		Commission: r.Commission,
	}
}
