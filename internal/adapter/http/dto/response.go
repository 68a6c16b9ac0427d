package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nkostic/transferhub/internal/domain"
)

// TransferResponse represents a transfer in API responses.
type TransferResponse struct {
	ID          string          `json:"id"`
	PlayerID    int64           `json:"player_id"`
	OldTeamID   int64           `json:"old_team_id"`
	NewTeamID   int64           `json:"new_team_id"`
	ContractFee decimal.Decimal `json:"contract_fee"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TransferFromDomain converts domain transfer to response.
func TransferFromDomain(t *domain.Transfer) *TransferResponse {
	return &TransferResponse{
		ID:          t.ID,
		PlayerID:    t.PlayerID,
		OldTeamID:   t.OldTeamID,
		NewTeamID:   t.NewTeamID,
		ContractFee: t.ContractFee,
		CreatedAt:   t.CreatedAt,
	}
}

// TransfersFromDomain converts domain transfers to responses.
func TransfersFromDomain(transfers []*domain.Transfer) []*TransferResponse {
	result := make([]*TransferResponse, len(transfers))
	for i, t := range transfers {
		result[i] = TransferFromDomain(t)
	}
	return result
}

// PlayerTeamsResponse lists every team a player has been transferred to.
type PlayerTeamsResponse struct {
	PlayerID int64   `json:"player_id"`
	TeamIDs  []int64 `json:"team_ids"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
