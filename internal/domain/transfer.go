package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer represents a player's move from one team to another.
// Records are immutable once appended to the ledger: a player's current
// team is always the NewTeamID of their most recent record.
type Transfer struct {
	ID          string
	PlayerID    int64
	OldTeamID   int64
	NewTeamID   int64
	ContractFee decimal.Decimal
	CreatedAt   time.Time
}

// Validate validates a transfer before it is appended.
func (t *Transfer) Validate() error {
	if t.PlayerID <= 0 || t.OldTeamID <= 0 || t.NewTeamID <= 0 {
		return ErrInvalidID
	}

	if t.ContractFee.IsNegative() {
		return ErrNegativeFee
	}

	return nil
}

// IsFirst reports whether this record is a player's first assignment.
// The ledger marks those with OldTeamID equal to NewTeamID.
func (t *Transfer) IsFirst() bool {
	return t.OldTeamID == t.NewTeamID
}
