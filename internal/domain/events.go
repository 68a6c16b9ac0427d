package domain

import "time"

// Event types
const (
	EventTypeTransferCreated = "transfer.created"
)

// Aggregate types
const (
	AggregateTypeTransfer = "transfer"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// TransferCreatedEvent payload
type TransferCreatedEvent struct {
	TransferID  string `json:"transfer_id"`
	PlayerID    int64  `json:"player_id"`
	OldTeamID   int64  `json:"old_team_id"`
	NewTeamID   int64  `json:"new_team_id"`
	ContractFee string `json:"contract_fee"`
}

// NewTransferCreatedEvent builds the payload for a freshly appended
// transfer.
func NewTransferCreatedEvent(t *Transfer) TransferCreatedEvent {
	return TransferCreatedEvent{
		TransferID:  t.ID,
		PlayerID:    t.PlayerID,
		OldTeamID:   t.OldTeamID,
		NewTeamID:   t.NewTeamID,
		ContractFee: t.ContractFee.String(),
	}
}

// AsMap renders the payload in the outbox event's generic form.
func (e TransferCreatedEvent) AsMap() map[string]any {
	return map[string]any{
		"transfer_id":  e.TransferID,
		"player_id":    e.PlayerID,
		"old_team_id":  e.OldTeamID,
		"new_team_id":  e.NewTeamID,
		"contract_fee": e.ContractFee,
	}
}
