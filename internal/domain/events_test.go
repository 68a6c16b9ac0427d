package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewTransferCreatedEvent(t *testing.T) {
	transfer := &Transfer{
		ID:          "tr-1",
		PlayerID:    10,
		OldTeamID:   20,
		NewTeamID:   30,
		ContractFee: decimal.RequireFromString("244999.65"),
		CreatedAt:   time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC),
	}

	event := NewTransferCreatedEvent(transfer)
	if event.TransferID != "tr-1" || event.PlayerID != 10 || event.OldTeamID != 20 || event.NewTeamID != 30 {
		t.Errorf("unexpected event: %+v", event)
	}
	if event.ContractFee != "244999.65" {
		t.Errorf("expected fee 244999.65, got %s", event.ContractFee)
	}

	payload := event.AsMap()
	if payload["transfer_id"] != "tr-1" {
		t.Errorf("expected transfer_id tr-1, got %v", payload["transfer_id"])
	}
	if payload["player_id"] != int64(10) || payload["old_team_id"] != int64(20) || payload["new_team_id"] != int64(30) {
		t.Errorf("unexpected ids in payload: %v", payload)
	}
	if payload["contract_fee"] != "244999.65" {
		t.Errorf("expected contract_fee 244999.65, got %v", payload["contract_fee"])
	}
}
