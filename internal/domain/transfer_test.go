package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTransferValidate(t *testing.T) {
	valid := Transfer{
		ID:          "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		PlayerID:    1,
		OldTeamID:   2,
		NewTeamID:   3,
		ContractFee: decimal.NewFromInt(264000),
		CreatedAt:   time.Now(),
	}

	tests := []struct {
		name    string
		mutate  func(*Transfer)
		wantErr error
	}{
		{"valid", func(*Transfer) {}, nil},
		{"zero player id", func(tr *Transfer) { tr.PlayerID = 0 }, ErrInvalidID},
		{"negative old team id", func(tr *Transfer) { tr.OldTeamID = -1 }, ErrInvalidID},
		{"zero new team id", func(tr *Transfer) { tr.NewTeamID = 0 }, ErrInvalidID},
		{"negative fee", func(tr *Transfer) { tr.ContractFee = decimal.NewFromInt(-1) }, ErrNegativeFee},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := valid
			tt.mutate(&tr)

			if err := tr.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTransferIsFirst(t *testing.T) {
	first := Transfer{PlayerID: 1, OldTeamID: 5, NewTeamID: 5}
	if !first.IsFirst() {
		t.Error("expected sentinel record to be first")
	}

	later := Transfer{PlayerID: 1, OldTeamID: 5, NewTeamID: 6}
	if later.IsFirst() {
		t.Error("expected real move not to be first")
	}
}
