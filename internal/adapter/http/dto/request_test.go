package dto

import "testing"

func TestCreateTransferRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateTransferRequest
		wantErr bool
	}{
		{"valid", CreateTransferRequest{PlayerID: 10, NewTeamID: 30, Commission: 5}, false},
		{"commission lower bound", CreateTransferRequest{PlayerID: 10, NewTeamID: 30, Commission: 1}, false},
		{"commission upper bound", CreateTransferRequest{PlayerID: 10, NewTeamID: 30, Commission: 10}, false},
		{"missing player", CreateTransferRequest{NewTeamID: 30, Commission: 5}, true},
		{"missing team", CreateTransferRequest{PlayerID: 10, Commission: 5}, true},
		{"commission zero", CreateTransferRequest{PlayerID: 10, NewTeamID: 30, Commission: 0}, true},
		{"commission too high", CreateTransferRequest{PlayerID: 10, NewTeamID: 30, Commission: 11}, true},
		{"commission negative", CreateTransferRequest{PlayerID: 10, NewTeamID: 30, Commission: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateTransferRequest_ToUseCaseInput(t *testing.T) {
	req := CreateTransferRequest{PlayerID: 10, NewTeamID: 30, Commission: 7}

	input := req.ToUseCaseInput()
	if input.PlayerID != 10 || input.NewTeamID != 30 || input.Commission != 7 {
		t.Errorf("unexpected input: %+v", input)
	}
}
