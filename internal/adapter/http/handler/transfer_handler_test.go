package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/nkostic/transferhub/internal/adapter/http/dto"
	"github.com/nkostic/transferhub/internal/domain"
	"github.com/nkostic/transferhub/internal/usecase"
)

type transferServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreateTransferInput) (*domain.Transfer, error)
	getFn    func(ctx context.Context, id string) (*domain.Transfer, error)
	listFn   func(ctx context.Context, playerID int64) ([]*domain.Transfer, error)
	teamsFn  func(ctx context.Context, playerID int64) ([]int64, error)
}

func (s *transferServiceStub) CreateTransfer(ctx context.Context, input usecase.CreateTransferInput) (*domain.Transfer, error) {
	return s.createFn(ctx, input)
}

func (s *transferServiceStub) GetTransfer(ctx context.Context, id string) (*domain.Transfer, error) {
	return s.getFn(ctx, id)
}

func (s *transferServiceStub) ListTransfersByPlayer(ctx context.Context, playerID int64) ([]*domain.Transfer, error) {
	return s.listFn(ctx, playerID)
}

func (s *transferServiceStub) GetPlayerTeams(ctx context.Context, playerID int64) ([]int64, error) {
	return s.teamsFn(ctx, playerID)
}

func newRouteContext(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestTransferHandler_Create_Success(t *testing.T) {
	transfer := &domain.Transfer{
		ID:          "tr-1",
		PlayerID:    10,
		OldTeamID:   20,
		NewTeamID:   30,
		ContractFee: decimal.NewFromInt(264000),
	}
	var captured usecase.CreateTransferInput

	handler := NewTransferHandler(&transferServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransferInput) (*domain.Transfer, error) {
			captured = input
			return transfer, nil
		},
	}, nil)

	body, _ := json.Marshal(dto.CreateTransferRequest{
		PlayerID:   10,
		NewTeamID:  30,
		Commission: 10,
	})

	req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	if captured.PlayerID != 10 || captured.NewTeamID != 30 || captured.Commission != 10 {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.TransferResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "tr-1" || !resp.ContractFee.Equal(decimal.NewFromInt(264000)) {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestTransferHandler_Create_InvalidBody(t *testing.T) {
	handler := NewTransferHandler(&transferServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransferInput) (*domain.Transfer, error) {
			t.Fatal("CreateTransfer should not be called")
			return nil, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewBufferString("{bad json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransferHandler_Create_CommissionOutOfRange(t *testing.T) {
	handler := NewTransferHandler(&transferServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransferInput) (*domain.Transfer, error) {
			t.Fatal("CreateTransfer should not be called")
			return nil, nil
		},
	}, nil)

	for _, commission := range []int64{0, 11, -3} {
		body, _ := json.Marshal(dto.CreateTransferRequest{
			PlayerID:   10,
			NewTeamID:  30,
			Commission: commission,
		})

		req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("commission %d: expected 400, got %d", commission, rec.Code)
		}
	}
}

func TestTransferHandler_Create_PlayerNotFound(t *testing.T) {
	handler := NewTransferHandler(&transferServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransferInput) (*domain.Transfer, error) {
			return nil, domain.ErrPlayerNotFound
		},
	}, nil)

	body, _ := json.Marshal(dto.CreateTransferRequest{PlayerID: 99, NewTeamID: 30, Commission: 5})

	req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTransferHandler_Create_DirectoryUnavailable(t *testing.T) {
	handler := NewTransferHandler(&transferServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransferInput) (*domain.Transfer, error) {
			return nil, domain.ErrDirectoryUnavailable
		},
	}, nil)

	body, _ := json.Marshal(dto.CreateTransferRequest{PlayerID: 10, NewTeamID: 30, Commission: 5})

	req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestTransferHandler_Get_NotFound(t *testing.T) {
	handler := NewTransferHandler(&transferServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Transfer, error) {
			return nil, domain.ErrTransferNotFound
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/transfers/tr-404", nil)
	req = newRouteContext(req, "id", "tr-404")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTransferHandler_PlayerTeams(t *testing.T) {
	handler := NewTransferHandler(&transferServiceStub{
		teamsFn: func(ctx context.Context, playerID int64) ([]int64, error) {
			if playerID != 10 {
				t.Fatalf("expected player 10, got %d", playerID)
			}
			return []int64{20, 30}, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/players/10/teams", nil)
	req = newRouteContext(req, "id", "10")
	rec := httptest.NewRecorder()

	handler.PlayerTeams(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.PlayerTeamsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.PlayerID != 10 || len(resp.TeamIDs) != 2 || resp.TeamIDs[0] != 20 || resp.TeamIDs[1] != 30 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestTransferHandler_PlayerTeams_BadID(t *testing.T) {
	handler := NewTransferHandler(&transferServiceStub{
		teamsFn: func(ctx context.Context, playerID int64) ([]int64, error) {
			t.Fatal("GetPlayerTeams should not be called")
			return nil, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/players/abc/teams", nil)
	req = newRouteContext(req, "id", "abc")
	rec := httptest.NewRecorder()

	handler.PlayerTeams(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransferHandler_ListByPlayer(t *testing.T) {
	handler := NewTransferHandler(&transferServiceStub{
		listFn: func(ctx context.Context, playerID int64) ([]*domain.Transfer, error) {
			return []*domain.Transfer{
				{ID: "tr-1", PlayerID: playerID, OldTeamID: 20, NewTeamID: 20},
				{ID: "tr-2", PlayerID: playerID, OldTeamID: 20, NewTeamID: 30},
			}, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/players/10/transfers", nil)
	req = newRouteContext(req, "id", "10")
	rec := httptest.NewRecorder()

	handler.ListByPlayer(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []*dto.TransferResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 || resp[0].ID != "tr-1" || resp[1].ID != "tr-2" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
