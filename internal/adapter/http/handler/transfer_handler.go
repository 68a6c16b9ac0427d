package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nkostic/transferhub/internal/adapter/http/dto"
	"github.com/nkostic/transferhub/internal/domain"
	"github.com/nkostic/transferhub/internal/infrastructure/metrics"
	"github.com/nkostic/transferhub/internal/usecase"
)

// TransferService defines the transfer operations the handler exposes.
type TransferService interface {
	CreateTransfer(ctx context.Context, input usecase.CreateTransferInput) (*domain.Transfer, error)
	GetTransfer(ctx context.Context, id string) (*domain.Transfer, error)
	ListTransfersByPlayer(ctx context.Context, playerID int64) ([]*domain.Transfer, error)
	GetPlayerTeams(ctx context.Context, playerID int64) ([]int64, error)
}

// TransferHandler handles transfer-related HTTP requests.
type TransferHandler struct {
	transferUC TransferService
	metrics    *metrics.Metrics
}

// NewTransferHandler creates a new TransferHandler. The metrics argument
// may be nil.
func NewTransferHandler(transferUC TransferService, m *metrics.Metrics) *TransferHandler {
	return &TransferHandler{transferUC: transferUC, metrics: m}
}

// Create creates a new transfer.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	transfer, err := h.transferUC.CreateTransfer(r.Context(), req.ToUseCaseInput())
	if err != nil {
		if h.metrics != nil {
			h.metrics.TransferRejections.WithLabelValues(rejectionReason(err)).Inc()
		}
		status := mapDomainError(err)
		writeError(w, status, "failed to create transfer", err.Error())

		return
	}

	if h.metrics != nil {
		h.metrics.TransfersCreated.Inc()
		h.metrics.ContractFee.Observe(transfer.ContractFee.InexactFloat64())
	}

	writeJSON(w, http.StatusCreated, dto.TransferFromDomain(transfer))
}

// Get retrieves a transfer by ID.
func (h *TransferHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transfer ID", "")
		return
	}

	transfer, err := h.transferUC.GetTransfer(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get transfer", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.TransferFromDomain(transfer))
}

// ListByPlayer lists the transfer history of a player, oldest first.
func (h *TransferHandler) ListByPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := parseInt64Param(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid player ID", err.Error())
		return
	}

	transfers, err := h.transferUC.ListTransfersByPlayer(r.Context(), playerID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list transfers", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.TransfersFromDomain(transfers))
}

// PlayerTeams lists every team a player has been transferred to.
func (h *TransferHandler) PlayerTeams(w http.ResponseWriter, r *http.Request) {
	playerID, err := parseInt64Param(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid player ID", err.Error())
		return
	}

	teamIDs, err := h.transferUC.GetPlayerTeams(r.Context(), playerID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get player teams", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.PlayerTeamsResponse{
		PlayerID: playerID,
		TeamIDs:  teamIDs,
	})
}

// rejectionReason buckets create failures for the rejection counter.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return "player_not_found"
	case errors.Is(err, domain.ErrTeamNotFound):
		return "team_not_found"
	case errors.Is(err, domain.ErrSameTeamTransfer):
		return "same_team"
	case errors.Is(err, domain.ErrDirectoryUnavailable):
		return "directory_unavailable"
	case errors.Is(err, domain.ErrTransferConflict):
		return "conflict"
	default:
		return "internal"
	}
}
