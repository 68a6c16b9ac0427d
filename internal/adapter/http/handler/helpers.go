package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nkostic/transferhub/internal/adapter/http/dto"
	"github.com/nkostic/transferhub/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrTeamNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrTransferNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSameTeamTransfer):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNegativeFee):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrTransferConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrDirectoryUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// parseInt64Param parses a numeric URL parameter.
func parseInt64Param(r *http.Request, key string) (int64, error) {
	val := chi.URLParam(r, key)
	if val == "" {
		return 0, errors.New("missing " + key)
	}
	return strconv.ParseInt(val, 10, 64)
}
