package domain

import "errors"

var (
	// Directory errors
	ErrPlayerNotFound       = errors.New("player not found")
	ErrTeamNotFound         = errors.New("team not found")
	ErrDirectoryUnavailable = errors.New("directory unavailable")

	// Transfer errors
	ErrSameTeamTransfer = errors.New("player already belongs to the target team")
	ErrTransferNotFound = errors.New("transfer not found")
	ErrTransferConflict = errors.New("concurrent transfer recorded for player")
	ErrInvalidID        = errors.New("id must be positive")
	ErrNegativeFee      = errors.New("contract fee cannot be negative")
)
