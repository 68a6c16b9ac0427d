package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nkostic/transferhub/internal/domain"
	"github.com/nkostic/transferhub/internal/usecase"
)

// CachedPlayerDirectory wraps a PlayerDirectory with a read-through cache.
// Player identity and birth date are stable, so short TTLs are safe.
// Not-found results are never cached. Cache failures fall through to the
// inner directory.
type CachedPlayerDirectory struct {
	inner  usecase.PlayerDirectory
	cache  usecase.Cache
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedPlayerDirectory creates a new CachedPlayerDirectory.
func NewCachedPlayerDirectory(inner usecase.PlayerDirectory, cache usecase.Cache, ttl time.Duration, logger *slog.Logger) *CachedPlayerDirectory {
	if logger == nil {
		logger = slog.Default()
	}

	return &CachedPlayerDirectory{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

type cachedPlayer struct {
	ID          int64     `json:"id"`
	UPIN        int64     `json:"upin"`
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"date_of_birth"`
}

// GetPlayer fetches a player, serving from cache when possible.
func (d *CachedPlayerDirectory) GetPlayer(ctx context.Context, id int64) (*domain.Player, error) {
	key := fmt.Sprintf("player:%d", id)

	if data, err := d.cache.Get(ctx, key); err == nil {
		var cp cachedPlayer
		if err := json.Unmarshal(data, &cp); err == nil {
			return &domain.Player{
				ID:          cp.ID,
				UPIN:        cp.UPIN,
				Name:        cp.Name,
				DateOfBirth: cp.DateOfBirth,
			}, nil
		}
	}

	player, err := d.inner.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(cachedPlayer{
		ID:          player.ID,
		UPIN:        player.UPIN,
		Name:        player.Name,
		DateOfBirth: player.DateOfBirth,
	})
	if err == nil {
		if err := d.cache.Set(ctx, key, data, d.ttl); err != nil {
			d.logger.Warn("failed to cache player", "player_id", id, "error", err)
		}
	}

	return player, nil
}
