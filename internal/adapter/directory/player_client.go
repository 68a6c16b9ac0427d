package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/nkostic/transferhub/internal/domain"
)

// dateOfBirthFormat is the wire format the player service uses for dates.
const dateOfBirthFormat = "2006-01-02"

// PlayerClient implements usecase.PlayerDirectory against the player
// service's HTTP API. A clean 404 maps to domain.ErrPlayerNotFound; any
// other failure is reported as domain.ErrDirectoryUnavailable so callers
// can tell validation rejections from infrastructure trouble.
type PlayerClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewPlayerClient creates a new PlayerClient.
func NewPlayerClient(baseURL string, timeout time.Duration, logger *slog.Logger) *PlayerClient {
	if logger == nil {
		logger = slog.Default()
	}

	return &PlayerClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type playerResponse struct {
	ID          int64  `json:"id"`
	UPIN        int64  `json:"upin"`
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"`
}

// GetPlayer fetches a player by id.
func (c *PlayerClient) GetPlayer(ctx context.Context, id int64) (*domain.Player, error) {
	url := fmt.Sprintf("%s/api/player/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: player directory: %v", domain.ErrDirectoryUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrPlayerNotFound
	case resp.StatusCode != http.StatusOK:
		c.logger.Warn("player directory returned unexpected status",
			"status", resp.StatusCode,
			"player_id", id,
		)

		return nil, fmt.Errorf("%w: player directory returned status %d", domain.ErrDirectoryUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: player directory: %v", domain.ErrDirectoryUnavailable, err)
	}

	var pr playerResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("%w: player directory sent malformed response: %v", domain.ErrDirectoryUnavailable, err)
	}

	dob, err := time.Parse(dateOfBirthFormat, pr.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("%w: player directory sent malformed date of birth %q", domain.ErrDirectoryUnavailable, pr.DateOfBirth)
	}

	return &domain.Player{
		ID:          pr.ID,
		UPIN:        pr.UPIN,
		Name:        pr.Name,
		DateOfBirth: dob,
	}, nil
}
