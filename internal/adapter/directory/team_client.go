package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/nkostic/transferhub/internal/domain"
)

// TeamClient implements usecase.TeamDirectory against the team service's
// HTTP API. The existence check is batched: one call covers every id and
// the service does not report which id was missing.
type TeamClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewTeamClient creates a new TeamClient.
func NewTeamClient(baseURL string, timeout time.Duration, logger *slog.Logger) *TeamClient {
	if logger == nil {
		logger = slog.Default()
	}

	return &TeamClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// CheckTeamsExist confirms every id exists in the team directory.
func (c *TeamClient) CheckTeamsExist(ctx context.Context, ids []int64) error {
	payload, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal team ids: %w", err)
	}

	url := c.baseURL + "/api/team/exist"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: team directory: %v", domain.ErrDirectoryUnavailable, err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrTeamNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		c.logger.Warn("team directory returned unexpected status",
			"status", resp.StatusCode,
			"team_ids", ids,
		)

		return fmt.Errorf("%w: team directory returned status %d", domain.ErrDirectoryUnavailable, resp.StatusCode)
	}

	return nil
}
