package usecase

import "time"

const (
	// maxAppendRetries bounds how often a transfer pipeline is re-run
	// after losing the conditional append race for a player.
	maxAppendRetries = 3

	// appendRetryInterval is the initial backoff between append attempts.
	appendRetryInterval = 25 * time.Millisecond
)
