package ai

import (
	"context"
	"errors"
)

// Gateway is the external text-summarization collaborator. apiKey overrides
// the gateway's configured credential for a single call; pass "" to use the
// default. Callers treat any returned error as "no summary available" and
// fall back to the local algorithm.
type Gateway interface {
	Summarize(ctx context.Context, text string, apiKey string) (string, error)
}

var (
	ErrNoAPIKey = errors.New("no API key configured")
)
