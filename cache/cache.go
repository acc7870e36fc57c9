package cache

import (
	"context"
	"errors"
)

// SummaryCache stores AI-produced summaries keyed by a digest of the source
// text, so repeated summarize requests for the same note don't hit the
// upstream model again.
type SummaryCache interface {
	GetSummary(ctx context.Context, key string) (string, error)
	SetSummary(ctx context.Context, key string, summary string) error
}

var ErrCacheMiss = errors.New("summary not in cache")
