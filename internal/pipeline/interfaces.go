package pipeline

import (
	"context"

	"github.com/scholarmatch/scholarship-sync/internal/domain"
	"github.com/scholarmatch/scholarship-sync/internal/store"
)

// Enricher produces a loosely-typed field set for one reference string.
// Any failure (network, quota, malformed payload) is a single error; the
// driver treats them all as "adapter unavailable for this item".
type Enricher interface {
	Enrich(ctx context.Context, reference string) (map[string]any, error)
}

// RecordStore is the slice of the store the driver needs. It enables
// testing the driver without a real database.
type RecordStore interface {
	UpsertBatch(ctx context.Context, recs []*domain.Scholarship) int
	BeginRun(ctx context.Context, source string) (string, error)
	FinishRun(ctx context.Context, runID string, counts store.RunCounts, runErr error) error
}
