// Package pipeline sequences extraction output through enrichment,
// normalization and storage for a batch of scholarship references.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/scholarmatch/scholarship-sync/internal/config"
	"github.com/scholarmatch/scholarship-sync/internal/domain"
	"github.com/scholarmatch/scholarship-sync/internal/logger"
	"github.com/scholarmatch/scholarship-sync/internal/normalize"
	"github.com/scholarmatch/scholarship-sync/internal/store"
)

// Summary is the aggregate outcome of one batch run. No per-item failure
// ever surfaces as an error from Run; it shows up here and in the logs.
type Summary struct {
	Attempted         int // references processed
	Enriched          int // successful enrichment calls
	Stored            int // records upserted
	Skipped           int // activity-gate skips (not failures)
	EnrichFailures    int // adapter failures (timeout, bad payload, quota)
	NormalizeFailures int // incomplete or invalid enrichment results
	AssumedDeadlines  int // records that received the fallback deadline
}

// Driver owns the per-batch lifecycle: it holds the enrichment client and
// the store handle for the duration of one run.
type Driver struct {
	cfg      config.Config
	enricher Enricher
	store    RecordStore
}

// New creates a batch driver.
func New(cfg config.Config, enricher Enricher, recordStore RecordStore) *Driver {
	return &Driver{cfg: cfg, enricher: enricher, store: recordStore}
}

// Run processes references in the order received: enrich, normalize,
// then upsert the batch. One input is fully handled before the next
// begins. A failing item is logged, counted and skipped; it never aborts
// the batch.
func (d *Driver) Run(ctx context.Context, references []string) Summary {
	log := logger.FromContext(ctx)

	runID, err := d.store.BeginRun(ctx, d.cfg.Source)
	if err != nil {
		// Run bookkeeping is best-effort; the batch itself proceeds.
		log.Warn().Err(err).Msg("Could not record sync run start")
		runID = ""
	}

	var (
		summary Summary
		records []*domain.Scholarship
	)
	opts := normalize.Options{
		ApplicationURL:   d.cfg.ApplicationURL,
		FallbackDeadline: d.cfg.FallbackDeadline,
		Source:           d.cfg.Source,
	}

	for i, ref := range references {
		summary.Attempted++
		itemLog := log.With().Int("line", i+1).Str("reference", truncate(ref, 80)).Logger()

		raw, err := d.enrichOne(ctx, ref)
		if err != nil {
			summary.EnrichFailures++
			itemLog.Error().Err(err).Msg("Enrichment failed, skipping item")
			continue
		}
		summary.Enriched++

		// External identity is positional: source tag plus 1-based line
		// number, stable across repeated runs over the same input file.
		externalID := fmt.Sprintf("%s_%d", d.cfg.Source, i+1)

		rec, err := normalize.Normalize(raw, externalID, opts)
		if err != nil {
			if errors.Is(err, normalize.ErrNotAccepting) {
				summary.Skipped++
				itemLog.Info().Msg("Scholarship not currently active, skipping")
				continue
			}
			summary.NormalizeFailures++
			itemLog.Error().Err(err).Msg("Normalization failed, skipping item")
			continue
		}
		if rec.DeadlineAssumed {
			summary.AssumedDeadlines++
			itemLog.Warn().Str("deadline", rec.Deadline.String()).Msg("Deadline unparseable, substituted fallback")
		}
		records = append(records, rec)
	}

	if len(records) > 0 {
		summary.Stored = d.store.UpsertBatch(ctx, records)
	}

	if runID != "" {
		counts := store.RunCounts{
			Attempted: summary.Attempted,
			Enriched:  summary.Enriched,
			Stored:    summary.Stored,
			Skipped:   summary.Skipped,
		}
		if err := d.store.FinishRun(ctx, runID, counts, nil); err != nil {
			log.Warn().Err(err).Msg("Could not record sync run finish")
		}
	}

	return summary
}

// enrichOne bounds a single enrichment call so a hung request cannot
// stall the whole batch; a timeout is just another adapter failure.
func (d *Driver) enrichOne(ctx context.Context, ref string) (map[string]any, error) {
	if d.cfg.EnrichTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.EnrichTimeout)
		defer cancel()
	}
	return d.enricher.Enrich(ctx, ref)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
