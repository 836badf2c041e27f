// Command sync runs the scholarship batch pipeline: read reference lines,
// enrich each via the model, normalize, and upsert into the store.
package main

import (
	"context"
	"flag"

	"github.com/scholarmatch/scholarship-sync/internal/config"
	"github.com/scholarmatch/scholarship-sync/internal/enrich"
	"github.com/scholarmatch/scholarship-sync/internal/extract"
	"github.com/scholarmatch/scholarship-sync/internal/logger"
	"github.com/scholarmatch/scholarship-sync/internal/pipeline"
	"github.com/scholarmatch/scholarship-sync/internal/store"
)

func main() {
	log := logger.New()

	input := flag.String("input", "scholarships.txt", "Text file with one scholarship reference per line")
	limit := flag.Int("limit", 100, "Maximum number of lines to process")
	dbPath := flag.String("db", "", "SQLite database path (overrides SCHOLARSYNC_DB_PATH)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	ctx := logger.WithContext(context.Background(), log)

	lines, err := extract.ReadLines(*input, *limit)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not read input file")
	}
	log.Info().Int("references", len(lines)).Str("input", *input).Msg("Starting sync")

	// Schema bootstrap failure is the one fatal-on-boot condition;
	// everything after this degrades per item.
	st, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", cfg.DBPath).Msg("Storage unavailable")
	}
	defer st.Close()

	client, err := enrich.NewClient(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not create enrichment client")
	}

	driver := pipeline.New(cfg, client, st)
	summary := driver.Run(ctx, lines)

	log.Info().
		Int("attempted", summary.Attempted).
		Int("enriched", summary.Enriched).
		Int("stored", summary.Stored).
		Int("skipped", summary.Skipped).
		Int("enrich_failures", summary.EnrichFailures).
		Int("normalize_failures", summary.NormalizeFailures).
		Int("assumed_deadlines", summary.AssumedDeadlines).
		Msg("Sync completed")
}
