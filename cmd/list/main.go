// Command list prints the active scholarships currently in the store,
// newest first.
package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/scholarmatch/scholarship-sync/internal/config"
	"github.com/scholarmatch/scholarship-sync/internal/logger"
	"github.com/scholarmatch/scholarship-sync/internal/store"
)

func main() {
	log := logger.New()

	limit := flag.Int("limit", 20, "Maximum number of scholarships to list")
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

	st, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", cfg.DBPath).Msg("Storage unavailable")
	}
	defer st.Close()

	recs, err := st.ListActive(ctx, *limit)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not list scholarships")
	}

	count, err := st.CountActive(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Could not count active scholarships")
		count = 0
	}

	for i, rec := range recs {
		amount := "variable"
		if rec.Amount != nil {
			amount = fmt.Sprintf("$%.2f", *rec.Amount)
		}
		deadline := "none"
		if rec.Deadline != nil {
			deadline = rec.Deadline.String()
		}
		fmt.Printf("%d. %s\n", i+1, rec.Title)
		fmt.Printf("   Organization: %s\n", rec.Organization)
		fmt.Printf("   Amount: %s  Deadline: %s\n", amount, deadline)
		if len(rec.Categories) > 0 {
			fmt.Printf("   Categories: %s\n", strings.Join(rec.Categories, ", "))
		}
		fmt.Printf("   Apply: %s\n\n", rec.ApplicationURL)
	}
	fmt.Printf("%d of %d active scholarships\n", len(recs), count)
}
