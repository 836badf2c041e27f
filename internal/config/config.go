package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"cloud.google.com/go/civil"
)

// Default values for the sync pipeline. Any of them can be overridden via
// environment variables; see Load.
const (
	// DefaultModelName is the default Gemini model used for enrichment.
	DefaultModelName = "gemini-2.5-flash"

	// DefaultSource is the provenance tag written to every record and the
	// prefix of pipeline-assigned external ids.
	DefaultSource = "bigfuture"

	// DefaultApplicationURL is used when enrichment does not return an
	// application URL for a scholarship.
	DefaultApplicationURL = "https://bigfuture.collegeboard.org/scholarships"

	// DefaultDBPath is where the SQLite database lives unless overridden.
	DefaultDBPath = "scholarships.db"

	// DefaultEnrichTimeout bounds a single enrichment call so one hung
	// request cannot stall the whole batch.
	DefaultEnrichTimeout = 90 * time.Second

	// DefaultFallbackDeadlineYear: when a deadline comes back unparseable,
	// the normalizer substitutes Dec 31 of this year and flags the record.
	DefaultFallbackDeadlineYear = 2026
)

// Config carries everything the pipeline components need. It is built once
// in main and passed into each constructor; no component reads the
// environment or holds ambient client state.
type Config struct {
	// DBPath is the SQLite database file path.
	DBPath string

	// ModelName is the Gemini model used for enrichment.
	ModelName string

	// Source tags stored records and prefixes external ids.
	Source string

	// ApplicationURL is the fallback application URL.
	ApplicationURL string

	// EnrichTimeout bounds each enrichment call.
	EnrichTimeout time.Duration

	// FallbackDeadline is substituted when a deadline fails to parse.
	FallbackDeadline civil.Date
}

// Load builds a Config from environment variables, falling back to the
// defaults above. Returns an error only for values that are present but
// unusable, so a bad override fails loudly instead of being ignored.
func Load() (Config, error) {
	cfg := Config{
		DBPath:           getenv("SCHOLARSYNC_DB_PATH", DefaultDBPath),
		ModelName:        getenv("SCHOLARSYNC_MODEL", DefaultModelName),
		Source:           getenv("SCHOLARSYNC_SOURCE", DefaultSource),
		ApplicationURL:   getenv("SCHOLARSYNC_APPLICATION_URL", DefaultApplicationURL),
		EnrichTimeout:    DefaultEnrichTimeout,
		FallbackDeadline: civil.Date{Year: DefaultFallbackDeadlineYear, Month: time.December, Day: 31},
	}

	if v := os.Getenv("SCHOLARSYNC_ENRICH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid SCHOLARSYNC_ENRICH_TIMEOUT %q: %w", v, err)
		}
		cfg.EnrichTimeout = d
	}

	if v := os.Getenv("SCHOLARSYNC_FALLBACK_DEADLINE_YEAR"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid SCHOLARSYNC_FALLBACK_DEADLINE_YEAR %q: %w", v, err)
		}
		cfg.FallbackDeadline = civil.Date{Year: year, Month: time.December, Day: 31}
	}

	return cfg, nil
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
