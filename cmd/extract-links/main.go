// Command extract-links scans a PDF for embedded URI annotations and
// writes the unique links to a text file, one per line, sorted.
package main

import (
	"context"
	"flag"

	"github.com/scholarmatch/scholarship-sync/internal/extract"
	"github.com/scholarmatch/scholarship-sync/internal/logger"
	"github.com/scholarmatch/scholarship-sync/internal/source"
)

func main() {
	log := logger.New()

	pdf := flag.String("pdf", "scholarships.pdf", "PDF to scan: local path or gs://bucket/object")
	out := flag.String("out", "scholarships.txt", "Output file for extracted links")
	flag.Parse()

	ctx := logger.WithContext(context.Background(), log)

	log.Info().Str("pdf", *pdf).Msg("Extracting links")

	data, err := source.Read(ctx, *pdf)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not read source document")
	}

	links := extract.Links(string(data))
	if len(links) == 0 {
		log.Warn().Msg("No links found in the document")
		return
	}

	if err := extract.SaveLinks(links, *out); err != nil {
		log.Fatal().Err(err).Msg("Could not save links")
	}

	log.Info().Int("links", len(links)).Str("out", *out).Msg("Saved unique links")
}
