// Package normalize converts raw enrichment output into canonical
// scholarship records, applying defaulting, type coercion and the
// activity gate.
package normalize

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/scholarmatch/scholarship-sync/internal/domain"
)

// Options carries the defaulting policy for normalization. The caller
// (the pipeline) owns these values via its Config.
type Options struct {
	// ApplicationURL is used when enrichment returns no application URL.
	ApplicationURL string

	// FallbackDeadline is substituted when a deadline is present but does
	// not parse as an ISO date. Records that receive it are flagged with
	// DeadlineAssumed so downstream consumers can audit them.
	FallbackDeadline civil.Date

	// Source is the provenance tag written to every record.
	Source string
}

// Normalize converts one raw enrichment result into a Scholarship record.
// externalID is assigned by the caller; the normalizer never invents
// identity.
//
// Failure modes: ErrNotAccepting when the result marks itself inactive
// (a skip, not a failure), ErrIncompleteData when title or organization
// is missing, ErrInvalidField when a field has an unusable type.
func Normalize(raw map[string]any, externalID string, opts Options) (*domain.Scholarship, error) {
	// Business-policy gate, separate from the deadline-derived active flag:
	// results the enrichment marks as not accepting applications yield no
	// record at all. Absent means not accepting.
	accepting, err := getBoolField(raw, "is_currently_active")
	if err != nil {
		return nil, err
	}
	if !accepting {
		return nil, ErrNotAccepting
	}

	title, err := getStringField(raw, "title")
	if err != nil {
		return nil, err
	}
	organization, err := getStringField(raw, "organization")
	if err != nil {
		return nil, err
	}

	description, err := getOptionalStringField(raw, "description")
	if err != nil {
		return nil, err
	}

	amount, err := getOptionalFloat64Field(raw, "amount")
	if err != nil {
		return nil, err
	}
	if amount != nil && *amount < 0 {
		return nil, fmt.Errorf("%w: amount %v is negative", ErrInvalidField, *amount)
	}

	requirements, err := getStringListField(raw, "requirements")
	if err != nil {
		return nil, err
	}
	categories, err := getStringListField(raw, "categories")
	if err != nil {
		return nil, err
	}

	applicationURL, err := getOptionalStringField(raw, "application_url")
	if err != nil {
		return nil, err
	}

	rec := &domain.Scholarship{
		ExternalID:     externalID,
		Title:          title,
		Organization:   organization,
		Amount:         amount,
		Requirements:   requirements,
		Categories:     categories,
		ApplicationURL: opts.ApplicationURL,
		Source:         opts.Source,
	}
	if description != nil {
		rec.Description = *description
	}
	if applicationURL != nil {
		rec.ApplicationURL = *applicationURL
	}

	rec.Deadline, rec.DeadlineAssumed = parseDeadline(raw["deadline"], opts.FallbackDeadline)

	return rec, nil
}

// parseDeadline interprets the raw deadline value. Absent or null means no
// deadline. A value that is present but unparseable substitutes the
// fallback date instead of failing the whole record; the second return
// reports that substitution.
func parseDeadline(v any, fallback civil.Date) (*civil.Date, bool) {
	if v == nil {
		return nil, false
	}
	s, ok := v.(string)
	if !ok {
		return &fallback, true
	}
	if strings.TrimSpace(s) == "" {
		// An empty string is "no deadline", not an unparseable one.
		return nil, false
	}
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		return &fallback, true
	}
	d := civil.DateOf(parsed)
	return &d, false
}
