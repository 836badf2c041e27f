package domain

import (
	"encoding/json"

	"cloud.google.com/go/civil"
)

// Scholarship is one normalized scholarship record produced by the model.
// This is a domain struct, not a database row; the store maps it into the
// scholarship table schema.
type Scholarship struct {
	ExternalID     string      // stable merge key, assigned by the pipeline
	Title          string      // from "title", required
	Description    string      // from "description"
	Amount         *float64    // from "amount", nil = variable/unknown
	Deadline       *civil.Date // from "deadline" (YYYY-MM-DD), nil = no deadline
	ApplicationURL string      // from "application_url" or the configured fallback
	Organization   string      // from "organization", required
	Requirements   []string    // from "requirements"
	Categories     []string    // from "categories"
	Source         string      // provenance tag, not identity

	// DeadlineAssumed marks records whose deadline could not be parsed and
	// was substituted with the configured fallback date. Not persisted;
	// surfaced in logs and run summaries for auditing.
	DeadlineAssumed bool
}

// ActiveAt reports whether the record counts as active on the given day:
// no deadline, or a deadline on or after that day. The store recomputes
// this on every write; whatever the enrichment payload claimed about
// activity never reaches the stored flag directly.
func (s *Scholarship) ActiveAt(today civil.Date) bool {
	if s.Deadline == nil {
		return true
	}
	return !s.Deadline.Before(today)
}

// EncodeStringList serializes a requirements/categories list to its stored
// blob form, a JSON array. A nil list encodes as an empty array.
func EncodeStringList(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// DecodeStringList parses a stored blob back into an ordered list.
// Malformed blobs decode to an empty list rather than an error; a row
// written by an older or buggy producer must not poison a read.
func DecodeStringList(blob string) []string {
	if blob == "" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(blob), &items); err != nil {
		return []string{}
	}
	if items == nil {
		return []string{}
	}
	return items
}
