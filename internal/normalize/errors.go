package normalize

import "errors"

var (
	// ErrIncompleteData marks results missing a required field (title or
	// organization). The item is skipped and counted as a failure.
	ErrIncompleteData = errors.New("incomplete enrichment data")

	// ErrInvalidField marks results whose fields have unusable types or
	// values. The item is skipped and counted as a failure.
	ErrInvalidField = errors.New("invalid enrichment field")

	// ErrNotAccepting marks results the enrichment explicitly flagged as
	// not currently accepting applications. This is a business-rule skip,
	// not a failure, and is counted separately.
	ErrNotAccepting = errors.New("scholarship not currently accepting applications")
)
