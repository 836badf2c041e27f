package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Run statuses, mirrored in the sync_run table.
const (
	RunStatusRunning = "RUNNING"
	RunStatusSuccess = "SUCCESS"
	RunStatusFailed  = "FAILED"
)

// RunCounts is the aggregate outcome recorded for one batch run.
type RunCounts struct {
	Attempted int
	Enriched  int
	Stored    int
	Skipped   int
}

// BeginRun records the start of a batch run and returns its id.
func (s *Store) BeginRun(ctx context.Context, source string) (string, error) {
	runID := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sync_run (id, source, started_at, status)
		VALUES (?, ?, ?, ?)`,
		runID, source, s.timestamp(), RunStatusRunning)
	if err != nil {
		return "", fmt.Errorf("begin sync run: %w", err)
	}
	return runID, nil
}

// FinishRun closes out a batch run with its final counts. runErr, if
// non-nil, marks the run failed and records the message.
func (s *Store) FinishRun(ctx context.Context, runID string, counts RunCounts, runErr error) error {
	status := RunStatusSuccess
	errMsg := ""
	if runErr != nil {
		status = RunStatusFailed
		errMsg = runErr.Error()
		const maxLen = 2000
		if len(errMsg) > maxLen {
			errMsg = errMsg[:maxLen]
		}
	}

	_, err := s.db.ExecContext(ctx, `
		UPDATE sync_run
		SET finished_at = ?,
		    status = ?,
		    attempted = ?,
		    enriched = ?,
		    stored = ?,
		    skipped = ?,
		    error_message = ?
		WHERE id = ?`,
		s.timestamp(), status,
		counts.Attempted, counts.Enriched, counts.Stored, counts.Skipped,
		errMsg, runID)
	if err != nil {
		return fmt.Errorf("finish sync run %q: %w", runID, err)
	}
	return nil
}
