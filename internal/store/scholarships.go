package store

import (
	"context"
	"database/sql"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/scholarmatch/scholarship-sync/internal/domain"
	"github.com/scholarmatch/scholarship-sync/internal/logger"
)

// Upsert inserts a scholarship row or, on external_id collision, replaces
// all mutable fields of the existing row. is_active is recomputed here
// from the deadline at write time; created_at never changes after the
// first insert, updated_at refreshes on every write.
func (s *Store) Upsert(ctx context.Context, rec *domain.Scholarship) error {
	if rec.ExternalID == "" {
		return fmt.Errorf("upsert scholarship: empty external_id")
	}

	now := s.timestamp()
	today := civil.DateOf(s.now())
	isActive := rec.ActiveAt(today)

	var deadline any
	if rec.Deadline != nil {
		deadline = rec.Deadline.String()
	}
	var amount any
	if rec.Amount != nil {
		amount = *rec.Amount
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scholarship (
			id, external_id, title, description, amount, deadline,
			application_url, organization, requirements, categories,
			source, created_at, updated_at, is_active
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(external_id) DO UPDATE SET
			title           = excluded.title,
			description     = excluded.description,
			amount          = excluded.amount,
			deadline        = excluded.deadline,
			application_url = excluded.application_url,
			organization    = excluded.organization,
			requirements    = excluded.requirements,
			categories      = excluded.categories,
			source          = excluded.source,
			is_active       = excluded.is_active,
			updated_at      = excluded.updated_at`,
		uuid.NewString(),
		rec.ExternalID,
		rec.Title,
		rec.Description,
		amount,
		deadline,
		rec.ApplicationURL,
		rec.Organization,
		domain.EncodeStringList(rec.Requirements),
		domain.EncodeStringList(rec.Categories),
		rec.Source,
		now,
		now,
		boolToInt(isActive),
	)
	if err != nil {
		return fmt.Errorf("upsert scholarship %q: %w", rec.ExternalID, err)
	}
	return nil
}

// UpsertBatch applies Upsert to each record independently and returns the
// number stored. A failing record is logged and absorbed; it never aborts
// the rest of the batch.
func (s *Store) UpsertBatch(ctx context.Context, recs []*domain.Scholarship) int {
	log := logger.FromContext(ctx)

	stored := 0
	for _, rec := range recs {
		if err := s.Upsert(ctx, rec); err != nil {
			log.Error().Err(err).Str("external_id", rec.ExternalID).Msg("Failed to store scholarship")
			continue
		}
		stored++
	}
	return stored
}

// ListActive returns up to limit active scholarships, newest created_at
// first, with the requirements/categories blobs decoded back into lists.
func (s *Store) ListActive(ctx context.Context, limit int) ([]*domain.Scholarship, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT external_id, title, description, amount, deadline,
		       application_url, organization, requirements, categories, source
		FROM scholarship
		WHERE is_active = 1
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list active scholarships: %w", err)
	}
	defer rows.Close()

	var recs []*domain.Scholarship
	for rows.Next() {
		rec, err := scanScholarship(rows)
		if err != nil {
			return nil, fmt.Errorf("list active scholarships: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list active scholarships: %w", err)
	}
	return recs, nil
}

// CountActive returns the number of active scholarship rows. Callers that
// only need a best-effort figure should treat an error as zero.
func (s *Store) CountActive(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM scholarship WHERE is_active = 1",
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active scholarships: %w", err)
	}
	return count, nil
}

func scanScholarship(rows *sql.Rows) (*domain.Scholarship, error) {
	var (
		rec          domain.Scholarship
		amount       sql.NullFloat64
		deadline     sql.NullString
		requirements string
		categories   string
	)
	err := rows.Scan(
		&rec.ExternalID, &rec.Title, &rec.Description, &amount, &deadline,
		&rec.ApplicationURL, &rec.Organization, &requirements, &categories,
		&rec.Source,
	)
	if err != nil {
		return nil, err
	}

	if amount.Valid {
		rec.Amount = &amount.Float64
	}
	if deadline.Valid && deadline.String != "" {
		// A deadline this store wrote always parses; tolerate a bad one
		// from elsewhere by leaving the field unset.
		if d, perr := civil.ParseDate(deadline.String); perr == nil {
			rec.Deadline = &d
		}
	}
	rec.Requirements = domain.DecodeStringList(requirements)
	rec.Categories = domain.DecodeStringList(categories)
	return &rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
