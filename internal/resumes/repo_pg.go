package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres. Fields live in a JSONB column; the
// seq column preserves insertion order for listing.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (id, user_id, fields, created_at)
VALUES ($1, $2, $3, $4)`
	fields, err := json.Marshal(sanitizeFields(resume.Fields))
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query, resume.ID, resume.UserID, fields, time.Now().UTC())
	return err
}

// ListByOwner returns the owner's resumes in insertion order.
func (r *PGRepo) ListByOwner(ctx context.Context, userID string) ([]Resume, error) {
	const query = `
SELECT id, user_id, fields
FROM resumes
WHERE user_id = $1
ORDER BY seq`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		resume, err := scanResume(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// GetByIDForOwner returns the owner's resume with the given id.
func (r *PGRepo) GetByIDForOwner(ctx context.Context, userID, resumeID string) (Resume, error) {
	const query = `
SELECT id, user_id, fields
FROM resumes
WHERE user_id = $1 AND id = $2
LIMIT 1`
	resume, err := scanResume(r.DB.QueryRowContext(ctx, query, userID, resumeID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

// UpdateByIDForOwner shallow-merges patch into the stored fields and returns
// the updated record.
func (r *PGRepo) UpdateByIDForOwner(ctx context.Context, userID, resumeID string, patch map[string]any) (Resume, error) {
	const query = `
UPDATE resumes
SET fields = fields || $1::jsonb
WHERE user_id = $2 AND id = $3
RETURNING id, user_id, fields`
	patchJSON, err := json.Marshal(sanitizeFields(patch))
	if err != nil {
		return Resume{}, err
	}
	resume, err := scanResume(r.DB.QueryRowContext(ctx, query, patchJSON, userID, resumeID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

// DeleteByIDForOwner removes the resume if present. Zero rows affected is
// still success.
func (r *PGRepo) DeleteByIDForOwner(ctx context.Context, userID, resumeID string) error {
	const query = `
DELETE FROM resumes
WHERE user_id = $1 AND id = $2`
	_, err := r.DB.ExecContext(ctx, query, userID, resumeID)
	return err
}

func scanResume(scan func(dest ...any) error) (Resume, error) {
	var resume Resume
	var fields []byte
	if err := scan(&resume.ID, &resume.UserID, &fields); err != nil {
		return Resume{}, err
	}
	if len(fields) > 0 {
		if err := json.Unmarshal(fields, &resume.Fields); err != nil {
			return Resume{}, err
		}
	}
	if resume.Fields == nil {
		resume.Fields = map[string]any{}
	}
	return resume, nil
}

var _ Repo = (*PGRepo)(nil)
