package exports

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const exportColumns = `id, user_id, template_id, file_name, storage_key, mime_type, size_bytes, pages, created_at`

// Create inserts an export record.
func (r *PGRepo) Create(ctx context.Context, export Export) error {
	const query = `
INSERT INTO resume_exports (
    id, user_id, template_id, file_name, storage_key, mime_type, size_bytes, pages, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		export.ID,
		export.UserID,
		export.TemplateID,
		export.FileName,
		export.StorageKey,
		export.MimeType,
		export.SizeBytes,
		export.Pages,
		export.CreatedAt,
	)
	return err
}

// GetByID returns an export by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, exportID string) (Export, error) {
	const query = `
SELECT ` + exportColumns + `
FROM resume_exports
WHERE id = $1
LIMIT 1`
	export, err := scanExport(r.DB.QueryRowContext(ctx, query, exportID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Export{}, ErrNotFound
		}
		return Export{}, err
	}
	if export.UserID != userID {
		return Export{}, ErrForbidden
	}
	return export, nil
}

// ListByUser lists exports ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Export, error) {
	limit, offset = clampPage(limit, offset)
	const query = `
SELECT ` + exportColumns + `
FROM resume_exports
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Export{}
	for rows.Next() {
		export, err := scanExport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, export)
	}
	return out, rows.Err()
}

// ClaimGuest moves every export of guestUserID to authedUserID.
func (r *PGRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	res, err := r.DB.ExecContext(ctx, `UPDATE resume_exports SET user_id = $1 WHERE user_id = $2`, authedUserID, guestUserID)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExport(row rowScanner) (Export, error) {
	var export Export
	err := row.Scan(
		&export.ID,
		&export.UserID,
		&export.TemplateID,
		&export.FileName,
		&export.StorageKey,
		&export.MimeType,
		&export.SizeBytes,
		&export.Pages,
		&export.CreatedAt,
	)
	return export, err
}

var _ Repo = (*PGRepo)(nil)
