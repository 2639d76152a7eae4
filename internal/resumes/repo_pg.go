package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (id, user_id, file_name, mime_type, parsed_text, file_data, uploaded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		resume.FileName,
		resume.MimeType,
		resume.ParsedText,
		resume.FileData,
		resume.UploadedAt,
	)
	return err
}

// GetByID returns metadata and parsed text without the raw file bytes.
func (r *PGRepo) GetByID(ctx context.Context, userID, resumeID string) (Resume, error) {
	const query = `
SELECT id, user_id, file_name, mime_type, parsed_text, uploaded_at
FROM resumes
WHERE user_id = $1 AND id = $2
LIMIT 1`
	var resume Resume
	err := r.DB.QueryRowContext(ctx, query, userID, resumeID).Scan(
		&resume.ID,
		&resume.UserID,
		&resume.FileName,
		&resume.MimeType,
		&resume.ParsedText,
		&resume.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

// GetFileData loads the raw file bytes for a single resume.
func (r *PGRepo) GetFileData(ctx context.Context, userID, resumeID string) ([]byte, error) {
	const query = `
SELECT file_data
FROM resumes
WHERE user_id = $1 AND id = $2
LIMIT 1`
	var data []byte
	err := r.DB.QueryRowContext(ctx, query, userID, resumeID).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	const query = `
SELECT id, user_id, file_name, mime_type, parsed_text, uploaded_at
FROM resumes
WHERE user_id = $1
ORDER BY uploaded_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		var resume Resume
		if err := rows.Scan(
			&resume.ID,
			&resume.UserID,
			&resume.FileName,
			&resume.MimeType,
			&resume.ParsedText,
			&resume.UploadedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

func (r *PGRepo) Delete(ctx context.Context, userID, resumeID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM resumes WHERE user_id = $1 AND id = $2`, userID, resumeID)
	if err != nil {
		return err
	}
	deleted, _ := res.RowsAffected()
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByUser removes every resume the user owns. Analyses follow via the
// foreign-key cascade.
func (r *PGRepo) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM resumes WHERE user_id = $1`, userID)
	return err
}

var _ Repo = (*PGRepo)(nil)
