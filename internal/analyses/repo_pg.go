package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Ownership checks go through a join
// on the resumes table.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	payload, err := json.Marshal(analysis.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	const query = `
INSERT INTO analyses (id, resume_id, result, job_description, analyzed_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err = r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.ResumeID,
		payload,
		analysis.JobDescription,
		analysis.AnalyzedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID, analysisID string) (Analysis, error) {
	const query = `
SELECT a.id, a.resume_id, r.user_id, a.result, a.job_description, a.analyzed_at
FROM analyses a
JOIN resumes r ON r.id = a.resume_id
WHERE r.user_id = $1 AND a.id = $2
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID, analysisID))
}

func (r *PGRepo) ListByResume(ctx context.Context, userID, resumeID string) ([]Analysis, error) {
	const query = `
SELECT a.id, a.resume_id, r.user_id, a.result, a.job_description, a.analyzed_at
FROM analyses a
JOIN resumes r ON r.id = a.resume_id
WHERE r.user_id = $1 AND a.resume_id = $2
ORDER BY a.analyzed_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, analysis)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, analysis Analysis) error {
	payload, err := json.Marshal(analysis.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	const query = `
UPDATE analyses a
SET result = $3, job_description = $4
FROM resumes r
WHERE r.id = a.resume_id AND r.user_id = $1 AND a.id = $2`
	res, err := r.DB.ExecContext(ctx, query, analysis.UserID, analysis.ID, payload, analysis.JobDescription)
	if err != nil {
		return err
	}
	updated, _ := res.RowsAffected()
	if updated == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, userID, analysisID string) error {
	const query = `
DELETE FROM analyses a
USING resumes r
WHERE r.id = a.resume_id AND r.user_id = $1 AND a.id = $2`
	res, err := r.DB.ExecContext(ctx, query, userID, analysisID)
	if err != nil {
		return err
	}
	deleted, _ := res.RowsAffected()
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByResume exists for symmetry with the in-memory repo; in Postgres
// the foreign-key cascade already covers it.
func (r *PGRepo) DeleteByResume(ctx context.Context, resumeID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM analyses WHERE resume_id = $1`, resumeID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PGRepo) scanOne(row rowScanner) (Analysis, error) {
	analysis, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return analysis, nil
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var analysis Analysis
	var payload []byte
	if err := row.Scan(
		&analysis.ID,
		&analysis.ResumeID,
		&analysis.UserID,
		&payload,
		&analysis.JobDescription,
		&analysis.AnalyzedAt,
	); err != nil {
		return Analysis{}, err
	}
	if err := json.Unmarshal(payload, &analysis.Result); err != nil {
		return Analysis{}, fmt.Errorf("unmarshal result: %w", err)
	}
	return analysis, nil
}

var _ Repo = (*PGRepo)(nil)
