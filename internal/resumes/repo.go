package resumes

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("resume not found")

// Repo defines persistence operations for resumes. Reads are owner-scoped;
// file bytes are fetched separately from metadata.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	GetByID(ctx context.Context, userID, resumeID string) (Resume, error)
	GetFileData(ctx context.Context, userID, resumeID string) ([]byte, error)
	ListByUser(ctx context.Context, userID string) ([]Resume, error)
	Delete(ctx context.Context, userID, resumeID string) error
	DeleteByUser(ctx context.Context, userID string) error
}
