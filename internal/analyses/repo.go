package analyses

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("analysis not found")

// Repo defines persistence operations for analyses. Reads are scoped to the
// owner of the referenced resume.
type Repo interface {
	Create(ctx context.Context, analysis Analysis) error
	GetByID(ctx context.Context, userID, analysisID string) (Analysis, error)
	ListByResume(ctx context.Context, userID, resumeID string) ([]Analysis, error)
	Update(ctx context.Context, analysis Analysis) error
	Delete(ctx context.Context, userID, analysisID string) error
	DeleteByResume(ctx context.Context, resumeID string) error
}
