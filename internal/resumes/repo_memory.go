package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo used when no database is configured.
type MemoryRepo struct {
	mu      sync.RWMutex
	resumes map[string]Resume

	// onDelete lets bootstrap cascade analysis deletion in memory mode.
	onDelete func(resumeID string)
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{resumes: make(map[string]Resume)}
}

// SetDeleteHook registers a callback invoked for every deleted resume.
func (r *MemoryRepo) SetDeleteHook(hook func(resumeID string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onDelete = hook
}

func (r *MemoryRepo) Create(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resumes[resume.ID] = resume
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.resumes[resumeID]
	if !ok || resume.UserID != userID {
		return Resume{}, ErrNotFound
	}
	resume.FileData = nil
	return resume, nil
}

func (r *MemoryRepo) GetFileData(ctx context.Context, userID, resumeID string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.resumes[resumeID]
	if !ok || resume.UserID != userID {
		return nil, ErrNotFound
	}
	return resume.FileData, nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Resume
	for _, resume := range r.resumes {
		if resume.UserID == userID {
			resume.FileData = nil
			out = append(out, resume)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadedAt.After(out[j].UploadedAt) })
	return out, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, userID, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	resume, ok := r.resumes[resumeID]
	if !ok || resume.UserID != userID {
		r.mu.Unlock()
		return ErrNotFound
	}
	delete(r.resumes, resumeID)
	hook := r.onDelete
	r.mu.Unlock()

	if hook != nil {
		hook(resumeID)
	}
	return nil
}

func (r *MemoryRepo) DeleteByUser(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	var removed []string
	for id, resume := range r.resumes {
		if resume.UserID == userID {
			removed = append(removed, id)
			delete(r.resumes, id)
		}
	}
	hook := r.onDelete
	r.mu.Unlock()

	if hook != nil {
		for _, id := range removed {
			hook(id)
		}
	}
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
