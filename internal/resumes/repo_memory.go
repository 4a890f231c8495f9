package resumes

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo. Records are kept per
// owner in insertion order.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Resume // userId -> resumes
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]Resume)}
}

// Create stores a new resume for its owner.
func (r *MemoryRepo) Create(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	resume.Fields = sanitizeFields(resume.Fields)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[resume.UserID] = append(r.data[resume.UserID], resume)
	return nil
}

// ListByOwner returns the owner's resumes in insertion order.
func (r *MemoryRepo) ListByOwner(ctx context.Context, userID string) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.data[userID]
	out := make([]Resume, 0, len(stored))
	for _, resume := range stored {
		out = append(out, copyResume(resume))
	}
	return out, nil
}

// GetByIDForOwner returns the owner's resume with the given id.
func (r *MemoryRepo) GetByIDForOwner(ctx context.Context, userID, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, resume := range r.data[userID] {
		if resume.ID == resumeID {
			return copyResume(resume), nil
		}
	}
	return Resume{}, ErrNotFound
}

// UpdateByIDForOwner shallow-merges patch into the stored fields.
func (r *MemoryRepo) UpdateByIDForOwner(ctx context.Context, userID, resumeID string, patch map[string]any) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	patch = sanitizeFields(patch)
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.data[userID]
	for i := range stored {
		if stored[i].ID != resumeID {
			continue
		}
		merged := make(map[string]any, len(stored[i].Fields)+len(patch))
		for k, v := range stored[i].Fields {
			merged[k] = v
		}
		for k, v := range patch {
			merged[k] = v
		}
		stored[i].Fields = merged
		r.data[userID] = stored
		return copyResume(stored[i]), nil
	}
	return Resume{}, ErrNotFound
}

// DeleteByIDForOwner removes the resume if present. Absent records are a
// successful no-op.
func (r *MemoryRepo) DeleteByIDForOwner(ctx context.Context, userID, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.data[userID]
	for i := range stored {
		if stored[i].ID == resumeID {
			r.data[userID] = append(stored[:i], stored[i+1:]...)
			return nil
		}
	}
	return nil
}

func copyResume(resume Resume) Resume {
	fields := make(map[string]any, len(resume.Fields))
	for k, v := range resume.Fields {
		fields[k] = v
	}
	resume.Fields = fields
	return resume
}

var _ Repo = (*MemoryRepo)(nil)
