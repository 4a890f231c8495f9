package resumes

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no resume matches the id for the given owner.
// A record owned by another user is indistinguishable from a missing one.
var ErrNotFound = errors.New("resume not found")

// Repo defines persistence operations for resumes. Every operation is scoped
// by the owning user id; ownership isolation is enforced here, not by
// callers.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	ListByOwner(ctx context.Context, userID string) ([]Resume, error)
	GetByIDForOwner(ctx context.Context, userID, resumeID string) (Resume, error)
	// UpdateByIDForOwner shallow-merges patch into the stored fields.
	// Reserved keys in the patch are dropped.
	UpdateByIDForOwner(ctx context.Context, userID, resumeID string, patch map[string]any) (Resume, error)
	// DeleteByIDForOwner is idempotent; deleting an absent record succeeds.
	DeleteByIDForOwner(ctx context.Context, userID, resumeID string) error
}
