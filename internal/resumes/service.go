package resumes

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"resume-vault/internal/shared/metrics"
)

// Service contains business logic for resumes. Every operation requires the
// resolved owner id from the auth guard.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create persists a new resume owned by userID and returns the full record.
func (s *Service) Create(ctx context.Context, userID string, fields map[string]any) (Resume, error) {
	if userID == "" {
		return Resume{}, errors.New("user id required")
	}
	resume := Resume{
		ID:     uuid.NewString(),
		UserID: userID,
		Fields: sanitizeFields(fields),
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	metrics.IncResumeCreated()
	return resume, nil
}

// List returns all resumes owned by userID in insertion order.
func (s *Service) List(ctx context.Context, userID string) ([]Resume, error) {
	return s.Repo.ListByOwner(ctx, userID)
}

// Get returns the resume with the given id if userID owns it.
func (s *Service) Get(ctx context.Context, userID, resumeID string) (Resume, error) {
	return s.Repo.GetByIDForOwner(ctx, userID, resumeID)
}

// Update shallow-merges patch into the resume and returns the result.
func (s *Service) Update(ctx context.Context, userID, resumeID string, patch map[string]any) (Resume, error) {
	resume, err := s.Repo.UpdateByIDForOwner(ctx, userID, resumeID, patch)
	if err != nil {
		return Resume{}, err
	}
	metrics.IncResumeUpdated()
	return resume, nil
}

// Delete removes the resume. Deleting an absent or foreign record is a
// successful no-op.
func (s *Service) Delete(ctx context.Context, userID, resumeID string) error {
	if err := s.Repo.DeleteByIDForOwner(ctx, userID, resumeID); err != nil {
		return err
	}
	metrics.IncResumeDeleted()
	return nil
}
