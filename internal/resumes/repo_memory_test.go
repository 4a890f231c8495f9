package resumes

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestMemoryRepoListPreservesInsertionOrder(t *testing.T) {
	repo := NewMemoryRepo()

	for i := 0; i < 5; i++ {
		err := repo.Create(context.Background(), Resume{
			ID:     fmt.Sprintf("r%d", i),
			UserID: "u1",
			Fields: map[string]any{"n": i},
		})
		if err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	list, err := repo.ListByOwner(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(list) != 5 {
		t.Fatalf("expected 5 resumes, got %d", len(list))
	}
	for i, resume := range list {
		if resume.ID != fmt.Sprintf("r%d", i) {
			t.Fatalf("position %d: expected r%d, got %s", i, i, resume.ID)
		}
	}
}

func TestMemoryRepoOwnershipIsolation(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, Resume{ID: "r1", UserID: "alice", Fields: map[string]any{"title": "X"}}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := repo.GetByIDForOwner(ctx, "bob", "r1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get as non-owner: expected ErrNotFound, got %v", err)
	}
	if _, err := repo.UpdateByIDForOwner(ctx, "bob", "r1", map[string]any{"title": "stolen"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update as non-owner: expected ErrNotFound, got %v", err)
	}
	if err := repo.DeleteByIDForOwner(ctx, "bob", "r1"); err != nil {
		t.Fatalf("delete as non-owner should be a no-op: %v", err)
	}

	list, err := repo.ListByOwner(ctx, "bob")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list for non-owner, got %d", len(list))
	}

	// Owner still sees the record untouched.
	resume, err := repo.GetByIDForOwner(ctx, "alice", "r1")
	if err != nil {
		t.Fatalf("GetByIDForOwner: %v", err)
	}
	if resume.Fields["title"] != "X" {
		t.Fatalf("expected title X, got %v", resume.Fields["title"])
	}
}

func TestMemoryRepoUpdateMergesPartialFields(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, Resume{
		ID:     "r1",
		UserID: "u1",
		Fields: map[string]any{"title": "X", "summary": "Y"},
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := repo.UpdateByIDForOwner(ctx, "u1", "r1", map[string]any{"title": "Z"})
	if err != nil {
		t.Fatalf("UpdateByIDForOwner: %v", err)
	}
	if updated.Fields["title"] != "Z" {
		t.Fatalf("expected title Z, got %v", updated.Fields["title"])
	}
	if updated.Fields["summary"] != "Y" {
		t.Fatalf("expected summary Y untouched, got %v", updated.Fields["summary"])
	}
}

func TestMemoryRepoUpdateCannotOverwriteReservedKeys(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, Resume{ID: "r1", UserID: "u1", Fields: map[string]any{}}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := repo.UpdateByIDForOwner(ctx, "u1", "r1", map[string]any{
		"id":     "hijacked",
		"userId": "mallory",
		"title":  "ok",
	})
	if err != nil {
		t.Fatalf("UpdateByIDForOwner: %v", err)
	}
	if updated.ID != "r1" || updated.UserID != "u1" {
		t.Fatalf("reserved keys overwritten: %+v", updated)
	}
	if _, ok := updated.Fields["userId"]; ok {
		t.Fatal("userId must not leak into fields")
	}
	if updated.Fields["title"] != "ok" {
		t.Fatalf("expected title ok, got %v", updated.Fields["title"])
	}

	// Ownership still intact after the attempted hijack.
	if _, err := repo.GetByIDForOwner(ctx, "mallory", "r1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for mallory, got %v", err)
	}
}

func TestMemoryRepoDeleteIsIdempotent(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, Resume{ID: "r1", UserID: "u1", Fields: map[string]any{}}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := repo.DeleteByIDForOwner(ctx, "u1", "r1"); err != nil {
			t.Fatalf("delete attempt %d: %v", i, err)
		}
	}
	if _, err := repo.GetByIDForOwner(ctx, "u1", "r1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
