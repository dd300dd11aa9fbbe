package exports

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestMemoryRepoListsNewestFirstWithPaging(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		e := Export{ID: fmt.Sprintf("e%d", i), UserID: "u1", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if err := repo.Create(ctx, Export{ID: "other", UserID: "u2", CreatedAt: base}); err != nil {
		t.Fatalf("create: %v", err)
	}

	page, err := repo.ListByUser(ctx, "u1", 2, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page) != 2 || page[0].ID != "e3" || page[1].ID != "e2" {
		t.Fatalf("unexpected page: %+v", page)
	}

	past, err := repo.ListByUser(ctx, "u1", 10, 10)
	if err != nil || len(past) != 0 {
		t.Fatalf("expected empty page past the end, got %v %v", past, err)
	}
}

func TestMemoryRepoGetByIDChecksOwner(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	if err := repo.Create(ctx, Export{ID: "e1", UserID: "u1"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.GetByID(ctx, "u2", "e1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := repo.GetByID(ctx, "u1", "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepoHonorsCanceledContext(t *testing.T) {
	repo := NewMemoryRepo()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := repo.Create(ctx, Export{ID: "e1", UserID: "u1"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMemoryRepoClaimGuest(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	for _, id := range []string{"e1", "e2"} {
		if err := repo.Create(ctx, Export{ID: id, UserID: "guest:abc"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	n, err := repo.ClaimGuest(ctx, "guest:abc", "user-1")
	if err != nil || n != 2 {
		t.Fatalf("expected 2 claimed, got %d (%v)", n, err)
	}
	if _, err := repo.GetByID(ctx, "user-1", "e1"); err != nil {
		t.Fatalf("claimed export not owned by user: %v", err)
	}
	left, _ := repo.ListByUser(ctx, "guest:abc", 0, 0)
	if len(left) != 0 {
		t.Fatalf("guest still owns %d exports", len(left))
	}
}
