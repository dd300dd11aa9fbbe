package exports

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores export records in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	byID   map[string]Export
	byUser map[string][]Export
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[string]Export),
		byUser: make(map[string][]Export),
	}
}

// Create stores the export record.
func (r *MemoryRepo) Create(ctx context.Context, export Export) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[export.ID] = export
	r.byUser[export.UserID] = append(r.byUser[export.UserID], export)
	return nil
}

// GetByID returns an export by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, exportID string) (Export, error) {
	if err := ctx.Err(); err != nil {
		return Export{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	export, ok := r.byID[exportID]
	if !ok {
		return Export{}, ErrNotFound
	}
	if export.UserID != userID {
		return Export{}, ErrForbidden
	}
	return export, nil
}

// ListByUser returns exports for a user, newest first, with limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Export, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit, offset = clampPage(limit, offset)

	r.mu.RLock()
	own := make([]Export, len(r.byUser[userID]))
	copy(own, r.byUser[userID])
	r.mu.RUnlock()

	if offset >= len(own) {
		return []Export{}, nil
	}
	sort.SliceStable(own, func(i, j int) bool {
		return own[i].CreatedAt.After(own[j].CreatedAt)
	})

	end := len(own)
	if offset+limit < end {
		end = offset + limit
	}
	return own[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)

// ClaimGuest moves every export of guestUserID to authedUserID.
func (r *MemoryRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	moved := r.byUser[guestUserID]
	for _, e := range moved {
		e.UserID = authedUserID
		r.byID[e.ID] = e
		r.byUser[authedUserID] = append(r.byUser[authedUserID], e)
	}
	delete(r.byUser, guestUserID)
	return len(moved), nil
}
