package account

import (
	"context"
	"errors"
	"strings"

	"resume-builder/internal/exports"
	"resume-builder/internal/shared/storage/kv"
)

// Service moves data created under a guest identity to a signed-in user.
type Service struct {
	Store   kv.Store
	Slot    string
	Exports exports.Repo
}

// ClaimResult reports what was moved.
type ClaimResult struct {
	MigratedResume  bool `json:"migratedResume"`
	MigratedExports int  `json:"migratedExports"`
}

func NewService(store kv.Store, slot string, exportsRepo exports.Repo) *Service {
	return &Service{Store: store, Slot: slot, Exports: exportsRepo}
}

// ClaimGuest copies the guest's saved resume into the user's slot unless the
// user already has one, and reassigns the guest's export history.
func (s *Service) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (ClaimResult, error) {
	if strings.TrimSpace(guestUserID) == "" || strings.TrimSpace(authedUserID) == "" {
		return ClaimResult{}, errors.New("guestUserID and authedUserID are required")
	}

	migrated, err := s.claimResume(ctx, guestUserID, authedUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	exportCount, err := claimExports(ctx, s.Exports, guestUserID, authedUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	return ClaimResult{MigratedResume: migrated, MigratedExports: exportCount}, nil
}

func (s *Service) claimResume(ctx context.Context, guestUserID, authedUserID string) (bool, error) {
	guestKey := kv.SlotKey(s.Slot, guestUserID)
	text, err := s.Store.Get(ctx, guestKey)
	if errors.Is(err, kv.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	userKey := kv.SlotKey(s.Slot, authedUserID)
	if _, err := s.Store.Get(ctx, userKey); err == nil {
		return false, nil
	} else if !errors.Is(err, kv.ErrNotFound) {
		return false, err
	}

	if err := s.Store.Set(ctx, userKey, text); err != nil {
		return false, err
	}
	if err := s.Store.Delete(ctx, guestKey); err != nil {
		return false, err
	}
	return true, nil
}

type guestExportClaimer interface {
	ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error)
}

func claimExports(ctx context.Context, repo exports.Repo, guestUserID, authedUserID string) (int, error) {
	if repo == nil {
		return 0, nil
	}
	if claimer, ok := repo.(guestExportClaimer); ok {
		return claimer.ClaimGuest(ctx, guestUserID, authedUserID)
	}
	return 0, errors.New("exports repo does not support claim")
}
