// Package kv is the persistence port for single-value slots: one text value
// per key, read and replaced whole.
package kv

import (
	"context"
	"errors"
	"strings"

	"resume-builder/internal/shared/util"
)

// ErrNotFound is returned by Get when nothing is stored under the key.
var ErrNotFound = errors.New("kv: key not found")

// Store reads and replaces text values by key.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// SlotKey namespaces slot per identity. The identity is hashed so raw user
// ids never reach the backing store.
func SlotKey(slot, identity string) string {
	slot = strings.TrimSpace(slot)
	if slot == "" {
		slot = "resumeData"
	}
	return slot + ":" + util.HashUserKey(identity)
}
