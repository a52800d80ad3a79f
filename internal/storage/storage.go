// Package storage defines the key-value persistence contract the stores
// write their snapshots to, plus in-memory and SQLite-backed
// implementations. Keys are strings, values are serialized JSON.
package storage

import "context"

// Repository is the persistence collaborator consumed by the stores.
//
// Get returns (nil, nil) when the key is absent; callers treat a nil value
// as "no snapshot yet". Set overwrites unconditionally.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Keys under which each store persists its slice of state. The three
// slices are independent: every store serializes and loads only its own key.
const (
	KeyTheme = "theme"
	KeyUsers = "users"
	KeyTasks = "tasks"
)
