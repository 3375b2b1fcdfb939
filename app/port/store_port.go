package port

//go:generate mockgen -source=store_port.go -destination=../mocks/mock_store_port.go

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KVStore.Get for a missing key.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the local persistent key-value storage backing the session and
// preferences caches. Each cache writes under its own fixed key; values are
// always full, validated snapshots.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
