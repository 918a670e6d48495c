// Package storage abstracts the key-value store used to persist the
// seat selection between sessions.  The interface keeps the selection
// store testable against an in-memory fake while production runs on
// Redis.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has no value.
var ErrKeyNotFound = errors.New("key not found")

// ErrQuotaExceeded is returned by Set when the backing store refuses
// the write for lack of space.  Callers decide the recovery policy.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// KVStore is the minimal key-value contract the selection store needs:
// read a string, write a string, delete a key.  Writes either succeed
// or fail immediately; there is no partial state.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
