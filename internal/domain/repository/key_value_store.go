package repository

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned when a key is missing or has expired.
var ErrKeyNotFound = errors.New("key not found")

// ErrInvalidTTL is returned by Put when ttl is not positive. Every entry must expire.
var ErrInvalidTTL = errors.New("ttl must be positive")

// KeyValueStore is a TTL-bound store for short-lived state such as NFC
// challenges and one-time sessions. Every operation is atomic per key.
type KeyValueStore interface {
	// Put stores value under key, replacing any previous value. A ttl <= 0 is
	// rejected with ErrInvalidTTL.
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get returns the value under key.
	Get(ctx context.Context, key string) ([]byte, error)

	// GetAndDelete returns the value under key and removes it in one step.
	GetAndDelete(ctx context.Context, key string) ([]byte, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the resources held by the store.
	Close() error
}
