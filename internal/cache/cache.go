package cache

import (
	"context"
	"time"
)

// Cache stores string lists under a key with an absolute expiry.
// Returned slices belong to the caller.
type Cache interface {
	// Get returns false when the key is missing or expired.
	Get(ctx context.Context, key string) ([]string, bool, error)
	Set(ctx context.Context, key string, value []string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}
