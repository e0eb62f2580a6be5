package repository

import "context"

// CacheRepository stores parsed mortgage commands keyed by their normalized
// text. Misses and backend failures are both reported as ok == false.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
