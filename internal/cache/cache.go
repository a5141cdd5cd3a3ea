package cache

import (
	"context"
	"time"
)

// CountsKey holds the aggregate dashboard counts. Every successful mutation
// on a counted collection deletes it; otherwise it expires after CountsTTL.
const (
	CountsKey = "portfolio:counts"
	CountsTTL = 5 * time.Minute
)

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
