// Package viewcache keeps computed dashboard views keyed by their path.
//
// Writers never update a cached view; they revalidate its path, which drops the
// entry so the next read recomputes it. Every revalidation also bumps the path's
// version. A reader takes the version before querying and hands it to Set, which
// discards the view if a revalidation happened in between.
package viewcache

import (
	"context"
	"time"
)

// NoVersion never matches a stored version, so a Set carrying it is dropped.
const NoVersion int64 = -1

type Cache interface {
	Get(ctx context.Context, path string) ([]byte, bool)
	Version(ctx context.Context, path string) int64
	Set(ctx context.Context, path string, version int64, data []byte)
	RevalidatePath(ctx context.Context, path string) error
}

type Config struct {
	Driver       string // "memory" | "redis"
	RedisAddress string
	TTL          time.Duration
}

func New(cfg Config) (Cache, error) {
	switch cfg.Driver {
	case "redis":
		return NewRedis(cfg.RedisAddress, cfg.TTL)
	default:
		return NewMemory(cfg.TTL), nil
	}
}

func key(path string) string {
	return "view:" + path
}

func versionKey(path string) string {
	return "viewver:" + path
}
