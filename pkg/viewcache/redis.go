package viewcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	rdb "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// setIfVersion stores the view only while the path's version still equals the
// one the reader started from. A missing version key counts as 0.
var setIfVersion = rdb.NewScript(`
local current = redis.call('GET', KEYS[1]) or '0'
if current ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[2], ARGV[2])
end
return 1
`)

type Redis struct {
	c   *rdb.Client
	ttl time.Duration
}

func NewRedis(addr string, ttl time.Duration) (*Redis, error) {
	client := rdb.NewClient(&rdb.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("viewcache: redis ping failed: %w", err)
	}

	return &Redis{c: client, ttl: ttl}, nil
}

func (r *Redis) Get(ctx context.Context, path string) ([]byte, bool) {
	b, err := r.c.Get(ctx, key(path)).Bytes()
	if err != nil {
		if !errors.Is(err, rdb.Nil) {
			zap.L().Warn("view cache read failed", zap.String("path", path), zap.Error(err))
		}
		return nil, false
	}
	return b, true
}

func (r *Redis) Version(ctx context.Context, path string) int64 {
	v, err := r.c.Get(ctx, versionKey(path)).Int64()
	switch {
	case errors.Is(err, rdb.Nil):
		return 0
	case err != nil:
		zap.L().Warn("view cache version read failed", zap.String("path", path), zap.Error(err))
		return NoVersion
	}
	return v
}

func (r *Redis) Set(ctx context.Context, path string, version int64, data []byte) {
	if version == NoVersion {
		return
	}
	keys := []string{versionKey(path), key(path)}
	err := setIfVersion.Run(ctx, r.c, keys, version, data, r.ttl.Milliseconds()).Err()
	if err != nil {
		zap.L().Warn("view cache write failed", zap.String("path", path), zap.Error(err))
	}
}

// RevalidatePath bumps the version and drops the view in one MULTI block.
func (r *Redis) RevalidatePath(ctx context.Context, path string) error {
	_, err := r.c.TxPipelined(ctx, func(pipe rdb.Pipeliner) error {
		pipe.Incr(ctx, versionKey(path))
		pipe.Del(ctx, key(path))
		return nil
	})
	if err != nil {
		return fmt.Errorf("viewcache: revalidate %s: %w", path, err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.c.Close()
}
