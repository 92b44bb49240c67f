package viewcache

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type Memory struct {
	c *gocache.Cache

	mu       sync.Mutex
	versions map[string]int64
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		c:        gocache.New(ttl, time.Minute),
		versions: make(map[string]int64),
	}
}

func (m *Memory) Get(_ context.Context, path string) ([]byte, bool) {
	v, ok := m.c.Get(key(path))
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

func (m *Memory) Version(_ context.Context, path string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.versions[path]
}

func (m *Memory) Set(_ context.Context, path string, version int64, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.versions[path] != version {
		return
	}
	m.c.SetDefault(key(path), data)
}

func (m *Memory) RevalidatePath(_ context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.versions[path]++
	m.c.Delete(key(path))
	return nil
}
