package viewcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Minute)

	_, ok := c.Get(ctx, "/dashboard")
	assert.False(t, ok)

	c.Set(ctx, "/dashboard", c.Version(ctx, "/dashboard"), []byte(`{"numberOfInvoices":1}`))
	c.Set(ctx, "/dashboard/invoices", c.Version(ctx, "/dashboard/invoices"), []byte(`[]`))

	data, ok := c.Get(ctx, "/dashboard")
	require.True(t, ok)
	assert.Equal(t, `{"numberOfInvoices":1}`, string(data))

	require.NoError(t, c.RevalidatePath(ctx, "/dashboard"))
	_, ok = c.Get(ctx, "/dashboard")
	assert.False(t, ok)

	_, ok = c.Get(ctx, "/dashboard/invoices")
	assert.True(t, ok, "revalidating one path must leave others cached")

	require.NoError(t, c.RevalidatePath(ctx, "/never-cached"))
}

func TestMemory_SetAfterRevalidationIsDropped(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Minute)

	version := c.Version(ctx, "/dashboard")
	require.NoError(t, c.RevalidatePath(ctx, "/dashboard"))
	c.Set(ctx, "/dashboard", version, []byte("computed before the write"))

	_, ok := c.Get(ctx, "/dashboard")
	assert.False(t, ok)

	version = c.Version(ctx, "/dashboard")
	assert.Equal(t, int64(1), version)
	c.Set(ctx, "/dashboard", version, []byte("fresh"))

	data, ok := c.Get(ctx, "/dashboard")
	require.True(t, ok)
	assert.Equal(t, "fresh", string(data))
}

func TestMemory_NoVersionIsDropped(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Minute)

	c.Set(ctx, "/dashboard", NoVersion, []byte("x"))

	_, ok := c.Get(ctx, "/dashboard")
	assert.False(t, ok)
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(20 * time.Millisecond)

	c.Set(ctx, "/dashboard", 0, []byte("x"))
	time.Sleep(40 * time.Millisecond)

	_, ok := c.Get(ctx, "/dashboard")
	assert.False(t, ok)
}

func TestNew(t *testing.T) {
	c, err := New(Config{Driver: "memory", TTL: time.Minute})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, c)
}
