package cache_test

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentportal/portal/internal/cache"
)

func newMockCache(t *testing.T) (*cache.Cache, *clock.Mock) {
	t.Helper()

	clk := clock.NewMock()

	return cache.New(5*time.Minute, 6*time.Hour, cache.WithClock(clk)), clk
}

func TestSetThenGet(t *testing.T) {
	t.Parallel()

	c, _ := newMockCache(t)

	c.Set("notes:u1:7", []byte("payload"), c.TTLFor(cache.ClassShort))

	v, found := c.Get("notes:u1:7")
	require.True(t, found)
	assert.Equal(t, []byte("payload"), v)
}

func TestGetAfterTTLElapses(t *testing.T) {
	t.Parallel()

	c, clk := newMockCache(t)

	c.Set("k", "v", 30*time.Second)

	clk.Add(29 * time.Second)

	_, found := c.Get("k")
	assert.True(t, found, "entry must live until its ttl")

	clk.Add(time.Second)

	_, found = c.Get("k")
	assert.False(t, found, "entry must be absent once now reaches expiresAt")
	assert.Equal(t, 0, c.Len(), "stale entry is dropped on lookup")
}

func TestSetOverwritesAndExtends(t *testing.T) {
	t.Parallel()

	c, clk := newMockCache(t)

	c.Set("k", "first", time.Minute)
	clk.Add(50 * time.Second)
	c.Set("k", "second", time.Minute)
	clk.Add(50 * time.Second)

	v, found := c.Get("k")
	require.True(t, found)
	assert.Equal(t, "second", v)
}

func TestNonPositiveTTLSkips(t *testing.T) {
	t.Parallel()

	c, _ := newMockCache(t)

	c.Set("zero", "v", 0)
	c.Set("negative", "v", -time.Second)

	_, found := c.Get("zero")
	assert.False(t, found)

	_, found = c.Get("negative")
	assert.False(t, found)
}

func TestTTLClasses(t *testing.T) {
	t.Parallel()

	c, clk := newMockCache(t)

	assert.Equal(t, 5*time.Minute, c.TTLFor(cache.ClassShort))
	assert.Equal(t, 6*time.Hour, c.TTLFor(cache.ClassStatic))
	assert.Equal(t, time.Duration(0), c.TTLFor(cache.Class(42)))

	c.Set(cache.MakeLogoKey("12"), []byte{0x89}, c.TTLFor(cache.ClassStatic))
	c.Set(cache.MakeGroupsKey("u1", "7", "f1"), "groups", c.TTLFor(cache.ClassShort))

	clk.Add(10 * time.Minute)

	_, found := c.Get(cache.MakeGroupsKey("u1", "7", "f1"))
	assert.False(t, found)

	_, found = c.Get(cache.MakeLogoKey("12"))
	assert.True(t, found)
}

func TestDisabledClass(t *testing.T) {
	t.Parallel()

	c := cache.New(0, time.Hour)

	assert.True(t, c.IsEnabled())

	c.Set("k", "v", c.TTLFor(cache.ClassShort))

	_, found := c.Get("k")
	assert.False(t, found)

	assert.False(t, cache.New(0, 0).IsEnabled())
}

func TestInvalidateUserCache(t *testing.T) {
	t.Parallel()

	c, _ := newMockCache(t)

	c.Set(cache.MakeNotesKey("u1", "7", "f1"), "n", time.Minute)
	c.Set(cache.MakeGroupsKey("u1", "7", "f1"), "g", time.Minute)
	c.Set(cache.MakeNotesKey("u1", "7", "f2"), "other session", time.Minute)
	c.Set(cache.MakeProfileImageKey("abc", "f1"), "img", time.Minute)

	cache.InvalidateUserCache(c, "u1", "7", "f1")

	_, found := c.Get(cache.MakeNotesKey("u1", "7", "f1"))
	assert.False(t, found)

	_, found = c.Get(cache.MakeGroupsKey("u1", "7", "f1"))
	assert.False(t, found)

	_, found = c.Get(cache.MakeNotesKey("u1", "7", "f2"))
	assert.True(t, found)

	_, found = c.Get(cache.MakeProfileImageKey("abc", "f1"))
	assert.True(t, found)
}

func TestKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "notes:u1:7:f1", cache.MakeNotesKey("u1", "7", "f1"))
	assert.Equal(t, "groups:u1:7:f1", cache.MakeGroupsKey("u1", "7", "f1"))
	assert.Equal(t, "profile-image:abc:f1", cache.MakeProfileImageKey("abc", "f1"))
	assert.Equal(t, "logo:12", cache.MakeLogoKey("12"))
}

func TestTokenFingerprint(t *testing.T) {
	t.Parallel()

	a := cache.TokenFingerprint("Bearer a.b.c")

	assert.Len(t, a, 32)
	assert.Equal(t, a, cache.TokenFingerprint("Bearer a.b.c"))
	assert.NotEqual(t, a, cache.TokenFingerprint("forged"))
	assert.NotContains(t, a, "Bearer")
}
