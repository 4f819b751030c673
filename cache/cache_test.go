package cache

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datejp/dateinfo/internal"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCacheRoundTrip(t *testing.T) {
	t.Parallel()

	store := &internal.MockStore{}
	c := New(store, DefaultTTL)

	c.Put("2024-01-01", Entry{Status: StatusHoliday, Name: "元日", Type: "national_holiday"})

	got, ok := c.Get("2024-01-01")
	require.True(t, ok)
	assert.Equal(t, StatusHoliday, got.Status)
	assert.Equal(t, "元日", got.Name)
	assert.Equal(t, "national_holiday", got.Type)
	assert.NotZero(t, got.Timestamp)

	_, ok = c.Get("2024-01-02")
	assert.False(t, ok)
}

func TestCacheTTLExpiry(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	store := &internal.MockStore{}
	c := New(store, DefaultTTL)

	c.now = fixedClock(t0)
	c.Put("2024-01-01", Entry{Status: StatusNotHoliday})

	c.now = fixedClock(t0.Add(119 * 24 * time.Hour))
	_, ok := c.Get("2024-01-01")
	assert.True(t, ok, "entry within the TTL should be fresh")

	c.now = fixedClock(t0.Add(121 * 24 * time.Hour))
	_, ok = c.Get("2024-01-01")
	assert.False(t, ok, "entry beyond the TTL should be treated as absent")

	// lazy invalidation leaves the stale entry in storage
	assert.Equal(t, 1, store.SaveCount)
	assert.NotEmpty(t, store.Blob)
}

func TestCacheCorruptedBlobSelfHeals(t *testing.T) {
	t.Parallel()

	store := &internal.MockStore{Blob: []byte("{broken json")}
	c := New(store, DefaultTTL)

	_, ok := c.Get("2024-01-01")
	assert.False(t, ok, "a corrupted blob should read as an empty mapping")

	c.Put("2024-01-01", Entry{Status: StatusNotHoliday})

	_, ok = c.Get("2024-01-01")
	assert.True(t, ok, "the next successful write should heal the blob")
}

func TestCachePersistenceFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	store := &internal.MockStore{SaveErr: errors.New("quota exceeded")}
	c := New(store, DefaultTTL)

	// must not panic or propagate
	c.Put("2024-01-01", Entry{Status: StatusHoliday, Name: "元日"})

	_, ok := c.Get("2024-01-01")
	assert.False(t, ok, "a failed write leaves the cache unchanged")
	assert.Equal(t, 1, store.SaveCount)
}

func TestCacheLoadFailureReadsAsEmpty(t *testing.T) {
	t.Parallel()

	store := &internal.MockStore{LoadErr: errors.New("io error")}
	c := New(store, DefaultTTL)

	_, ok := c.Get("2024-01-01")
	assert.False(t, ok)
}

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := &FileStore{Path: t.TempDir() + "/sub/holiday_cache.json"}

	blob, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, blob, "a missing file loads as an empty blob")

	require.NoError(t, store.Save([]byte(`{"k":1}`)))

	blob, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"k":1}`), blob)
}
