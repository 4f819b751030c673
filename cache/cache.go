// Package cache persists holiday determinations with a soft TTL.
// Expired entries are ignored on read but never proactively purged.
package cache

import (
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/datejp/dateinfo/utils/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultTTL bounds how long a persisted holiday determination stays fresh.
const DefaultTTL = 120 * 24 * time.Hour

// Entry statuses persisted in the cache blob. Transient resolver errors
// are never written.
const (
	StatusHoliday    = "holiday"
	StatusNotHoliday = "not_holiday"
)

// Entry is one persisted holiday determination, keyed by the date's
// canonical "YYYY-MM-DD" string.
type Entry struct {
	Status    string `json:"status"`
	Name      string `json:"name,omitempty"`
	Type      string `json:"type,omitempty"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds at write time
}

// HolidayCache is a TTL-bounded mapping from date key to holiday
// determination, read-modify-written through a Store as a whole blob.
type HolidayCache struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

func New(store Store, ttl time.Duration) *HolidayCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &HolidayCache{store: store, ttl: ttl, now: time.Now}
}

// Get returns the entry for key, or false when the key is absent or the
// entry is older than the TTL. Stale entries are left in place
// (lazy invalidation).
func (c *HolidayCache) Get(key string) (Entry, bool) {
	entry, ok := c.load()[key]
	if !ok {
		return Entry{}, false
	}
	age := c.now().Sub(time.UnixMilli(entry.Timestamp))
	if age > c.ttl {
		log.Debug("holiday cache entry for %s is stale (age=%v), treating as absent", key, age)
		return Entry{}, false
	}
	return entry, true
}

// Put stamps the entry with the current time and writes the whole mapping
// back to the store. Persistence failures are logged and swallowed so the
// cache degrades to a no-op instead of failing the resolution.
func (c *HolidayCache) Put(key string, entry Entry) {
	entries := c.load()
	entry.Timestamp = c.now().UnixMilli()
	entries[key] = entry

	blob, err := json.Marshal(entries)
	if err != nil {
		log.Error("failed to serialize the holiday cache: %v", err)
		return
	}
	if err := c.store.Save(blob); err != nil {
		log.Error("failed to persist the holiday cache: %v", err)
	}
}

// load reads the persisted mapping. A missing or unparseable blob yields an
// empty mapping so that a corrupted store self-heals on the next Put.
func (c *HolidayCache) load() map[string]Entry {
	blob, err := c.store.Load()
	if err != nil {
		log.Warn("failed to load the holiday cache, starting empty: %v", err)
		return map[string]Entry{}
	}
	if len(blob) == 0 {
		return map[string]Entry{}
	}

	var entries map[string]Entry
	if err := json.Unmarshal(blob, &entries); err != nil {
		log.Warn("holiday cache blob is corrupted, resetting to empty: %v", err)
		return map[string]Entry{}
	}
	if entries == nil {
		return map[string]Entry{}
	}
	return entries
}
