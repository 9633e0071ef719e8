package cache

import (
	"sync"
	"time"
)

// Time-to-live per fact kind.
const (
	GitStatusTTL = 2 * time.Second
	PathTTL      = 5 * time.Second
	ConfigTTL    = 60 * time.Second
)

// Clock returns the current time. Tests substitute a fake.
type Clock func() time.Time

// Entry is a cached value together with the instant it was captured.
// The zero Entry is empty.
type Entry[T any] struct {
	Value      T
	CapturedAt time.Time
	set        bool
}

// NewEntry returns an entry captured at the given instant.
func NewEntry[T any](v T, at time.Time) Entry[T] {
	return Entry[T]{Value: v, CapturedAt: at, set: true}
}

// Fresh reports whether the entry holds a value younger than ttl.
func (e Entry[T]) Fresh(now time.Time, ttl time.Duration) bool {
	if !e.set {
		return false
	}
	return now.Sub(e.CapturedAt) < ttl
}

// Value is a mutex-guarded cache slot with a fixed TTL.
type Value[T any] struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   Clock
	entry Entry[T]
}

// New creates an empty slot. A nil clock means time.Now.
func New[T any](ttl time.Duration, now Clock) *Value[T] {
	if now == nil {
		now = time.Now
	}
	return &Value[T]{ttl: ttl, now: now}
}

// Get returns the cached value if it is still fresh.
func (v *Value[T]) Get() (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.entry.Fresh(v.now(), v.ttl) {
		return v.entry.Value, true
	}
	var zero T
	return zero, false
}

// Set stores val captured now.
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.entry = NewEntry(val, v.now())
}

// GetOrLoad returns the fresh cached value, or calls load and caches its
// result when load reports ok. A result with ok == false is returned to the
// caller but not stored.
//
// The lock is held while load runs.
func (v *Value[T]) GetOrLoad(load func() (T, bool)) (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.entry.Fresh(v.now(), v.ttl) {
		return v.entry.Value, true
	}

	val, ok := load()
	if ok {
		v.entry = NewEntry(val, v.now())
	}
	return val, ok
}
