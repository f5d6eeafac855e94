package repo

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/pkordes/parcel-intake/internal/domain"
	"github.com/pkordes/parcel-intake/internal/workflow"
)

// SessionEntry is a live registration session held in memory.
//
// The embedded mutex serializes events on Controller and guards Timer and
// Removed; callers must hold it for every access to them.
type SessionEntry struct {
	sync.Mutex

	ID         uuid.UUID
	CreatedAt  time.Time
	Controller *workflow.Controller

	// Timer is the pending auto-advance timer, if any.
	Timer *time.Timer

	// Removed is set when the session was closed or handed off. A holder of
	// a stale pointer must treat the entry as gone.
	Removed bool
}

// NewSessionEntry wraps c for storage.
func NewSessionEntry(c *workflow.Controller) *SessionEntry {
	s := c.Snapshot()
	return &SessionEntry{ID: s.ID, CreatedAt: s.CreatedAt, Controller: c}
}

// StopTimer cancels the pending auto-advance timer. The caller holds the lock.
func (e *SessionEntry) StopTimer() {
	if e.Timer != nil {
		e.Timer.Stop()
		e.Timer = nil
	}
}

// SessionRepo stores live sessions. Finished registrations are not persisted
// here: they are handed to the submission sink and removed.
type SessionRepo interface {
	// Put stores e, replacing any entry with the same ID.
	Put(ctx context.Context, e *SessionEntry)

	// Get returns the entry and extends its idle expiry.
	// Returns domain.ErrNotFound if the session is unknown or expired.
	Get(ctx context.Context, id uuid.UUID) (*SessionEntry, error)

	// Delete removes the entry.
	// Returns domain.ErrNotFound if the session is unknown or expired.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns all live entries ordered by creation time.
	List(ctx context.Context) []*SessionEntry

	// Count returns the number of stored entries. Expired entries count
	// until the next cleanup pass.
	Count(ctx context.Context) int
}

// memSessionRepo is the go-cache implementation of SessionRepo.
type memSessionRepo struct {
	// mu makes get-and-refresh atomic with respect to Delete, so a refresh
	// never resurrects a session that was just removed.
	mu    sync.Mutex
	cache *gocache.Cache
}

// EvictFunc is called after an entry leaves the repo, whether it expired or
// was deleted. It may run with the repo lock held, so it must not call back
// into the repo or block on the entry's lock.
type EvictFunc func(e *SessionEntry)

// NewSessionRepo constructs an in-memory SessionRepo whose entries expire
// after ttl without activity. onEvict may be nil.
func NewSessionRepo(ttl time.Duration, onEvict EvictFunc) SessionRepo {
	cleanup := ttl / 2
	if cleanup < time.Second {
		cleanup = time.Second
	}
	c := gocache.New(ttl, cleanup)
	if onEvict != nil {
		c.OnEvicted(func(_ string, v interface{}) {
			if e, ok := v.(*SessionEntry); ok {
				onEvict(e)
			}
		})
	}
	return &memSessionRepo{cache: c}
}

func (r *memSessionRepo) Put(_ context.Context, e *SessionEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Set(e.ID.String(), e, gocache.DefaultExpiration)
}

func (r *memSessionRepo) Get(_ context.Context, id uuid.UUID) (*SessionEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	v, found := r.cache.Get(key)
	if !found {
		return nil, fmt.Errorf("repo.SessionRepo.Get: %w", domain.ErrNotFound)
	}
	e, ok := v.(*SessionEntry)
	if !ok {
		return nil, fmt.Errorf("repo.SessionRepo.Get: unexpected value type %T", v)
	}
	// Replace fails once the entry has expired or the janitor has evicted
	// it, so a refresh never resurrects an entry onEvict has already seen.
	if err := r.cache.Replace(key, e, gocache.DefaultExpiration); err != nil {
		return nil, fmt.Errorf("repo.SessionRepo.Get: %w", domain.ErrNotFound)
	}
	return e, nil
}

func (r *memSessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	if _, found := r.cache.Get(key); !found {
		return fmt.Errorf("repo.SessionRepo.Delete: %w", domain.ErrNotFound)
	}
	r.cache.Delete(key)
	return nil
}

func (r *memSessionRepo) List(_ context.Context) []*SessionEntry {
	items := r.cache.Items()
	entries := make([]*SessionEntry, 0, len(items))
	for _, item := range items {
		if e, ok := item.Object.(*SessionEntry); ok {
			entries = append(entries, e)
		}
	}
	slices.SortFunc(entries, func(a, b *SessionEntry) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return entries
}

func (r *memSessionRepo) Count(_ context.Context) int {
	return r.cache.ItemCount()
}
