package repo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/parcel-intake/internal/domain"
	"github.com/pkordes/parcel-intake/internal/repo"
	"github.com/pkordes/parcel-intake/internal/workflow"
)

func newEntry(at time.Time) *repo.SessionEntry {
	return repo.NewSessionEntry(workflow.New(uuid.New(), workflow.WithClock(func() time.Time { return at })))
}

func TestSessionRepo_PutGet(t *testing.T) {
	sessions := repo.NewSessionRepo(time.Minute, nil)
	ctx := context.Background()
	e := newEntry(time.Now())

	sessions.Put(ctx, e)
	got, err := sessions.Get(ctx, e.ID)

	require.NoError(t, err)
	assert.Same(t, e, got)
	assert.Equal(t, 1, sessions.Count(ctx))
}

func TestSessionRepo_Get_NotFound(t *testing.T) {
	sessions := repo.NewSessionRepo(time.Minute, nil)

	_, err := sessions.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionRepo_Delete(t *testing.T) {
	var (
		mu      sync.Mutex
		evicted []uuid.UUID
	)
	sessions := repo.NewSessionRepo(time.Minute, func(e *repo.SessionEntry) {
		mu.Lock()
		defer mu.Unlock()
		evicted = append(evicted, e.ID)
	})
	ctx := context.Background()
	e := newEntry(time.Now())
	sessions.Put(ctx, e)

	require.NoError(t, sessions.Delete(ctx, e.ID))

	_, err := sessions.Get(ctx, e.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, sessions.Delete(ctx, e.ID), domain.ErrNotFound)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []uuid.UUID{e.ID}, evicted)
}

func TestSessionRepo_Expires(t *testing.T) {
	sessions := repo.NewSessionRepo(20*time.Millisecond, nil)
	ctx := context.Background()
	e := newEntry(time.Now())
	sessions.Put(ctx, e)

	// List does not refresh expiry, Get does.
	assert.Eventually(t, func() bool {
		return len(sessions.List(ctx)) == 0
	}, time.Second, 10*time.Millisecond)
	_, err := sessions.Get(ctx, e.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionRepo_Get_NeverRevivesEvictedEntry(t *testing.T) {
	var (
		mu      sync.Mutex
		evicted int
	)
	sessions := repo.NewSessionRepo(100*time.Millisecond, func(*repo.SessionEntry) {
		mu.Lock()
		defer mu.Unlock()
		evicted++
	})
	ctx := context.Background()
	e := newEntry(time.Now())
	sessions.Put(ctx, e)

	// Concurrent readers keep refreshing the entry across a cleanup pass.
	// Once they stop it must expire and be evicted exactly once.
	deadline := time.Now().Add(1200 * time.Millisecond)
	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(deadline) {
				_, _ = sessions.Get(ctx, e.ID)
				time.Sleep(time.Duration(20+5*i) * time.Millisecond)
			}
		}()
	}
	wg.Wait()
	mu.Lock()
	assert.Zero(t, evicted, "refreshed entry was evicted")
	mu.Unlock()

	time.Sleep(150 * time.Millisecond)
	_, err := sessions.Get(ctx, e.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return evicted == 1
	}, 3*time.Second, 20*time.Millisecond)

	// Once evicted, the entry stays gone and is not reported again.
	_, err = sessions.Get(ctx, e.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, sessions.Count(ctx))
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, evicted)
}

func TestSessionRepo_List_OrderedByCreation(t *testing.T) {
	sessions := repo.NewSessionRepo(time.Minute, nil)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	third := newEntry(base.Add(2 * time.Minute))
	first := newEntry(base)
	second := newEntry(base.Add(time.Minute))
	for _, e := range []*repo.SessionEntry{third, first, second} {
		sessions.Put(ctx, e)
	}

	got := sessions.List(ctx)

	require.Len(t, got, 3)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
	assert.Equal(t, third.ID, got[2].ID)
}

func TestSessionEntry_StopTimer(t *testing.T) {
	e := newEntry(time.Now())
	fired := make(chan struct{}, 1)
	e.Timer = time.AfterFunc(50*time.Millisecond, func() { fired <- struct{}{} })

	e.Lock()
	e.StopTimer()
	e.Unlock()

	assert.Nil(t, e.Timer)
	select {
	case <-fired:
		t.Fatal("timer fired after StopTimer")
	case <-time.After(100 * time.Millisecond):
	}
}
