package respcache

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLite(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newCountingServer(t *testing.T, body string) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestFetchSecondCallServedFromCache(t *testing.T) {
	srv, hits := newCountingServer(t, `{"totalResults":1}`)
	cache, err := New(newTestStore(t), Options{})
	require.NoError(t, err)

	ctx := context.Background()
	first, err := cache.Fetch(ctx, srv.URL+"/ItemSearch.aspx?Query=a")
	require.NoError(t, err)
	second, err := cache.Fetch(ctx, srv.URL+"/ItemSearch.aspx?Query=a")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), hits.Load())
}

func TestFetchDistinctURLsAreDistinctEntries(t *testing.T) {
	srv, hits := newCountingServer(t, `{}`)
	cache, err := New(newTestStore(t), Options{})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = cache.Fetch(ctx, srv.URL+"/ItemSearch.aspx?Query=a&start=1")
	require.NoError(t, err)
	_, err = cache.Fetch(ctx, srv.URL+"/ItemSearch.aspx?Query=a&start=2")
	require.NoError(t, err)

	assert.Equal(t, int64(2), hits.Load())
}

func TestFetchPromotesDurableHitToMemory(t *testing.T) {
	srv, hits := newCountingServer(t, `{"startIndex":1}`)
	store := newTestStore(t)

	warm, err := New(store, Options{})
	require.NoError(t, err)
	_, err = warm.Fetch(context.Background(), srv.URL+"/ItemList.aspx")
	require.NoError(t, err)

	// Fresh cache over the same store: empty memory tier, warm disk.
	cold, err := New(store, Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, cold.MemoryLen())

	body, err := cold.Fetch(context.Background(), srv.URL+"/ItemList.aspx")
	require.NoError(t, err)
	assert.Equal(t, `{"startIndex":1}`, string(body))
	assert.Equal(t, int64(1), hits.Load())
	assert.Equal(t, 1, cold.MemoryLen())
}

func TestFetchRefetchesAfterTTL(t *testing.T) {
	srv, hits := newCountingServer(t, `{}`)
	store := newTestStore(t)

	base := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	now := base
	clock := func() time.Time { return now }

	warm, err := New(store, Options{Now: clock})
	require.NoError(t, err)
	_, err = warm.Fetch(context.Background(), srv.URL+"/x")
	require.NoError(t, err)
	require.Equal(t, int64(1), hits.Load())

	// Just inside the TTL: durable hit, no network.
	now = base.Add(DefaultTTL - time.Second)
	inside, err := New(store, Options{Now: clock})
	require.NoError(t, err)
	_, err = inside.Fetch(context.Background(), srv.URL+"/x")
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits.Load())

	// At the TTL boundary: treated as absent, refetched.
	now = base.Add(DefaultTTL)
	outside, err := New(store, Options{Now: clock})
	require.NoError(t, err)
	_, err = outside.Fetch(context.Background(), srv.URL+"/x")
	require.NoError(t, err)
	assert.Equal(t, int64(2), hits.Load())
}

func TestFetchNon2xxIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	cache, err := New(newTestStore(t), Options{})
	require.NoError(t, err)

	_, err = cache.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNetwork))
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string, time.Time, time.Duration) ([]byte, bool, error) {
	return nil, false, errors.New("disk on fire")
}

func (brokenStore) Put(context.Context, string, []byte, time.Time) error {
	return errors.New("disk on fire")
}

func (brokenStore) PurgeExpired(context.Context, time.Time, time.Duration) (int, error) {
	return 0, errors.New("disk on fire")
}

func (brokenStore) Count(context.Context) (int, error) { return 0, errors.New("disk on fire") }

func (brokenStore) Close() error { return nil }

func TestFetchSurvivesDurableTierFailure(t *testing.T) {
	srv, hits := newCountingServer(t, `{"itemsPerPage":50}`)

	cache, err := New(brokenStore{}, Options{})
	require.NoError(t, err)

	// Read failure is a miss, write failure is swallowed.
	body, err := cache.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, `{"itemsPerPage":50}`, string(body))
	assert.Equal(t, int64(1), hits.Load())

	// Memory tier still works on the second call.
	_, err = cache.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits.Load())
}

func TestPurgeExpired(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Put(ctx, "old", []byte("a"), base))
	require.NoError(t, store.Put(ctx, "new", []byte("b"), base.Add(23*time.Hour)))

	cache, err := New(store, Options{Now: func() time.Time { return base.Add(24 * time.Hour) }})
	require.NoError(t, err)

	n, err := cache.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	left, err := cache.DurableCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, left)
}

func TestMemoryTierIsBounded(t *testing.T) {
	srv, _ := newCountingServer(t, `{}`)
	cache, err := New(newTestStore(t), Options{MemoryEntries: 2})
	require.NoError(t, err)

	ctx := context.Background()
	for _, q := range []string{"a", "b", "c"} {
		_, err := cache.Fetch(ctx, srv.URL+"/?q="+q)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, cache.MemoryLen())
}
