// Package respcache is a keyed, TTL-bound response cache in front of the
// Aladin API: a bounded in-memory tier, a durable SQLite tier, then the
// network. The cache key is the fully resolved request URL, so differing
// pagination or query text always map to distinct entries.
package respcache

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrNetwork marks transport failures and non-2xx upstream responses.
// Callers test with errors.Is.
var ErrNetwork = errors.New("upstream request failed")

type networkError struct {
	err error
}

func (e *networkError) Error() string { return e.err.Error() }

func (e *networkError) Unwrap() []error { return []error{ErrNetwork, e.err} }

const (
	// DefaultTTL bounds how long a durable entry is served after its
	// last write.
	DefaultTTL = 24 * time.Hour

	// DefaultMemoryEntries bounds the memory tier; eviction order is
	// not a contract.
	DefaultMemoryEntries = 300

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "bookroad/1.0"
)

// Store is the durable tier. Reads past the TTL behave as misses and
// lazily delete the stale row.
type Store interface {
	Get(ctx context.Context, key string, now time.Time, ttl time.Duration) ([]byte, bool, error)
	Put(ctx context.Context, key string, body []byte, now time.Time) error
	PurgeExpired(ctx context.Context, now time.Time, ttl time.Duration) (int, error)
	Count(ctx context.Context) (int, error)
	Close() error
}

// Options configures a Cache. Zero values take defaults.
type Options struct {
	TTL           time.Duration
	MemoryEntries int
	UserAgent     string
	Timeout       time.Duration
	// RequestsPerSecond limits outbound fetches toward the upstream
	// API. Zero disables limiting (tests).
	RequestsPerSecond rate.Limit
	Burst             int
	// HTTPClient overrides the transport (tests).
	HTTPClient *http.Client
	// Now overrides the clock (tests).
	Now func() time.Time
}

// Cache is the process-wide response cache. Construct once and pass the
// handle to every consumer; it satisfies aladin.Fetcher.
type Cache struct {
	mem     *lru.Cache[string, []byte]
	store   Store
	http    *http.Client
	limiter *rate.Limiter
	ttl     time.Duration
	ua      string
	now     func() time.Time
}

// New creates a Cache over the given durable store.
func New(store Store, opts Options) (*Cache, error) {
	if opts.TTL == 0 {
		opts.TTL = DefaultTTL
	}
	if opts.MemoryEntries == 0 {
		opts.MemoryEntries = DefaultMemoryEntries
	}
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	mem, err := lru.New[string, []byte](opts.MemoryEntries)
	if err != nil {
		return nil, eris.Wrap(err, "respcache: memory tier")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst == 0 {
			burst = int(opts.RequestsPerSecond)
			if burst < 1 {
				burst = 1
			}
		}
		limiter = rate.NewLimiter(opts.RequestsPerSecond, burst)
	}

	return &Cache{
		mem:     mem,
		store:   store,
		http:    httpClient,
		limiter: limiter,
		ttl:     opts.TTL,
		ua:      opts.UserAgent,
		now:     opts.Now,
	}, nil
}

// Fetch returns the response body for rawURL: memory tier, then durable
// tier (promoting hits), then the network (writing both tiers). Durable
// tier failures are recovered locally: a read failure is a miss, a write
// failure never fails the fetch.
func (c *Cache) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if body, ok := c.mem.Get(rawURL); ok {
		return body, nil
	}

	now := c.now()
	body, ok, err := c.store.Get(ctx, rawURL, now, c.ttl)
	if err != nil {
		zap.L().Warn("respcache: durable read failed, treating as miss",
			zap.String("url", rawURL),
			zap.Error(err),
		)
	} else if ok {
		c.mem.Add(rawURL, body)
		return body, nil
	}

	body, err = c.download(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	c.mem.Add(rawURL, body)
	if err := c.store.Put(ctx, rawURL, body, c.now()); err != nil {
		zap.L().Warn("respcache: durable write failed",
			zap.String("url", rawURL),
			zap.Error(err),
		)
	}
	return body, nil
}

func (c *Cache) download(ctx context.Context, rawURL string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "respcache: rate limiter wait")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "respcache: create request")
	}
	req.Header.Set("User-Agent", c.ua)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(&networkError{err: err}, "respcache: fetch")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(&networkError{err: err}, "respcache: read body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, eris.Wrapf(&networkError{err: eris.Errorf("status %d", resp.StatusCode)},
			"respcache: fetch %s", rawURL)
	}

	return body, nil
}

// PurgeExpired removes every durable entry past the TTL.
func (c *Cache) PurgeExpired(ctx context.Context) (int, error) {
	return c.store.PurgeExpired(ctx, c.now(), c.ttl)
}

// DurableCount reports how many rows the durable tier holds.
func (c *Cache) DurableCount(ctx context.Context) (int, error) {
	return c.store.Count(ctx)
}

// MemoryLen reports the current memory-tier entry count.
func (c *Cache) MemoryLen() int { return c.mem.Len() }

// Close releases the durable tier.
func (c *Cache) Close() error { return c.store.Close() }
