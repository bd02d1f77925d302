package main

import (
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/jerrychoi/bookroad/internal/respcache"
	"github.com/jerrychoi/bookroad/pkg/aladin"
)

// newResponseCache builds the two-tier response cache from config.
func newResponseCache() (*respcache.Cache, error) {
	store, err := respcache.NewSQLite(cfg.Cache.Path)
	if err != nil {
		return nil, eris.Wrap(err, "open cache store")
	}
	cache, err := respcache.New(store, respcache.Options{
		TTL:               time.Duration(cfg.Cache.TTLHours) * time.Hour,
		MemoryEntries:     cfg.Cache.MemoryEntries,
		UserAgent:         cfg.Cache.UserAgent,
		RequestsPerSecond: rate.Limit(cfg.Cache.RequestsPerSecond),
		Burst:             cfg.Cache.Burst,
	})
	if err != nil {
		store.Close()
		return nil, eris.Wrap(err, "init response cache")
	}
	return cache, nil
}

// newCatalogClient builds the Aladin client over the response cache.
// The returned cleanup closes the cache's durable tier.
func newCatalogClient() (aladin.Client, func(), error) {
	if err := cfg.Validate("catalog"); err != nil {
		return nil, nil, err
	}

	cache, err := newResponseCache()
	if err != nil {
		return nil, nil, err
	}

	var opts []aladin.Option
	if cfg.Aladin.UseProxy {
		// WithProxy drops the key; the proxy injects it server-side.
		opts = append(opts, aladin.WithProxy(cfg.Aladin.ProxyBaseURL))
	} else if cfg.Aladin.BaseURL != "" {
		opts = append(opts, aladin.WithBaseURL(cfg.Aladin.BaseURL))
	}

	client := aladin.NewClient(cache, cfg.Aladin.TTBKey, opts...)
	return client, func() { _ = cache.Close() }, nil
}
