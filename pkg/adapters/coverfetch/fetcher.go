// Package coverfetch downloads cover art over HTTP with a TTL cache.
package coverfetch

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"resty.dev/v3"

	"github.com/user/syncwall/pkg/ports"
)

// Defaults match the cover cache of the desktop client.
const (
	DefaultCacheSize = 100
	DefaultTTL       = 600 * time.Second
	DefaultTimeout   = 15 * time.Second
)

// Options configures a Fetcher.
type Options struct {
	CacheSize int
	TTL       time.Duration
	Timeout   time.Duration
	UserAgent string
}

// DefaultOptions returns the default fetcher options.
func DefaultOptions() Options {
	return Options{
		CacheSize: DefaultCacheSize,
		TTL:       DefaultTTL,
		Timeout:   DefaultTimeout,
		UserAgent: "syncwall",
	}
}

// Fetcher implements ports.AssetFetcher.
type Fetcher struct {
	client *resty.Client
	cache  *expirable.LRU[string, []byte]
	logger ports.Logger
}

// New creates a Fetcher. Zero option fields take their defaults.
func New(opts Options, logger ports.Logger) *Fetcher {
	def := DefaultOptions()
	if opts.CacheSize <= 0 {
		opts.CacheSize = def.CacheSize
	}
	if opts.TTL <= 0 {
		opts.TTL = def.TTL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = def.UserAgent
	}

	client := resty.New()
	client.SetTimeout(opts.Timeout)
	client.SetHeader("User-Agent", opts.UserAgent)
	client.SetHeader("Accept", "image/*")

	return &Fetcher{
		client: client,
		cache:  expirable.NewLRU[string, []byte](opts.CacheSize, nil, opts.TTL),
		logger: logger.WithComponent("coverfetch"),
	}
}

// Fetch returns the body stored at url, serving repeats from the cache
// until the entry expires. Failures wrap ports.ErrMissingAsset.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if data, ok := f.cache.Get(url); ok {
		f.logger.Debug("Cover cache hit: %s", url)
		return data, nil
	}

	f.logger.Debug("Fetching cover %s", url)
	res, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %v: %w", url, err, ports.ErrMissingAsset)
	}
	if res.IsError() {
		return nil, fmt.Errorf("fetch %s: %s: %w", url, res.Status(), ports.ErrMissingAsset)
	}

	data := res.Bytes()
	if len(data) == 0 {
		return nil, fmt.Errorf("fetch %s: empty body: %w", url, ports.ErrMissingAsset)
	}

	f.cache.Add(url, data)
	return data, nil
}

// Cached reports how many live entries the cache holds.
func (f *Fetcher) Cached() int {
	return f.cache.Len()
}

// Close releases the underlying HTTP client.
func (f *Fetcher) Close() error {
	return f.client.Close()
}

// Ensure Fetcher implements ports.AssetFetcher
var _ ports.AssetFetcher = (*Fetcher)(nil)
