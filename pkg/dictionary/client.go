package dictionary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/matzehuels/gridwords/pkg/cache"
	errs "github.com/matzehuels/gridwords/pkg/errors"
	"github.com/matzehuels/gridwords/pkg/observability"
)

const (
	httpTimeout  = 30 * time.Second
	maxBodySize  = 64 << 20
	retryCount   = 3
	cacheKeyType = "dictionary"
)

// Client downloads word lists, caching the response bodies.
type Client struct {
	http       *http.Client
	cache      cache.Cache
	keyer      cache.Keyer
	ttl        time.Duration
	headers    map[string]string
	retryDelay time.Duration
	maxBody    int64
}

// NewClient creates a Client. A nil cache disables caching; a nil keyer
// selects cache.DefaultKeyer. A ttl of 0 keeps entries until cleared.
func NewClient(c cache.Cache, keyer cache.Keyer, ttl time.Duration) *Client {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	return &Client{
		http:       &http.Client{Timeout: httpTimeout},
		cache:      c,
		keyer:      keyer,
		ttl:        ttl,
		headers:    map[string]string{"User-Agent": "gridwords"},
		retryDelay: time.Second,
		maxBody:    maxBodySize,
	}
}

// Fetch returns the body at rawURL, from the cache when possible.
// If refresh is true, the cache is bypassed and the fresh body replaces any
// cached one.
func (c *Client) Fetch(ctx context.Context, rawURL string, refresh bool) ([]byte, error) {
	key := c.keyer.DictionaryKey(rawURL)
	if !refresh {
		if data, ok, err := c.cache.Get(ctx, key); err == nil && ok {
			observability.Cache().OnCacheHit(ctx, cacheKeyType)
			return data, nil
		}
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
	}

	var data []byte
	err := cache.Retry(ctx, retryCount, c.retryDelay, func() error {
		var err error
		data, err = c.get(ctx, rawURL)
		return err
	})
	if err != nil {
		return nil, toCoded(err, rawURL)
	}

	if err := c.cache.Set(ctx, key, data, c.ttl); err == nil {
		observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
	}
	return data, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	host, path := splitURL(rawURL)
	observability.HTTP().OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, req.Method, host, path, err)
		return nil, cache.Retryable(fmt.Errorf("%w: %w", cache.ErrNetwork, err))
	}
	defer resp.Body.Close()
	observability.HTTP().OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, cache.Retryable(fmt.Errorf("%w: %w", cache.ErrNetwork, err))
	}
	if int64(len(data)) > c.maxBody {
		return nil, errs.New(errs.ErrCodeInvalidFormat, "word list at %s exceeds %d bytes", rawURL, c.maxBody)
	}
	return data, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return cache.ErrNotFound
	case code == http.StatusTooManyRequests || code >= 500:
		return cache.Retryable(fmt.Errorf("%w: status %d", cache.ErrNetwork, code))
	default:
		return fmt.Errorf("%w: status %d", cache.ErrNetwork, code)
	}
}

// toCoded maps download failures onto error codes.
func toCoded(err error, rawURL string) error {
	switch {
	case errs.GetCode(err) != "":
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errs.Wrap(errs.ErrCodeTimeout, err, "download %s", rawURL)
	case errors.Is(err, cache.ErrNotFound):
		return errs.Wrap(errs.ErrCodeNotFound, err, "dictionary %s not found", rawURL)
	default:
		return errs.Wrap(errs.ErrCodeNetwork, err, "download %s", rawURL)
	}
}

func splitURL(rawURL string) (host, path string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", rawURL
	}
	return u.Host, u.Path
}
