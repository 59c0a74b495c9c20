package catalog

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/h2non/filetype"

	"github.com/ecbingo/ecbingo/pkg/cache"
	"github.com/ecbingo/ecbingo/pkg/errors"
	"github.com/ecbingo/ecbingo/pkg/httputil"
	"github.com/ecbingo/ecbingo/pkg/observability"
)

// DefaultBaseURL is the public Emote Collector API.
const DefaultBaseURL = "https://ec.emote.bot/api/v0"

// maxImageSize caps a downloaded emote at 4 MiB, well above the 256 KiB
// Discord allows for emoji uploads.
const maxImageSize = 4 << 20

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.http = h } }

// WithCache stores downloaded images in store for ttl.
func WithCache(store cache.Cache, ttl time.Duration) Option {
	return func(c *Client) { c.cache, c.ttl = cache.Namespace(store, "emote:"), ttl }
}

// WithHeaders adds headers to every request.
func WithHeaders(h map[string]string) Option { return func(c *Client) { c.headers = h } }

// WithRetry overrides the retry policy (default 3 attempts, 1s doubling).
func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) { c.attempts, c.delay = attempts, delay }
}

// Client talks to the Emote Collector API.
type Client struct {
	http     *http.Client
	base     string
	cache    cache.Cache
	ttl      time.Duration
	headers  map[string]string
	attempts int
	delay    time.Duration
}

// NewClient creates a Client for the API rooted at baseURL. Without
// [WithCache] nothing is cached.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		http:     httputil.NewClient(httputil.DefaultTimeout, "ecbingo"),
		base:     strings.TrimRight(baseURL, "/"),
		cache:    cache.NewNullCache(),
		attempts: 3,
		delay:    time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Emote fetches the record for name.
func (c *Client) Emote(ctx context.Context, name string) (*Emote, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	var e Emote
	err := c.retry(ctx, func() error {
		body, err := c.get(ctx, c.base+"/emote/"+url.PathEscape(name))
		if err != nil {
			return err
		}
		defer body.Close()
		if err := json.NewDecoder(body).Decode(&e); err != nil {
			return errors.Wrap(errors.ErrCodeNetwork, err, "decode emote %s", name)
		}
		return nil
	})
	if err != nil {
		return nil, notFound(err, name)
	}
	return &e, nil
}

// Image returns the image bytes for the emote called name, consulting the
// cache first. The bytes are checked to be an image before being cached.
func (c *Client) Image(ctx context.Context, name string) ([]byte, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	key := strings.ToLower(name)
	if data, ok, _ := c.cache.Get(ctx, key); ok {
		observability.Cache().OnCacheHit(ctx, key)
		return data, nil
	}
	observability.Cache().OnCacheMiss(ctx, key)

	e, err := c.Emote(ctx, name)
	if err != nil {
		return nil, err
	}

	var data []byte
	err = c.retry(ctx, func() error {
		body, err := c.get(ctx, e.ImageURL())
		if err != nil {
			return err
		}
		defer body.Close()
		data, err = io.ReadAll(io.LimitReader(body, maxImageSize+1))
		if err != nil {
			return &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "read image")}
		}
		return nil
	})
	if err != nil {
		return nil, notFound(err, name)
	}
	if len(data) > maxImageSize {
		return nil, errors.New(errors.ErrCodeUnsupported, "image for %s exceeds %d bytes", name, maxImageSize)
	}
	if !filetype.IsImage(data) {
		kind, _ := filetype.Match(data)
		return nil, errors.New(errors.ErrCodeUnsupported, "%s is not an image (detected %s)", name, kind.Extension)
	}

	if err := c.cache.Set(ctx, key, data, c.ttl); err == nil {
		observability.Cache().OnCacheSet(ctx, key, len(data))
	}
	return data, nil
}

// Forget drops the cached image for name, if any.
func (c *Client) Forget(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	return c.cache.Delete(ctx, strings.ToLower(name))
}

func (c *Client) retry(ctx context.Context, fn func() error) error {
	return httputil.Retry(ctx, c.attempts, c.delay, fn)
}

func (c *Client) get(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "bad url")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, rawURL)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, rawURL, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "GET %s", rawURL)}
	}
	hooks.OnResponse(ctx, req.Method, rawURL, resp.StatusCode, time.Since(start))
	if err := checkStatus(resp.StatusCode, rawURL); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(code int, rawURL string) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "GET %s: not found", rawURL)
	case code == http.StatusTooManyRequests:
		return errors.New(errors.ErrCodeRateLimited, "GET %s: rate limited", rawURL)
	case code >= 500:
		return &httputil.RetryableError{Err: errors.New(errors.ErrCodeNetwork, "GET %s: status %d", rawURL, code)}
	default:
		return errors.New(errors.ErrCodeNetwork, "GET %s: status %d", rawURL, code)
	}
}

// notFound rewrites a NOT_FOUND into the message users expect.
func notFound(err error, name string) error {
	if errors.Is(err, errors.ErrCodeNotFound) {
		return errors.New(errors.ErrCodeNotFound, "emote %q not found", name)
	}
	return err
}
