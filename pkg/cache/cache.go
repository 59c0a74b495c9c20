// Package cache provides byte caches for downloaded marker images.
//
// Three backends implement [Cache]:
//   - [FileCache]: JSON entry files under the user cache directory (CLI default)
//   - [RedisCache]: a shared redis instance, for servers running several replicas
//   - [NullCache]: stores nothing, used with --no-cache
//
// [Namespace] wraps any backend so that all keys share a prefix.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values with an optional time-to-live.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// namespaced prefixes every key before delegating.
type namespaced struct {
	inner  Cache
	prefix string
}

// Namespace returns a view of c that prepends prefix to every key.
// Namespaces nest: Namespace(Namespace(c, "a:"), "b:") uses "a:b:".
func Namespace(c Cache, prefix string) Cache {
	if ns, ok := c.(*namespaced); ok {
		return &namespaced{inner: ns.inner, prefix: ns.prefix + prefix}
	}
	return &namespaced{inner: c, prefix: prefix}
}

func (n *namespaced) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return n.inner.Set(ctx, n.prefix+key, data, ttl)
}

func (n *namespaced) Delete(ctx context.Context, key string) error {
	return n.inner.Delete(ctx, n.prefix+key)
}

func (n *namespaced) Close() error { return n.inner.Close() }
