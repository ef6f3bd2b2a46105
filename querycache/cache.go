// Package querycache caches backend reads by key, shares concurrent fetches
// of the same key and drops entries by resource prefix after mutations.
package querycache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache is safe for concurrent use.
type Cache struct {
	mu    sync.RWMutex
	items map[string]entry
	gen   uint64
	ttl   time.Duration
	group singleflight.Group
	now   func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// New starts a cache whose entries live for ttl. When sweep is positive a
// background goroutine evicts expired entries at that interval until Close.
func New(ttl, sweep time.Duration) *Cache {
	c := &Cache{
		items: make(map[string]entry),
		ttl:   ttl,
		now:   time.Now,
		stop:  make(chan struct{}),
	}
	if sweep > 0 {
		go c.sweepLoop(sweep)
	}
	return c
}

func (c *Cache) sweepLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.sweep()
		case <-c.stop:
			return
		}
	}
}

func (c *Cache) sweep() {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.items {
		if now.After(e.expiresAt) {
			delete(c.items, k)
		}
	}
}

// Close stops the sweeper. It is safe to call more than once.
func (c *Cache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.items[key]
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry{value: value, expiresAt: c.now().Add(c.ttl)}
}

// setIfCurrent stores value unless an invalidation happened since gen was
// read, so a fetch started before a mutation cannot repopulate stale data.
func (c *Cache) setIfCurrent(key string, value any, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return
	}
	c.items[key] = entry{value: value, expiresAt: c.now().Add(c.ttl)}
}

func (c *Cache) generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

// Invalidate drops every entry for the given resources in every scope. A key
// belongs to resource "users" when, with any scope prefix removed, it is
// "users" or starts with "users?" or "users/".
func (c *Cache) Invalidate(resources ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	for k := range c.items {
		for _, r := range resources {
			if matches(k, r) {
				delete(c.items, k)
				break
			}
		}
	}
}

func matches(key, resource string) bool {
	if i := strings.IndexByte(key, scopeSep); i >= 0 {
		key = key[i+1:]
	}
	if key == resource {
		return true
	}
	return strings.HasPrefix(key, resource+"?") || strings.HasPrefix(key, resource+"/")
}

// Len reports the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

const scopeSep = '|'

// Scope derives a partition name from a credential. Entries fetched with one
// backend token are never served to a caller holding another.
func Scope(credential string) string {
	sum := sha256.Sum256([]byte(credential))
	return hex.EncodeToString(sum[:8])
}

// Scoped prefixes key with scope. An empty scope leaves key unchanged.
func Scoped(scope, key string) string {
	if scope == "" {
		return key
	}
	return scope + string(scopeSep) + key
}

// Key builds a canonical key from a resource path and its parameters.
// Empty parameter values are dropped.
func Key(resource string, params url.Values) string {
	clean := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			if v != "" {
				clean.Add(k, v)
			}
		}
	}
	if enc := clean.Encode(); enc != "" {
		return resource + "?" + enc
	}
	return resource
}

// Fetch returns the cached value for key or calls fn once for all concurrent
// callers. The shared call is detached from any single caller's context; a
// caller whose ctx ends stops waiting with ctx.Err(). Errors are returned to
// every waiter and are not cached.
func Fetch[T any](ctx context.Context, c *Cache, key string, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	gen := c.generation()
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		v, err := fn(shared)
		if err != nil {
			return nil, err
		}
		c.setIfCurrent(key, v, gen)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		typed, _ := res.Val.(T)
		return typed, nil
	}
}
