package source

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/wippyai/edgebundle/asset"
	"github.com/wippyai/edgebundle/errors"
	"github.com/wippyai/edgebundle/fspath"
)

// DefaultCacheSize bounds the number of cached entries.
const DefaultCacheSize = 256

// Cache memoises content by key.
//
// Thread-safety: safe for concurrent use.
type Cache struct {
	entries *lru.Cache[string, asset.FileContent]
	group   singleflight.Group

	mu          sync.Mutex
	generations map[string]uint64 // bumped by Invalidate
}

// NewCache creates a cache holding at most size entries.
// size <= 0 selects DefaultCacheSize.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[string, asset.FileContent](size)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "create content cache")
	}
	return &Cache{entries: entries, generations: make(map[string]uint64)}, nil
}

// Get returns the cached content for key, reading src on a miss.
// Errors are not cached.
func (c *Cache) Get(ctx context.Context, key string, src asset.ContentSource) (asset.FileContent, error) {
	if v, ok := c.entries.Get(key); ok {
		return v, nil
	}

	ch := c.group.DoChan(key, func() (any, error) {
		if v, ok := c.entries.Get(key); ok {
			return v, nil
		}
		gen := c.generation(key)
		// Detached so one caller's cancellation does not fail the others.
		v, err := src.Read(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		if c.store(key, gen, v) {
			Logger().Debug("content cached", zap.String("key", key), zap.Bool("exists", v.Exists()))
		} else {
			Logger().Debug("stale read dropped", zap.String("key", key))
		}
		return v, nil
	})

	select {
	case <-ctx.Done():
		return asset.FileContent{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return asset.FileContent{}, res.Err
		}
		return res.Val.(asset.FileContent), nil
	}
}

// Source returns a ContentSource reading through the cache under key.
func (c *Cache) Source(key string, src asset.ContentSource) asset.ContentSource {
	return asset.SourceFunc(func(ctx context.Context) (asset.FileContent, error) {
		return c.Get(ctx, key, src)
	})
}

// Asset returns an asset whose content is read through the cache, keyed
// by the asset's path.
func (c *Cache) Asset(a asset.Asset) asset.Asset {
	return &cachedAsset{inner: a, cache: c}
}

// Invalidate drops key so the next read goes to the source. A read already
// in flight for key still completes for its callers but is not cached.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	c.generations[key]++
	c.entries.Remove(key)
	c.mu.Unlock()
	c.group.Forget(key)
}

func (c *Cache) generation(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[key]
}

// store caches v unless key was invalidated since gen was taken.
func (c *Cache) store(key string, gen uint64, v asset.FileContent) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[key] != gen {
		return false
	}
	c.entries.Add(key, v)
	return true
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.entries.Len()
}

type cachedAsset struct {
	inner asset.Asset
	cache *Cache
}

func (a *cachedAsset) Path() fspath.Path {
	return a.inner.Path()
}

func (a *cachedAsset) Content(ctx context.Context) (asset.FileContent, error) {
	return a.cache.Get(ctx, a.inner.Path().String(), asset.SourceFunc(a.inner.Content))
}
