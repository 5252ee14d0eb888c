// Package source provides disk-backed assets and a memoising content cache
// for hosts that drive the transition outside a full build engine.
//
// FileAsset reads a file each time its content is requested. Cache wraps any
// ContentSource so repeated reads of one key are served from a bounded LRU,
// and concurrent misses for the same key share a single read.
package source
