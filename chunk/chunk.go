package chunk

import (
	"context"
	"strings"

	"github.com/wippyai/edgebundle/asset"
	"github.com/wippyai/edgebundle/fspath"
)

// Chunk is an emitted output unit. Its path is the output file location.
type Chunk interface {
	asset.Asset
}

// Chunkable is an asset that can be placed into a chunk.
type Chunkable interface {
	asset.Asset
	AsChunk(ctx context.Context, cc ChunkingContext) (Chunk, error)
}

// Provider is implemented by assets that expose chunkability indirectly,
// for example wrappers whose inner asset may or may not be chunkable.
type Provider interface {
	Chunkable() (Chunkable, bool)
}

// Resolve probes a for the chunkable capability.
func Resolve(a asset.Asset) (Chunkable, bool) {
	if a == nil {
		return nil, false
	}
	if p, ok := a.(Provider); ok {
		return p.Chunkable()
	}
	if c, ok := a.(Chunkable); ok {
		return c, true
	}
	return nil, false
}

// ChunkingContext decides where chunks are written and how a chunk group
// is formed around an entry chunk.
type ChunkingContext interface {
	// OutputRoot is the directory chunks are emitted under.
	OutputRoot() fspath.Path
	// ChunkPath returns the output location for a chunk identified by ident.
	ChunkPath(ident fspath.Path, ext string) fspath.Path
	// ChunkGroup returns every chunk that must load for entry, entry included.
	ChunkGroup(ctx context.Context, entry Chunk) ([]Chunk, error)
}

// ModuleChunk is a chunk holding a single module's content.
type ModuleChunk struct {
	module asset.Asset
	path   fspath.Path
}

// NewModuleChunk places module in a chunk at path.
func NewModuleChunk(path fspath.Path, module asset.Asset) *ModuleChunk {
	return &ModuleChunk{path: path, module: module}
}

// Path returns the chunk's output location.
func (c *ModuleChunk) Path() fspath.Path {
	return c.path
}

// Content returns the module's content.
func (c *ModuleChunk) Content(ctx context.Context) (asset.FileContent, error) {
	return c.module.Content(ctx)
}

// Module makes an arbitrary asset chunkable as a single-module chunk.
type Module struct {
	asset.Asset
}

// NewModule wraps a as a chunkable module.
func NewModule(a asset.Asset) *Module {
	return &Module{Asset: a}
}

// AsChunk places the module in its own chunk.
func (m *Module) AsChunk(_ context.Context, cc ChunkingContext) (Chunk, error) {
	return NewModuleChunk(cc.ChunkPath(m.Path(), "js"), m.Asset), nil
}

// DevChunkingContext emits one chunk per module under <output>/chunks.
//
// Thread-safety: immutable after creation.
type DevChunkingContext struct {
	contextRoot fspath.Path
	outputRoot  fspath.Path
}

// NewDevChunkingContext creates a chunking context naming chunks after
// their path relative to contextRoot.
func NewDevChunkingContext(contextRoot, outputRoot fspath.Path) *DevChunkingContext {
	return &DevChunkingContext{contextRoot: contextRoot, outputRoot: outputRoot}
}

// OutputRoot returns the output directory.
func (d *DevChunkingContext) OutputRoot() fspath.Path {
	return d.outputRoot
}

// ChunkPath flattens ident into a single file name under chunks/.
func (d *DevChunkingContext) ChunkPath(ident fspath.Path, ext string) fspath.Path {
	rel, ok := d.contextRoot.PathTo(ident)
	if !ok {
		rel = strings.TrimPrefix(ident.String(), "/")
	}
	if rel == "" {
		rel = "index"
	}
	name := strings.ReplaceAll(rel, "/", "_")
	if ext != "" {
		name += "." + ext
	}
	return d.outputRoot.Join("chunks", name)
}

// ChunkGroup returns entry alone; the dev context does not split.
func (d *DevChunkingContext) ChunkGroup(_ context.Context, entry Chunk) ([]Chunk, error) {
	return []Chunk{entry}, nil
}
