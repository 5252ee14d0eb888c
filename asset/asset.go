package asset

import (
	"context"

	"github.com/wippyai/edgebundle/fspath"
)

// Asset is an addressable unit of content.
type Asset interface {
	// Path is the asset's identity in the pipeline.
	Path() fspath.Path
	// Content resolves the asset's bytes.
	Content(ctx context.Context) (FileContent, error)
}

// VirtualAsset is an in-memory asset with no on-disk origin.
//
// Thread-safety: immutable after creation.
type VirtualAsset struct {
	content ContentSource
	path    fspath.Path
}

// NewVirtual creates a virtual asset at path backed by content.
func NewVirtual(path fspath.Path, content ContentSource) *VirtualAsset {
	return &VirtualAsset{path: path, content: content}
}

// NewVirtualFile creates a virtual asset holding the given file.
func NewVirtualFile(path fspath.Path, f *File) *VirtualAsset {
	return NewVirtual(path, NewStaticSource(Content(f)))
}

// Path returns the asset path.
func (v *VirtualAsset) Path() fspath.Path {
	return v.path
}

// Content resolves the backing source.
func (v *VirtualAsset) Content(ctx context.Context) (FileContent, error) {
	return v.content.Read(ctx)
}

// ReadBytes resolves a's content and flattens it.
// ReadBytes returns ok=false when the asset has no content.
func ReadBytes(ctx context.Context, a Asset) ([]byte, bool, error) {
	c, err := a.Content(ctx)
	if err != nil {
		return nil, false, err
	}
	f, ok := c.File()
	if !ok {
		return nil, false, nil
	}
	return f.Content().Bytes(), true, nil
}
