package source

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/wippyai/edgebundle/asset"
	"github.com/wippyai/edgebundle/errors"
	"github.com/wippyai/edgebundle/fspath"
)

// FileAsset is an asset backed by a file on disk.
type FileAsset struct {
	native string
	path   fspath.Path
}

// NewFileAsset creates an asset for the file at native, made absolute.
func NewFileAsset(native string) (*FileAsset, error) {
	abs, err := filepath.Abs(native)
	if err != nil {
		return nil, errors.Load(native, err)
	}
	return &FileAsset{native: abs, path: fspath.FromNative(abs)}, nil
}

// Path returns the asset's absolute slash path.
func (f *FileAsset) Path() fspath.Path {
	return f.path
}

// Content reads the file. A missing file is NotFound, not an error.
func (f *FileAsset) Content(ctx context.Context) (asset.FileContent, error) {
	if err := ctx.Err(); err != nil {
		return asset.FileContent{}, err
	}
	data, err := os.ReadFile(f.native)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return asset.NotFound(), nil
		}
		return asset.FileContent{}, errors.Load(f.path.String(), err)
	}
	return asset.Content(asset.FileFromBytes(data)), nil
}

// Read implements asset.ContentSource.
func (f *FileAsset) Read(ctx context.Context) (asset.FileContent, error) {
	return f.Content(ctx)
}
