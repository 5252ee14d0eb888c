package chunk

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/wippyai/edgebundle/asset"
	"github.com/wippyai/edgebundle/errors"
	"github.com/wippyai/edgebundle/fspath"
)

// GroupFilesName is the segment appended to the entry path to name the
// chunk group manifest.
const GroupFilesName = "chunk_group_files"

// GroupFilesAsset wraps an entry module so the chunking mechanism can emit
// its chunk group. Its content lists the group's files relative to BasePath.
//
// Thread-safety: immutable after creation; Content may be called concurrently.
type GroupFilesAsset struct {
	entry          Chunkable
	chunking       ChunkingContext
	basePath       fspath.Path
	runtimeEntries []Chunkable
}

// NewGroupFilesAsset binds entry to a chunking context and output root.
// runtimeEntries are loaded before the entry; nil means none.
func NewGroupFilesAsset(entry Chunkable, cc ChunkingContext, basePath fspath.Path, runtimeEntries []Chunkable) *GroupFilesAsset {
	return &GroupFilesAsset{
		entry:          entry,
		chunking:       cc,
		basePath:       basePath,
		runtimeEntries: runtimeEntries,
	}
}

// ChunkingContext returns the bound chunking context.
func (g *GroupFilesAsset) ChunkingContext() ChunkingContext {
	return g.chunking
}

// BasePath returns the root manifest entries are relative to.
func (g *GroupFilesAsset) BasePath() fspath.Path {
	return g.basePath
}

// RuntimeEntries returns the extra entries loaded before the module.
func (g *GroupFilesAsset) RuntimeEntries() []Chunkable {
	return g.runtimeEntries
}

// Path returns <entry path>/chunk_group_files.
func (g *GroupFilesAsset) Path() fspath.Path {
	return g.entry.Path().Join(GroupFilesName)
}

// Chunks evaluates the chunk group: runtime entry groups first, then the
// entry's group. Duplicate chunk paths are emitted once.
func (g *GroupFilesAsset) Chunks(ctx context.Context) ([]Chunk, error) {
	seen := make(map[fspath.Path]bool)
	var out []Chunk

	add := func(c Chunkable) error {
		entry, err := c.AsChunk(ctx, g.chunking)
		if err != nil {
			return errors.New(errors.PhaseChunk, errors.KindInvalidData).
				Asset(c.Path().String()).
				Detail("create chunk").
				Cause(err).
				Build()
		}
		group, err := g.chunking.ChunkGroup(ctx, entry)
		if err != nil {
			return errors.New(errors.PhaseChunk, errors.KindInvalidData).
				Asset(c.Path().String()).
				Detail("evaluate chunk group").
				Cause(err).
				Build()
		}
		for _, ch := range group {
			if seen[ch.Path()] {
				continue
			}
			seen[ch.Path()] = true
			out = append(out, ch)
		}
		return nil
	}

	for _, re := range g.runtimeEntries {
		if err := add(re); err != nil {
			return nil, err
		}
	}
	if err := add(g.entry); err != nil {
		return nil, err
	}
	return out, nil
}

// Files returns the chunk paths relative to the base path. Chunks outside
// the base path are not listed.
func (g *GroupFilesAsset) Files(ctx context.Context) ([]string, error) {
	chunks, err := g.Chunks(ctx)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(chunks))
	for _, c := range chunks {
		rel, ok := g.basePath.PathTo(c.Path())
		if !ok {
			Logger().Debug("chunk outside output root",
				zap.String("chunk", c.Path().String()),
				zap.String("root", g.basePath.String()))
			continue
		}
		files = append(files, rel)
	}
	return files, nil
}

// Content returns the JSON manifest of the group's files.
func (g *GroupFilesAsset) Content(ctx context.Context) (asset.FileContent, error) {
	files, err := g.Files(ctx)
	if err != nil {
		return asset.FileContent{}, err
	}
	data, err := json.Marshal(files)
	if err != nil {
		return asset.FileContent{}, errors.Wrap(errors.PhaseChunk, errors.KindInvalidData, err, "encode manifest")
	}
	return asset.Content(asset.FileFromBytes(data)), nil
}
