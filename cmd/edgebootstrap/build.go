package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wippyai/edgebundle/asset"
	"github.com/wippyai/edgebundle/chunk"
	"github.com/wippyai/edgebundle/compiletime"
	"github.com/wippyai/edgebundle/config"
	"github.com/wippyai/edgebundle/errors"
	"github.com/wippyai/edgebundle/fspath"
	"github.com/wippyai/edgebundle/moduleopts"
	"github.com/wippyai/edgebundle/resolveopts"
	"github.com/wippyai/edgebundle/source"
	"github.com/wippyai/edgebundle/transition"
)

// pageResult is everything produced for one page.
type pageResult struct {
	err       error
	source    fspath.Path
	bootstrap asset.Asset
	output    asset.Asset
	content   []byte
	files     []string
}

// builder drives the edge transition the way the bundler host would.
type builder struct {
	cfg   *config.Config
	edge  *transition.Edge
	cache *source.Cache
	base  *transition.ModuleAssetContext
}

func newBuilder(cfg *config.Config) (*builder, error) {
	cache, err := source.NewCache(cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	tmpl, err := source.NewFileAsset(cfg.Bootstrap)
	if err != nil {
		return nil, err
	}
	cc := chunk.NewDevChunkingContext(cfg.ProjectPath(), cfg.OutputPath())
	edge, err := transition.NewEdge(cfg.EdgeConfig(cache.Source(tmpl.Path().String(), tmpl), cc))
	if err != nil {
		return nil, err
	}
	// The context pages arrive from; the transition replaces most of it.
	base := &transition.ModuleAssetContext{
		CompileTimeInfo: compiletime.New(compiletime.Environment{Runtime: compiletime.RuntimeNodeJS, NodeEnv: cfg.NodeEnv}, nil, nil),
		ModuleOptions:   moduleopts.Default(),
		ResolveOptions:  &resolveopts.OptionsContext{Conditions: []string{"node", "import", "default"}},
	}
	return &builder{
		cfg:   cfg,
		edge:  edge,
		cache: cache,
		base:  base,
	}, nil
}

// build runs one page through the transition. The host's module processing
// is stood in for by wrapping the rewritten asset as a single-module chunk.
func (b *builder) build(ctx context.Context, page string) pageResult {
	fa, err := source.NewFileAsset(page)
	if err != nil {
		return pageResult{err: err}
	}
	res := pageResult{source: fa.Path()}

	proc := transition.ProcessorFunc(func(_ context.Context, src asset.Asset, _ *transition.ModuleAssetContext) (asset.Asset, error) {
		res.bootstrap = src
		return chunk.NewModule(src), nil
	})

	out, err := transition.Apply(ctx, b.edge, b.cache.Asset(fa), b.base, proc)
	if err != nil {
		res.err = err
		return res
	}
	res.output = out

	content, _, err := asset.ReadBytes(ctx, res.bootstrap)
	if err != nil {
		res.err = err
		return res
	}
	res.content = content

	g, ok := out.(*chunk.GroupFilesAsset)
	if !ok {
		res.err = errors.InvalidData(errors.PhaseChunk, out.Path().String(), "output is not a chunk group manifest")
		return res
	}
	files, err := g.Files(ctx)
	if err != nil {
		res.err = err
		return res
	}
	res.files = files
	return res
}

// write stores the bootstrap module under the output root, mirroring its
// path relative to the project root, and the chunk-group manifest beside it
// as <bootstrap>.chunk_group_files.json.
func (b *builder) write(ctx context.Context, res pageResult) error {
	rel, ok := b.cfg.ProjectPath().PathTo(res.bootstrap.Path())
	if !ok {
		return fmt.Errorf("write %s: outside project root", res.bootstrap.Path())
	}
	dst := filepath.Join(b.cfg.OutputRoot, filepath.FromSlash(rel))
	if err := writeAsset(ctx, res.bootstrap, dst); err != nil {
		return err
	}
	return writeAsset(ctx, res.output, dst+"."+chunk.GroupFilesName+".json")
}

func writeAsset(ctx context.Context, a asset.Asset, dst string) error {
	c, err := a.Content(ctx)
	if err != nil {
		return fmt.Errorf("write %s: %w", a.Path(), err)
	}
	f, ok := c.File()
	if !ok {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	fh, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	if _, err := f.Content().WriteTo(fh); err != nil {
		fh.Close()
		return fmt.Errorf("write %s: %w", dst, err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}
