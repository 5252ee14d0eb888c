package transition

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/edgebundle/asset"
	"github.com/wippyai/edgebundle/chunk"
	"github.com/wippyai/edgebundle/compiletime"
	"github.com/wippyai/edgebundle/ecmascript"
	"github.com/wippyai/edgebundle/errors"
	"github.com/wippyai/edgebundle/fspath"
	"github.com/wippyai/edgebundle/moduleopts"
	"github.com/wippyai/edgebundle/resolveopts"
)

// BootstrapFilename names the rewritten asset under the page's own path.
const BootstrapFilename = "next-edge-bootstrap.ts"

// PageConst is the constant the bootstrap preamble declares.
const PageConst = "PAGE"

// Targets for errors.Is.
var (
	ErrTemplateMissing  = errors.TemplateMissing()
	ErrAssetOutsideRoot = errors.AssetOutsideRoot("", "")
	ErrNotChunkable     = errors.NotChunkable("")
)

// EdgeConfig is the immutable configuration of an Edge transition.
type EdgeConfig struct {
	CompileTimeInfo *compiletime.Info
	ChunkingContext chunk.ChunkingContext
	ResolveOptions  *resolveopts.OptionsContext
	Bootstrap       asset.ContentSource // runtime bootstrap template
	OutputPath      fspath.Path         // root chunk-group manifests are relative to
	BasePath        fspath.Path         // root page identifiers are relative to
}

var _ Transition = (*Edge)(nil)

// Edge moves pages into the edge runtime.
type Edge struct {
	cfg EdgeConfig
}

// NewEdge validates cfg and creates the transition.
func NewEdge(cfg EdgeConfig) (*Edge, error) {
	switch {
	case cfg.CompileTimeInfo == nil:
		return nil, errors.InvalidInput(errors.PhaseConfig, "compile-time info is required")
	case cfg.ChunkingContext == nil:
		return nil, errors.InvalidInput(errors.PhaseConfig, "chunking context is required")
	case cfg.ResolveOptions == nil:
		return nil, errors.InvalidInput(errors.PhaseConfig, "resolve options are required")
	case cfg.Bootstrap == nil:
		return nil, errors.InvalidInput(errors.PhaseConfig, "bootstrap source is required")
	}
	return &Edge{cfg: cfg}, nil
}

// Config returns a copy of the transition's configuration.
func (e *Edge) Config() EdgeConfig {
	return e.cfg
}

// ProcessSource returns a virtual asset at <src>/next-edge-bootstrap.ts
// holding the PAGE preamble followed by the bootstrap template.
func (e *Edge) ProcessSource(ctx context.Context, src asset.Asset) (asset.Asset, error) {
	content, err := e.cfg.Bootstrap.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read bootstrap: %w", err)
	}
	tmpl, ok := content.File()
	if !ok {
		return nil, errors.TemplateMissing()
	}

	p := src.Path()
	rel, ok := e.cfg.BasePath.PathTo(p)
	if !ok {
		return nil, errors.AssetOutsideRoot(p.String(), e.cfg.BasePath.String())
	}
	page := PageIdentifier(rel)

	preamble := ecmascript.ConstDecl(PageConst, page)
	body := asset.NewRopeBuilder([]byte(preamble)).Concat(tmpl.Content()).Build()
	out := p.Join(BootstrapFilename)

	Logger().Debug("edge bootstrap",
		zap.String("source", p.String()),
		zap.String("page", page),
		zap.String("path", out.String()))

	return asset.NewVirtualFile(out, asset.NewFile(body)), nil
}

// ProcessCompileTimeInfo returns the edge compile-time info; the incoming
// info is ignored.
func (e *Edge) ProcessCompileTimeInfo(*compiletime.Info) *compiletime.Info {
	return e.cfg.CompileTimeInfo
}

// ProcessModuleOptionsContext returns opts unchanged.
func (e *Edge) ProcessModuleOptionsContext(opts *moduleopts.OptionsContext) *moduleopts.OptionsContext {
	return opts
}

// ProcessResolveOptionsContext returns the edge resolution rules; the
// incoming rules are ignored.
func (e *Edge) ProcessResolveOptionsContext(*resolveopts.OptionsContext) *resolveopts.OptionsContext {
	return e.cfg.ResolveOptions
}

// ProcessModule wraps a chunkable module in a chunk group bound to the edge
// chunking context. Edge modules get no runtime entries.
func (e *Edge) ProcessModule(_ context.Context, module asset.Asset, _ *ModuleAssetContext) (asset.Asset, error) {
	c, ok := chunk.Resolve(module)
	if !ok {
		name := "<nil>"
		if module != nil {
			name = module.Path().String()
		}
		return nil, errors.NotChunkable(name)
	}
	Logger().Debug("edge chunk group",
		zap.String("module", module.Path().String()),
		zap.String("output", e.cfg.OutputPath.String()))
	return chunk.NewGroupFilesAsset(c, e.cfg.ChunkingContext, e.cfg.OutputPath, nil), nil
}

// PageIdentifier strips the final extension from rel. A dot whose suffix
// contains a separator belongs to a directory name and is kept, so "a.b/c"
// stays "a.b/c".
func PageIdentifier(rel string) string {
	i := strings.LastIndexByte(rel, '.')
	if i < 0 {
		return rel
	}
	if strings.IndexByte(rel[i+1:], fspath.Separator) >= 0 {
		return rel
	}
	return rel[:i]
}
