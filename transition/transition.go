package transition

import (
	"context"

	"github.com/wippyai/edgebundle/asset"
	"github.com/wippyai/edgebundle/compiletime"
	"github.com/wippyai/edgebundle/moduleopts"
	"github.com/wippyai/edgebundle/resolveopts"
)

// Transition rewrites an asset as it crosses into another compilation context.
type Transition interface {
	// ProcessSource rewrites the incoming source asset.
	ProcessSource(ctx context.Context, src asset.Asset) (asset.Asset, error)
	// ProcessCompileTimeInfo returns the compile-time info for the destination.
	ProcessCompileTimeInfo(info *compiletime.Info) *compiletime.Info
	// ProcessModuleOptionsContext returns the module options for the destination.
	ProcessModuleOptionsContext(opts *moduleopts.OptionsContext) *moduleopts.OptionsContext
	// ProcessResolveOptionsContext returns the resolution rules for the destination.
	ProcessResolveOptionsContext(opts *resolveopts.OptionsContext) *resolveopts.OptionsContext
	// ProcessModule wraps the processed module into its final asset.
	ProcessModule(ctx context.Context, module asset.Asset, mctx *ModuleAssetContext) (asset.Asset, error)
}

// ModuleAssetContext is the configuration a module is compiled under.
type ModuleAssetContext struct {
	CompileTimeInfo *compiletime.Info
	ModuleOptions   *moduleopts.OptionsContext
	ResolveOptions  *resolveopts.OptionsContext
}

// WithTransition returns the context seen on the far side of t.
// The receiver is not modified. A nil receiver is an empty context.
func (m *ModuleAssetContext) WithTransition(t Transition) *ModuleAssetContext {
	if m == nil {
		m = &ModuleAssetContext{}
	}
	return &ModuleAssetContext{
		CompileTimeInfo: t.ProcessCompileTimeInfo(m.CompileTimeInfo),
		ModuleOptions:   t.ProcessModuleOptionsContext(m.ModuleOptions),
		ResolveOptions:  t.ProcessResolveOptionsContext(m.ResolveOptions),
	}
}

// Processor is the host pipeline's generic module processing: it turns a
// source asset into a module compiled under mctx.
type Processor interface {
	Process(ctx context.Context, src asset.Asset, mctx *ModuleAssetContext) (asset.Asset, error)
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx context.Context, src asset.Asset, mctx *ModuleAssetContext) (asset.Asset, error)

// Process calls f.
func (f ProcessorFunc) Process(ctx context.Context, src asset.Asset, mctx *ModuleAssetContext) (asset.Asset, error) {
	return f(ctx, src, mctx)
}

// Apply moves src across t: rewrite, process under the destination
// context, then materialize. Errors are returned unchanged. A nil mctx is
// treated as an empty context.
func Apply(ctx context.Context, t Transition, src asset.Asset, mctx *ModuleAssetContext, p Processor) (asset.Asset, error) {
	rewritten, err := t.ProcessSource(ctx, src)
	if err != nil {
		return nil, err
	}
	dest := mctx.WithTransition(t)
	module, err := p.Process(ctx, rewritten, dest)
	if err != nil {
		return nil, err
	}
	return t.ProcessModule(ctx, module, dest)
}
