package transition

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/wippyai/edgebundle/asset"
	"github.com/wippyai/edgebundle/chunk"
	"github.com/wippyai/edgebundle/compiletime"
	"github.com/wippyai/edgebundle/fspath"
	"github.com/wippyai/edgebundle/moduleopts"
	"github.com/wippyai/edgebundle/resolveopts"
)

func clientContext() *ModuleAssetContext {
	return &ModuleAssetContext{
		CompileTimeInfo: compiletime.New(compiletime.Environment{Runtime: compiletime.RuntimeBrowser}, nil, nil),
		ModuleOptions:   moduleopts.Default(),
		ResolveOptions:  &resolveopts.OptionsContext{Conditions: []string{"browser"}},
	}
}

func TestModuleAssetContext_WithTransition(t *testing.T) {
	e := newTestEdge(t, nil)
	src := clientContext()

	dest := src.WithTransition(e)
	if dest == src {
		t.Fatal("WithTransition returned the receiver")
	}
	if dest.CompileTimeInfo != e.Config().CompileTimeInfo {
		t.Error("compile-time info not overridden")
	}
	if dest.ResolveOptions != e.Config().ResolveOptions {
		t.Error("resolve options not overridden")
	}
	if dest.ModuleOptions != src.ModuleOptions {
		t.Error("module options not passed through")
	}
	if src.CompileTimeInfo.Environment().Runtime != compiletime.RuntimeBrowser {
		t.Error("source context modified")
	}
}

func TestApply(t *testing.T) {
	e := newTestEdge(t, nil)
	var seen *ModuleAssetContext
	var seenPath fspath.Path

	proc := ProcessorFunc(func(_ context.Context, src asset.Asset, mctx *ModuleAssetContext) (asset.Asset, error) {
		seen = mctx
		seenPath = src.Path()
		return chunk.NewModule(src), nil
	})

	out, err := Apply(context.Background(), e, page("/app/pages/api/hello.ts"), clientContext(), proc)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if seenPath.String() != "/app/pages/api/hello.ts/next-edge-bootstrap.ts" {
		t.Errorf("processor saw %v, want the rewritten asset", seenPath)
	}
	if seen == nil || seen.CompileTimeInfo.Environment().Runtime != compiletime.RuntimeEdge {
		t.Error("processor did not receive the edge context")
	}
	if got := out.Path().String(); got != "/app/pages/api/hello.ts/next-edge-bootstrap.ts/chunk_group_files" {
		t.Errorf("out path = %q", got)
	}
}

func TestApply_NilContext(t *testing.T) {
	e := newTestEdge(t, nil)
	proc := ProcessorFunc(func(_ context.Context, src asset.Asset, mctx *ModuleAssetContext) (asset.Asset, error) {
		if mctx == nil || mctx.CompileTimeInfo == nil || mctx.ResolveOptions == nil {
			t.Errorf("destination context = %+v", mctx)
		}
		return chunk.NewModule(src), nil
	})

	if _, err := Apply(context.Background(), e, page("/app/pages/a.ts"), nil, proc); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	var empty *ModuleAssetContext
	if got := empty.WithTransition(e); got.ModuleOptions != nil {
		t.Errorf("ModuleOptions = %+v, want identity of nil", got.ModuleOptions)
	}
}

func TestApply_Errors(t *testing.T) {
	e := newTestEdge(t, nil)
	ctx := context.Background()

	t.Run("source", func(t *testing.T) {
		called := false
		proc := ProcessorFunc(func(context.Context, asset.Asset, *ModuleAssetContext) (asset.Asset, error) {
			called = true
			return nil, nil
		})
		_, err := Apply(ctx, e, page("/elsewhere/a.ts"), clientContext(), proc)
		if !stderrors.Is(err, ErrAssetOutsideRoot) {
			t.Errorf("err = %v", err)
		}
		if called {
			t.Error("processor ran after a source failure")
		}
	})

	t.Run("processor", func(t *testing.T) {
		boom := stderrors.New("parse failed")
		proc := ProcessorFunc(func(context.Context, asset.Asset, *ModuleAssetContext) (asset.Asset, error) {
			return nil, boom
		})
		if _, err := Apply(ctx, e, page("/app/pages/a.ts"), clientContext(), proc); !stderrors.Is(err, boom) {
			t.Errorf("err = %v, want processor error unchanged", err)
		}
	})

	t.Run("not chunkable", func(t *testing.T) {
		proc := ProcessorFunc(func(_ context.Context, src asset.Asset, _ *ModuleAssetContext) (asset.Asset, error) {
			return src, nil
		})
		if _, err := Apply(ctx, e, page("/app/pages/a.ts"), clientContext(), proc); !stderrors.Is(err, ErrNotChunkable) {
			t.Errorf("err = %v, want not chunkable", err)
		}
	})
}
