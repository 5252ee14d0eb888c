package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseSource,
				Kind:   KindAssetOutsideRoot,
				Asset:  "/other/pages/index.tsx",
				Root:   "/app",
				Detail: "asset is not in base path",
			},
			contains: []string{"[source]", "asset_outside_root", "/other/pages/index.tsx", "root /app", "not in base path"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseModule,
				Kind:  KindNotChunkable,
			},
			contains: []string{"[module]", "not_chunkable"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindInvalidData,
				Detail: "read content",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[load]", "invalid_data", "read content", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseLoad,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := NotChunkable("/app/pages/a.ts")

	if !err.Is(&Error{Phase: PhaseModule, Kind: KindNotChunkable}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseSource, Kind: KindNotChunkable}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseModule, Kind: KindTemplateMissing}) {
		t.Error("Is should not match different kind")
	}

	if !errors.Is(err, NotChunkable("")) {
		t.Error("errors.Is should match a fresh constructor value")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseSource, KindAssetOutsideRoot).
		Asset("/x/a.ts").
		Root("/app").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "/app", "/x").
		Build()

	if err.Phase != PhaseSource {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseSource)
	}
	if err.Kind != KindAssetOutsideRoot {
		t.Errorf("Kind = %v, want %v", err.Kind, KindAssetOutsideRoot)
	}
	if err.Asset != "/x/a.ts" {
		t.Errorf("Asset = %v, want /x/a.ts", err.Asset)
	}
	if err.Root != "/app" {
		t.Errorf("Root = %v, want /app", err.Root)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected /app, got /x" {
		t.Errorf("Detail = %v, want 'expected /app, got /x'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("TemplateMissing", func(t *testing.T) {
		err := TemplateMissing()
		if err.Kind != KindTemplateMissing || err.Phase != PhaseSource {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
	})

	t.Run("AssetOutsideRoot", func(t *testing.T) {
		err := AssetOutsideRoot("/other/a.ts", "/app")
		if err.Asset != "/other/a.ts" || err.Root != "/app" {
			t.Errorf("Asset=%v Root=%v", err.Asset, err.Root)
		}
	})

	t.Run("NotChunkable", func(t *testing.T) {
		err := NotChunkable("/app/pages/api/hello.ts")
		if !strings.Contains(err.Error(), "asset /app/pages/api/hello.ts is not chunkable") {
			t.Errorf("message = %q", err.Error())
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseLoad, "file", "a.ts")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if !strings.Contains(err.Detail, `"a.ts"`) {
			t.Errorf("Detail = %v, should quote the name", err.Detail)
		}
	})

	t.Run("InvalidData", func(t *testing.T) {
		err := InvalidData(PhaseChunk, "/app/out", "not a manifest")
		if err.Kind != KindInvalidData || err.Asset != "/app/out" {
			t.Errorf("got %v", err)
		}
	})

	t.Run("ParseFailed", func(t *testing.T) {
		cause := errors.New("bad yaml")
		err := ParseFailed("config", cause)
		if err.Phase != PhaseParse || !errors.Is(err, cause) {
			t.Errorf("unexpected %v", err)
		}
	})

	t.Run("Load", func(t *testing.T) {
		err := Load("/app/a.ts", errors.New("eio"))
		if err.Phase != PhaseLoad || err.Asset != "/app/a.ts" {
			t.Errorf("unexpected %v", err)
		}
	})
}
