package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wippyai/edgebundle/config"
)

func setupProject(t *testing.T) (string, *builder) {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"bootstrap.ts":       "export default handler;",
		"pages/api/hello.ts": "export default function handler() {}",
	}
	for name, body := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	cfg, err := config.Load("",
		config.WithProjectRoot(root),
		config.WithBootstrap(filepath.Join(root, "bootstrap.ts")))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b, err := newBuilder(cfg)
	if err != nil {
		t.Fatalf("newBuilder: %v", err)
	}
	return root, b
}

func TestBuilder_Build(t *testing.T) {
	root, b := setupProject(t)

	res := b.build(context.Background(), filepath.Join(root, "pages", "api", "hello.ts"))
	if res.err != nil {
		t.Fatalf("build: %v", res.err)
	}
	want := "const PAGE = \"pages/api/hello\";\nexport default handler;"
	if string(res.content) != want {
		t.Errorf("content = %q, want %q", res.content, want)
	}
	if !strings.HasSuffix(res.bootstrap.Path().String(), "/pages/api/hello.ts/next-edge-bootstrap.ts") {
		t.Errorf("bootstrap path = %v", res.bootstrap.Path())
	}
	if len(res.files) != 1 || res.files[0] != "chunks/pages_api_hello.ts_next-edge-bootstrap.ts.js" {
		t.Errorf("files = %v", res.files)
	}
}

func TestBuilder_BuildOutsideRoot(t *testing.T) {
	_, b := setupProject(t)
	other := filepath.Join(t.TempDir(), "x.ts")
	if res := b.build(context.Background(), other); res.err == nil {
		t.Error("expected error for page outside the project root")
	}
}

func TestBuilder_Write(t *testing.T) {
	root, b := setupProject(t)
	ctx := context.Background()

	res := b.build(ctx, filepath.Join(root, "pages", "api", "hello.ts"))
	if res.err != nil {
		t.Fatalf("build: %v", res.err)
	}
	if err := b.write(ctx, res); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := filepath.Join(root, ".next", "server", "edge", "pages", "api", "hello.ts")
	data, err := os.ReadFile(filepath.Join(out, "next-edge-bootstrap.ts"))
	if err != nil {
		t.Fatalf("read bootstrap: %v", err)
	}
	if !strings.HasPrefix(string(data), "const PAGE = ") {
		t.Errorf("bootstrap = %q", data)
	}
	manifest, err := os.ReadFile(filepath.Join(out, "next-edge-bootstrap.ts.chunk_group_files.json"))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if string(manifest) != `["chunks/pages_api_hello.ts_next-edge-bootstrap.ts.js"]` {
		t.Errorf("manifest = %s", manifest)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a.ts, ,b.tsx,")
	if len(got) != 2 || got[0] != "a.ts" || got[1] != "b.tsx" {
		t.Errorf("splitList = %v", got)
	}
}
