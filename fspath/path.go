package fspath

import (
	"path"
	"path/filepath"
	"strings"
)

// Separator is the only separator a Path ever contains.
const Separator = '/'

// Path is an absolute, cleaned, slash-separated location.
// The zero value is the root "/".
type Path struct {
	p string
}

// New cleans p and anchors it at the root.
func New(p string) Path {
	if p == "" {
		return Path{}
	}
	if p[0] != Separator {
		p = "/" + p
	}
	p = path.Clean(p)
	if p == "/" {
		return Path{}
	}
	return Path{p: p}
}

// FromNative converts an operating-system path into a Path.
func FromNative(p string) Path {
	return New(filepath.ToSlash(p))
}

// String returns the absolute slash form.
func (p Path) String() string {
	if p.p == "" {
		return "/"
	}
	return p.p
}

// IsRoot reports whether p is "/".
func (p Path) IsRoot() bool {
	return p.p == ""
}

// Join appends slash-separated segments to p.
// Join never escapes above the root.
func (p Path) Join(elem ...string) Path {
	parts := make([]string, 0, len(elem)+1)
	parts = append(parts, p.String())
	parts = append(parts, elem...)
	return New(path.Join(parts...))
}

// Parent returns the directory containing p. The root is its own parent.
func (p Path) Parent() Path {
	return New(path.Dir(p.String()))
}

// Base returns the final segment, or "" for the root.
func (p Path) Base() string {
	if p.IsRoot() {
		return ""
	}
	return path.Base(p.p)
}

// Extension returns the final segment's extension without the dot.
func (p Path) Extension() string {
	ext := path.Ext(p.Base())
	return strings.TrimPrefix(ext, ".")
}

// PathTo returns target relative to p when target is p itself or lies
// below it. The empty string means target == p.
func (p Path) PathTo(target Path) (string, bool) {
	if target.p == p.p {
		return "", true
	}
	if p.IsRoot() {
		return target.p[1:], true
	}
	prefix := p.p + "/"
	if strings.HasPrefix(target.p, prefix) {
		return target.p[len(prefix):], true
	}
	return "", false
}
