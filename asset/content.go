package asset

import "context"

// File is present file content.
type File struct {
	content Rope
}

// NewFile wraps a rope as file content.
func NewFile(content Rope) *File {
	return &File{content: content}
}

// FileFromBytes wraps raw bytes as file content.
func FileFromBytes(b []byte) *File {
	return NewFile(RopeFrom(b))
}

// Content returns the file's bytes as a rope.
func (f *File) Content() Rope {
	return f.content
}

// FileContent is either present content or NotFound.
type FileContent struct {
	file *File
}

// NotFound is the content of a location with nothing in it.
func NotFound() FileContent {
	return FileContent{}
}

// Content creates present content.
func Content(f *File) FileContent {
	return FileContent{file: f}
}

// File returns the file and whether content is present.
func (c FileContent) File() (*File, bool) {
	return c.file, c.file != nil
}

// Exists reports whether content is present.
func (c FileContent) Exists() bool {
	return c.file != nil
}

// ContentSource resolves file content on demand.
// Implementations may block while the host computes the value.
type ContentSource interface {
	Read(ctx context.Context) (FileContent, error)
}

// StaticSource is a ContentSource over a fixed value.
type StaticSource struct {
	content FileContent
}

// NewStaticSource creates a source that always returns content.
func NewStaticSource(content FileContent) *StaticSource {
	return &StaticSource{content: content}
}

// StaticBytes creates a source holding present content b.
func StaticBytes(b []byte) *StaticSource {
	return NewStaticSource(Content(FileFromBytes(b)))
}

// Read returns the fixed content.
func (s *StaticSource) Read(context.Context) (FileContent, error) {
	return s.content, nil
}

// SourceFunc adapts a function to ContentSource.
type SourceFunc func(ctx context.Context) (FileContent, error)

// Read calls f.
func (f SourceFunc) Read(ctx context.Context) (FileContent, error) {
	return f(ctx)
}
