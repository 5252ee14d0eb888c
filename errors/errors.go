package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the transition the error occurred
type Phase string

const (
	PhaseSource Phase = "source" // source rewriting
	PhaseModule Phase = "module" // chunk materialization
	PhaseChunk  Phase = "chunk"  // chunk group evaluation
	PhaseConfig Phase = "config" // transition configuration
	PhaseLoad   Phase = "load"   // asset/content loading
	PhaseParse  Phase = "parse"  // config file parsing
)

// Kind categorizes the error
type Kind string

const (
	KindTemplateMissing  Kind = "template_missing"
	KindAssetOutsideRoot Kind = "asset_outside_root"
	KindNotChunkable     Kind = "not_chunkable"
	KindInvalidData      Kind = "invalid_data"
	KindInvalidInput     Kind = "invalid_input"
	KindNotFound         Kind = "not_found"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Asset  string
	Root   string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Asset != "" {
		b.WriteString(" at ")
		b.WriteString(e.Asset)
	}

	if e.Root != "" {
		b.WriteString(" (root ")
		b.WriteString(e.Root)
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Asset sets the offending asset path
func (b *Builder) Asset(path string) *Builder {
	b.err.Asset = path
	return b
}

// Root sets the root the asset was resolved against
func (b *Builder) Root(path string) *Builder {
	b.err.Root = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the transition failures

// TemplateMissing creates the error for a bootstrap template without content
func TemplateMissing() *Error {
	return &Error{
		Phase:  PhaseSource,
		Kind:   KindTemplateMissing,
		Detail: "runtime code not found",
	}
}

// AssetOutsideRoot creates the error for an asset that cannot be expressed
// relative to the configured root
func AssetOutsideRoot(path, root string) *Error {
	return &Error{
		Phase:  PhaseSource,
		Kind:   KindAssetOutsideRoot,
		Asset:  path,
		Root:   root,
		Detail: "asset is not in base path",
	}
}

// NotChunkable creates the error for a module without the chunkable capability
func NotChunkable(path string) *Error {
	return &Error{
		Phase:  PhaseModule,
		Kind:   KindNotChunkable,
		Asset:  path,
		Detail: fmt.Sprintf("asset %s is not chunkable", path),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, asset, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Asset:  asset,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Load creates an asset loading error
func Load(asset string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Asset:  asset,
		Detail: "read content",
		Cause:  cause,
	}
}

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}
