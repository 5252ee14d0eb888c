// Package errors provides structured error types for the edge transition.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the offending asset path, the root it was resolved
// against, a human-readable detail and an optional cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseSource, errors.KindAssetOutsideRoot).
//		Asset("/other/pages/index.tsx").
//		Root("/app").
//		Detail("asset is not in base path").
//		Build()
//
// Or use convenience constructors for the transition failures:
//
//	err := errors.TemplateMissing()
//	err := errors.NotChunkable("/app/pages/api/hello.ts")
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind only, so a freshly built error works as a target:
//
//	if errors.Is(err, errors.TemplateMissing()) { ... }
package errors
