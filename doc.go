// Package edgebundle implements the edge transition of a module-bundling
// pipeline: the stage that moves a page or API route out of the main
// application context and into the edge runtime.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	edgebundle/
//	├── transition/      Transition contract, ModuleAssetContext, Edge transition
//	├── asset/           Assets, content cells, byte-preserving ropes
//	├── chunk/           Chunkable capability, chunking contexts, chunk-group wrapper
//	├── compiletime/     Compile-time defines and free variables per environment
//	├── resolveopts/     Module-resolution rules per environment
//	├── moduleopts/      Parse/transform toggles, passed through unchanged
//	├── ecmascript/      JavaScript string-literal emission
//	├── fspath/          Absolute slash-separated path identity
//	├── config/          YAML + environment configuration
//	├── source/          Disk-backed assets and memoising content cache
//	├── errors/          Structured error types
//	└── cmd/edgebootstrap  CLI host
//
// # Quick Start
//
// Rewrite a page for the edge runtime and materialize its chunk group:
//
//	root := fspath.New("/app")
//	out := fspath.New("/app/.next/server/edge")
//	edge, err := transition.NewEdge(transition.EdgeConfig{
//	    CompileTimeInfo: compiletime.EdgeInfo("production", nil),
//	    ChunkingContext: chunk.NewDevChunkingContext(root, out),
//	    ResolveOptions:  resolveopts.EdgePreset(nil),
//	    Bootstrap:       asset.StaticBytes(template),
//	    OutputPath:      out,
//	    BasePath:        root,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := transition.Apply(ctx, edge, page, mctx, processor)
//
// The processor is the host's generic module processing; Apply hands it the
// rewritten asset together with the edge compile-time info and resolution
// rules, then wraps the module it returns into a chunk.GroupFilesAsset.
//
// # Thread Safety
//
// Transitions, chunking contexts and compile-time info are immutable once
// built and safe for concurrent use. source.Cache is safe for concurrent use.
package edgebundle
