// Package chunk defines the contract between processed modules and the
// chunking mechanism that emits them as loadable output.
//
// Chunkability is a capability, not a type: any asset may or may not expose
// it. Resolve probes an asset for the capability and returns a handle when
// present, either because the asset implements Chunkable itself or because
// it is a wrapper implementing Provider.
//
// GroupFilesAsset is the chunk-group-producing wrapper returned to the
// pipeline. Its content is a JSON manifest listing the group's chunk files
// relative to an output root:
//
//	["chunks/pages_api_hello.ts.js"]
//
// DevChunkingContext is a minimal ChunkingContext that emits one chunk per
// module. Production hosts supply their own.
package chunk
