// Package transition implements pipeline stages that move an asset from one
// compilation context into another.
//
// A Transition rewrites the source asset, overrides the compile-time info and
// resolution rules used to compile the result, and finally wraps the
// processed module into a loadable output unit. Apply runs the whole chain
// against an injected Processor, which stands for the host pipeline's
// generic module processing:
//
//	src ──ProcessSource──▶ rewritten ──Processor──▶ module ──ProcessModule──▶ output
//	          mctx ──WithTransition──▶ destination mctx ─┘
//
// # Edge transition
//
// Edge moves page and API route files into the edge runtime. The rewritten
// asset lives at <page path>/next-edge-bootstrap.ts and holds
//
//	const PAGE = "pages/api/hello";
//	<bootstrap template bytes>
//
// where the PAGE value is the page path relative to the project root with
// its final extension removed. The module produced from it is wrapped in a
// chunk.GroupFilesAsset bound to the edge chunking context.
//
// # Thread Safety
//
// Transitions hold only immutable configuration and are safe for concurrent
// use. Every call is independent of every other.
package transition
