// Package asset defines the addressable units of content that flow through
// the bundling pipeline.
//
// An Asset is a path plus a content cell. Content is resolved through a
// ContentSource, which is the injected content-resolution capability of the
// host engine: the call may block while the host computes or re-validates the
// value, and it is the host's job to memoise it.
//
// Content is held as a Rope so that concatenating generated code with
// template bytes never copies or re-encodes the template.
package asset
