// Package ecmascript holds helpers for emitting JavaScript and TypeScript
// source text.
package ecmascript
