// Package fspath provides the path identity shared by assets, chunks and
// output locations.
//
// A Path is always absolute, slash-separated and cleaned, independent of the
// host operating system. Hosts convert native paths with FromNative before
// handing them to the transition.
package fspath
