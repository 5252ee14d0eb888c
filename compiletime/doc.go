// Package compiletime describes the constants and conditionals visible to
// code while it is compiled for a particular execution environment.
//
// An Info is built once per environment and shared read-only between every
// module compiled for it.
package compiletime
