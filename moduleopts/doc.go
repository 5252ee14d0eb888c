// Package moduleopts describes how modules are parsed and optimised.
package moduleopts
