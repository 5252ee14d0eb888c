// Package resolveopts describes the module-resolution rules of an execution
// environment: extension order, export conditions and request aliases.
package resolveopts
