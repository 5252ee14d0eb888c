// Package config loads the edge transition configuration.
//
// Configuration is read from a YAML file, then overridden by EDGE_-prefixed
// environment variables:
//
//	EDGE_PROJECT_ROOT  project root page identifiers are relative to
//	EDGE_OUTPUT_ROOT   root chunk-group manifests are relative to
//	EDGE_BOOTSTRAP     bootstrap template file
//	EDGE_NODE_ENV      value of process.env.NODE_ENV
//	EDGE_CACHE_SIZE    content cache entries
//
// Relative paths are resolved against the config file's directory, or the
// working directory when no file is given.
package config
