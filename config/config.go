package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/edgebundle/asset"
	"github.com/wippyai/edgebundle/chunk"
	"github.com/wippyai/edgebundle/compiletime"
	"github.com/wippyai/edgebundle/errors"
	"github.com/wippyai/edgebundle/fspath"
	"github.com/wippyai/edgebundle/resolveopts"
	"github.com/wippyai/edgebundle/transition"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "EDGE_"

// DefaultOutputDir is the output root relative to the project root.
const DefaultOutputDir = ".next/server/edge"

// Config is the on-disk transition configuration.
type Config struct {
	Defines     map[string]string `yaml:"defines"`
	ProjectRoot string            `yaml:"project_root" env:"PROJECT_ROOT"`
	OutputRoot  string            `yaml:"output_root" env:"OUTPUT_ROOT"`
	Bootstrap   string            `yaml:"bootstrap" env:"BOOTSTRAP"`
	NodeEnv     string            `yaml:"node_env" env:"NODE_ENV"`
	Resolve     ResolveConfig     `yaml:"resolve"`
	CacheSize   int               `yaml:"cache_size" env:"CACHE_SIZE"`
}

// ResolveConfig overrides the edge resolution preset.
type ResolveConfig struct {
	Aliases    map[string]string `yaml:"aliases"`
	Extensions []string          `yaml:"extensions"`
	Conditions []string          `yaml:"conditions"`
}

// Option overrides a field after file and environment values are applied.
type Option func(*Config)

// WithProjectRoot overrides the project root.
func WithProjectRoot(p string) Option {
	return func(c *Config) { c.ProjectRoot = p }
}

// WithOutputRoot overrides the output root.
func WithOutputRoot(p string) Option {
	return func(c *Config) { c.OutputRoot = p }
}

// WithBootstrap overrides the bootstrap template path.
func WithBootstrap(p string) Option {
	return func(c *Config) { c.Bootstrap = p }
}

// WithNodeEnv overrides process.env.NODE_ENV.
func WithNodeEnv(v string) Option {
	return func(c *Config) { c.NodeEnv = v }
}

// Load reads path (optional), applies environment overrides then opts, and
// validates. Paths set through opts should be absolute.
func Load(path string, opts ...Option) (*Config, error) {
	var cfg Config
	base, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("config: working directory: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				return nil, errors.NotFound(errors.PhaseConfig, "config file", path)
			}
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.ParseFailed(path, err)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		base = filepath.Dir(abs)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.ParseFailed("environment", err)
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	cfg.applyDefaults()
	cfg.normalize(base)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.NodeEnv == "" {
		c.NodeEnv = "development"
	}
	if c.Defines == nil {
		c.Defines = map[string]string{}
	}
	if c.ProjectRoot == "" {
		c.ProjectRoot = "."
	}
}

func (c *Config) normalize(base string) {
	c.ProjectRoot = absFrom(base, c.ProjectRoot)
	if c.OutputRoot == "" {
		c.OutputRoot = filepath.Join(c.ProjectRoot, filepath.FromSlash(DefaultOutputDir))
	} else {
		c.OutputRoot = absFrom(base, c.OutputRoot)
	}
	if c.Bootstrap != "" {
		c.Bootstrap = absFrom(base, c.Bootstrap)
	}
	for i, ext := range c.Resolve.Extensions {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			c.Resolve.Extensions[i] = "." + ext
		}
	}
}

func (c *Config) validate() error {
	if c.Bootstrap == "" {
		return errors.InvalidInput(errors.PhaseConfig, "bootstrap template path is required")
	}
	if c.CacheSize < 0 {
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Value(c.CacheSize).
			Detail("cache_size must not be negative").
			Build()
	}
	for k := range c.Defines {
		if strings.TrimSpace(k) == "" {
			return errors.InvalidInput(errors.PhaseConfig, "define name must not be empty")
		}
	}
	return nil
}

func absFrom(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

// ProjectPath returns the project root as a Path.
func (c *Config) ProjectPath() fspath.Path {
	return fspath.FromNative(c.ProjectRoot)
}

// OutputPath returns the output root as a Path.
func (c *Config) OutputPath() fspath.Path {
	return fspath.FromNative(c.OutputRoot)
}

// CompileTimeInfo builds the edge compile-time info.
func (c *Config) CompileTimeInfo() *compiletime.Info {
	return compiletime.EdgeInfo(c.NodeEnv, c.Defines)
}

// ResolveOptions builds the edge resolution rules.
func (c *Config) ResolveOptions() *resolveopts.OptionsContext {
	opts := resolveopts.EdgePreset(c.Resolve.Aliases)
	if len(c.Resolve.Extensions) > 0 {
		opts.Extensions = append([]string(nil), c.Resolve.Extensions...)
	}
	if len(c.Resolve.Conditions) > 0 {
		opts.Conditions = append([]string(nil), c.Resolve.Conditions...)
	}
	return opts
}

// EdgeConfig assembles the transition configuration around the host's
// bootstrap source and chunking context.
func (c *Config) EdgeConfig(bootstrap asset.ContentSource, cc chunk.ChunkingContext) transition.EdgeConfig {
	return transition.EdgeConfig{
		CompileTimeInfo: c.CompileTimeInfo(),
		ChunkingContext: cc,
		ResolveOptions:  c.ResolveOptions(),
		Bootstrap:       bootstrap,
		OutputPath:      c.OutputPath(),
		BasePath:        c.ProjectPath(),
	}
}
