// Package config loads .shyrc.yaml, the optional static configuration file
// controlling default cache capacity, log level/format, and which standard
// library functions are exposed to an ExecutionContext.
package config

import (
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/paulchernoch/shy/lang"
	"github.com/paulchernoch/shy/log"
)

// FileName is the default configuration file name, resolved against
// pkg.ConfigDir() by callers.
const FileName = ".shyrc.yaml"

// Config holds Shy's static, file-loaded defaults. Load and Decode start
// from Default(), so fields the file leaves unset keep Default's values.
type Config struct {
	CacheCapacity int        `yaml:"cache_capacity"`
	LogLevel      log.Level  `yaml:"-"`
	LogFormat     log.Format `yaml:"-"`
	DisableStdlib bool       `yaml:"disable_stdlib"`

	// raw mirrors LogLevel/LogFormat as strings for YAML (un)marshaling,
	// since log.Level/log.Format don't implement yaml.(Un)marshaler.
	RawLogLevel  string `yaml:"log_level"`
	RawLogFormat string `yaml:"log_format"`
}

// Option mutates a Config, following the teacher's log.Option shape.
type Option func(Config) Config

// Default returns a Config with Shy's built-in defaults: the Cache's own
// DefaultCacheCapacity, the logger's DefaultLevel/DefaultFormat, and the
// standard-library function table enabled.
func Default() Config {
	return Config{
		CacheCapacity: lang.DefaultCacheCapacity,
		LogLevel:      log.DefaultLevel,
		LogFormat:     log.DefaultFormat,
		DisableStdlib: false,
	}
}

// WithCacheCapacity sets the default ApproximateLRUCache capacity.
func WithCacheCapacity(n int) Option {
	return func(c Config) Config {
		c.CacheCapacity = n

		return c
	}
}

// WithLogLevel sets the default logger level.
func WithLogLevel(level log.Level) Option {
	return func(c Config) Config {
		c.LogLevel = level

		return c
	}
}

// WithLogFormat sets the default logger format.
func WithLogFormat(format log.Format) Option {
	return func(c Config) Config {
		c.LogFormat = format

		return c
	}
}

// WithStdlibDisabled controls whether an ExecutionContext exposes the
// standard math/voting function table.
func WithStdlibDisabled(disabled bool) Option {
	return func(c Config) Config {
		c.DisableStdlib = disabled

		return c
	}
}

func apply(c Config, opts ...Option) Config {
	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// Load reads and parses a .shyrc.yaml file at path, applying opts after the
// file's own values (so opts act as overrides, mirroring kong flags taking
// precedence over config file values). A missing file is not an error;
// Load returns Default() with opts applied.
func Load(path string, opts ...Option) (Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return apply(cfg, opts...), nil
		}

		return cfg, err
	}
	defer file.Close()

	return Decode(file, opts...)
}

// Decode parses a .shyrc.yaml document from r, applying opts after the
// document's own values.
func Decode(r io.Reader, opts ...Option) (Config, error) {
	cfg := Default()

	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, err
	}

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if cfg.RawLogLevel != "" {
		cfg.LogLevel = log.ParseLevel(cfg.RawLogLevel)
	}

	if cfg.RawLogFormat != "" {
		cfg.LogFormat = log.ParseFormat(cfg.RawLogFormat)
	}

	if cfg.CacheCapacity <= 0 {
		cfg.CacheCapacity = lang.DefaultCacheCapacity
	}

	return apply(cfg, opts...), nil
}
