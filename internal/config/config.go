// Package config loads initstate settings.
//
// Settings come from four layers, later ones overriding earlier ones:
//
//  1. Built-in defaults
//  2. A YAML file: the --config flag, else initstate.yaml or initstate.yml
//     in the working directory
//  3. Environment variables prefixed INITSTATE_; a double underscore
//     separates nesting levels (INITSTATE_RENDER__FORMAT=interactive)
//  4. Command-line flags that were explicitly set
//
// A configuration file looks like:
//
//	types:
//	  MyCustomPlot: "#ff8800"
//	deduplicate: true
//	render:
//	  format: static
//	  invert_rows: false
//	  legend: true
//	cache:
//	  disabled: false
//	  ttl: 168h
//	  redis_url: redis://localhost:6379/0
//	serve:
//	  addr: ":8080"
package config

import (
	"time"
)

// Defaults.
const (
	DefaultFormat = "static"
	DefaultAddr   = "127.0.0.1:8080"
	DefaultTTL    = 7 * 24 * time.Hour
)

// Config holds all CLI configuration options.
type Config struct {
	// Types are extra panel types accepted besides the built-in ones,
	// mapped to their display color.
	Types       map[string]string `koanf:"types"`
	Deduplicate bool              `koanf:"deduplicate"`
	Verbose     bool              `koanf:"verbose"`
	Render      RenderConfig      `koanf:"render"`
	Cache       CacheConfig       `koanf:"cache"`
	Serve       ServeConfig       `koanf:"serve"`

	// File is the configuration file that was read, if any.
	File string `koanf:"-"`
}

// RenderConfig controls the tile and network renderers.
type RenderConfig struct {
	Format     string `koanf:"format"` // static, interactive or none
	InvertRows bool   `koanf:"invert_rows"`
	Legend     bool   `koanf:"legend"`
	Detailed   bool   `koanf:"detailed"`
}

// CacheConfig controls the rendered artifact cache.
type CacheConfig struct {
	Dir      string        `koanf:"dir"` // empty: $XDG_CACHE_HOME/initstate
	Disabled bool          `koanf:"disabled"`
	TTL      time.Duration `koanf:"ttl"`

	// RedisURL, when set, makes the preview server share its render cache
	// through Redis instead of keeping it in memory.
	RedisURL string `koanf:"redis_url"`
}

// ServeConfig controls the preview server.
type ServeConfig struct {
	Addr string `koanf:"addr"`
}

func defaults() map[string]any {
	return map[string]any{
		"deduplicate":        true,
		"verbose":            false,
		"render.format":      DefaultFormat,
		"render.invert_rows": false,
		"render.legend":      true,
		"render.detailed":    false,
		"cache.dir":          "",
		"cache.disabled":     false,
		"cache.ttl":          DefaultTTL.String(),
		"cache.redis_url":    "",
		"serve.addr":         DefaultAddr,
	}
}
