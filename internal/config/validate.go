package config

import (
	"fmt"
	"maps"
	"slices"

	"github.com/matzehuels/initstate/pkg/errors"
	"github.com/matzehuels/initstate/pkg/panel"
	"github.com/matzehuels/initstate/pkg/render"
)

// Validate checks the configuration for values no command could use.
func (c *Config) Validate() error {
	if _, err := render.ParseFormat(c.Render.Format); err != nil {
		return fmt.Errorf("render.format: %w", err)
	}
	for _, name := range slices.Sorted(maps.Keys(c.Types)) {
		if name == "" {
			return errors.New(errors.ErrCodeInvalidInput, "types: empty panel type name")
		}
		if err := errors.ValidateColor(c.Types[name]); err != nil {
			return fmt.Errorf("types.%s: %w", name, err)
		}
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache.ttl must not be negative")
	}
	if c.Serve.Addr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "serve.addr must not be empty")
	}
	return nil
}

// Registry returns the built-in panel registry extended with the configured
// types.
func (c *Config) Registry() panel.Registry {
	return panel.DefaultRegistry().With(c.Types)
}

// Format returns the configured network render format.
func (c *Config) Format() render.Format {
	f, err := render.ParseFormat(c.Render.Format)
	if err != nil {
		return render.FormatStatic
	}
	return f
}
