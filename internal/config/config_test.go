package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/initstate/pkg/errors"
	"github.com/matzehuels/initstate/pkg/render"
)

// chdir switches to a fresh directory so no stray initstate.yaml is picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.True(t, cfg.Deduplicate)
	assert.Equal(t, DefaultFormat, cfg.Render.Format)
	assert.True(t, cfg.Render.Legend)
	assert.False(t, cfg.Render.InvertRows)
	assert.Equal(t, DefaultTTL, cfg.Cache.TTL)
	assert.Equal(t, DefaultAddr, cfg.Serve.Addr)
	assert.Empty(t, cfg.File)
	assert.Equal(t, render.FormatStatic, cfg.Format())
}

func TestLoad_File(t *testing.T) {
	dir := chdir(t)
	writeFile(t, filepath.Join(dir, "initstate.yaml"), `
types:
  MyCustomPlot: "#ff8800"
deduplicate: false
render:
  format: interactive
  invert_rows: true
cache:
  ttl: 1h
`)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "initstate.yaml", cfg.File)
	assert.False(t, cfg.Deduplicate)
	assert.Equal(t, render.FormatInteractive, cfg.Format())
	assert.True(t, cfg.Render.InvertRows)
	assert.True(t, cfg.Render.Legend, "unset keys keep their defaults")
	assert.Equal(t, time.Hour, cfg.Cache.TTL)

	reg := cfg.Registry()
	color, ok := reg.Color("MyCustomPlot")
	assert.True(t, ok)
	assert.Equal(t, "#ff8800", color)
	assert.True(t, reg.Has("ReducedDimensionPlot"), "built-in types stay registered")
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "other.yml")
	writeFile(t, path, "serve:\n  addr: \":9000\"\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Serve.Addr)
	assert.Equal(t, path, cfg.File)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	chdir(t)
	_, err := Load("does-not-exist.yaml", nil)
	assert.Error(t, err)
}

func TestLoad_Env(t *testing.T) {
	dir := chdir(t)
	writeFile(t, filepath.Join(dir, "initstate.yaml"), "render:\n  format: interactive\n")
	t.Setenv("INITSTATE_RENDER__FORMAT", "none")
	t.Setenv("INITSTATE_CACHE__DISABLED", "true")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, render.FormatNone, cfg.Format(), "env overrides file")
	assert.True(t, cfg.Cache.Disabled)
}

func TestLoad_Flags(t *testing.T) {
	chdir(t)
	t.Setenv("INITSTATE_SERVE__ADDR", ":7000")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("addr", DefaultAddr, "")
	flags.Bool("no-dedup", false, "")
	flags.Bool("no-cache", false, "")
	flags.Bool("invert", false, "")
	flags.String("output", "", "")
	require.NoError(t, flags.Parse([]string{"--addr", ":9999", "--no-dedup", "--output", "x.svg"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Serve.Addr, "flags override env")
	assert.False(t, cfg.Deduplicate, "--no-dedup inverts deduplicate")
	assert.False(t, cfg.Cache.Disabled, "unchanged flags do not override")
	assert.False(t, cfg.Render.InvertRows)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{"bad format", "render:\n  format: pdf\n", errors.ErrCodeInvalidFormat},
		{"bad color", "types:\n  MyPlot: \"not a color!\"\n", errors.ErrCodeInvalidColor},
		{"empty addr", "serve:\n  addr: \"\"\n", errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := chdir(t)
			writeFile(t, filepath.Join(dir, "initstate.yaml"), tt.content)

			_, err := Load("", nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.code), "err = %v, want %s", err, tt.code)
			assert.Contains(t, err.Error(), "initstate.yaml")
		})
	}
}

func TestDefault(t *testing.T) {
	dir := chdir(t)
	writeFile(t, filepath.Join(dir, "initstate.yaml"), "deduplicate: false\n")
	t.Setenv("INITSTATE_RENDER__LEGEND", "false")

	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Deduplicate, "Default ignores files")
	assert.True(t, cfg.Render.Legend, "Default ignores the environment")
	assert.Equal(t, DefaultTTL, cfg.Cache.TTL)
}
