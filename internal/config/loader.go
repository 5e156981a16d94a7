package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "INITSTATE_"

// fileNames are searched in the working directory when no file is given.
var fileNames = []string{"initstate.yaml", "initstate.yml"}

// flagKeys maps command-line flag names onto configuration keys.
// Flags not listed here are not configuration.
var flagKeys = map[string]string{
	"verbose":   "verbose",
	"invert":    "render.invert_rows",
	"legend":    "render.legend",
	"detailed":  "render.detailed",
	"cache-dir": "cache.dir",
	"no-cache":  "cache.disabled",
	"redis-url": "cache.redis_url",
	"addr":      "serve.addr",
}

// findConfigFile returns the file to read: explicit if set, else the first
// default name present in the working directory.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range fileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Default returns the built-in configuration, ignoring files, environment
// and flags.
func Default() *Config {
	k := koanf.New(".")
	_ = k.Load(confmap.Provider(defaults(), "."), nil)
	var cfg Config
	_ = k.Unmarshal("", &cfg)
	return &cfg
}

// Load reads configuration from defaults, file, environment and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	// 2. Config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", used, err)
		}
	}

	// 3. Environment: INITSTATE_CACHE__DISABLED -> cache.disabled
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	// 4. Flags (only those explicitly set)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			if f.Name == "no-dedup" {
				v, _ := flags.GetBool("no-dedup")
				return "deduplicate", !v
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		if used != "" {
			return nil, fmt.Errorf("%s: %w", used, err)
		}
		return nil, err
	}
	return &cfg, nil
}
