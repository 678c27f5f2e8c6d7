// Package config loads CLI configuration. Precedence, highest to lowest:
// flags > SQLSHIFT_ environment variables > config file > defaults.
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

// Config holds the resolved CLI configuration.
type Config struct {
	Dialect      string `koanf:"dialect"`
	Port         int    `koanf:"port"`
	CacheSize    int    `koanf:"cache-size"`
	ReplaceOrder bool   `koanf:"replace-order"`
	LogLevel     string `koanf:"log-level"`
	Verbose      bool   `koanf:"verbose"`
}

var defaults = map[string]interface{}{
	"dialect":       "default",
	"port":          8080,
	"cache-size":    1024,
	"replace-order": false,
	"log-level":     "info",
	"verbose":       false,
}

// findConfigFile finds the config file to use.
// Priority: explicit path > sqlshift.yaml > sqlshift.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"sqlshift.yaml", "sqlshift.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load resolves the configuration from defaults, an optional YAML file,
// SQLSHIFT_ environment variables, and the given flag set.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// an explicit path that does not exist fails the file.Provider load
	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	// SQLSHIFT_LOG_LEVEL -> log-level
	err := k.Load(env.Provider("SQLSHIFT_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "SQLSHIFT_")), "_", "-")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}
