// Package config defines the proxy's configuration, generalizing
// original_source/config/src/lib.rs's Config/RedisConfig pair (field
// names and defaults carried over exactly) into a Go struct loadable via
// viper, per SPEC_FULL.md §9.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// UpstreamConfig describes the upstream Redis-compatible server the
// forwarding handler splices bytes to, per spec.md §6.
type UpstreamConfig struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	Version string `mapstructure:"version"`
}

// Config is the proxy's top-level configuration, per spec.md §6.
type Config struct {
	Host     string         `mapstructure:"host"`
	Port     int            `mapstructure:"port"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
}

// Default returns the configuration spec.md §6 and original_source's
// Config::default() specify: listen on 127.0.0.1:6379, upstream
// 127.0.0.1:16379 with no fixed protocol version.
func Default() Config {
	return Config{
		Host: "127.0.0.1",
		Port: 6379,
		Upstream: UpstreamConfig{
			Host: "127.0.0.1",
			Port: 16379,
		},
	}
}

// Load reads configuration from environment variables (prefixed
// CELERITAS_) and, if configPath is non-empty, a YAML/TOML/JSON file —
// viper picks the format from the extension. Values present in neither
// source fall back to Default().
func Load(configPath string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetEnvPrefix("CELERITAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("host", cfg.Host)
	v.SetDefault("port", cfg.Port)
	v.SetDefault("upstream.host", cfg.Upstream.Host)
	v.SetDefault("upstream.port", cfg.Upstream.Port)
	v.SetDefault("upstream.version", cfg.Upstream.Version)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
