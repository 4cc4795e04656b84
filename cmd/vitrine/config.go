package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tinytelemetry/vitrine/internal/catalog"
)

// cliConfig holds the browser-relevant configuration.
type cliConfig struct {
	ServerAddr     string        `mapstructure:"server-addr"`
	Source         string        `mapstructure:"source"` // "static" or "http"
	FetchTimeout   time.Duration `mapstructure:"fetch-timeout"`
	StaticLatency  time.Duration `mapstructure:"static-latency"`
	StaticFailRate int           `mapstructure:"static-fail-every"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("VITRINE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("server-addr", catalog.DefaultServerAddr)
	v.SetDefault("source", "static")
	v.SetDefault("fetch-timeout", catalog.DefaultFetchTimeout)
	v.SetDefault("static-latency", catalog.DefaultStaticLatency)
	v.SetDefault("static-fail-every", 0)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "vitrine", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	if cfg.Source != "static" && cfg.Source != "http" {
		return cfg, fmt.Errorf("invalid source %q: want static or http", cfg.Source)
	}

	return cfg, nil
}
