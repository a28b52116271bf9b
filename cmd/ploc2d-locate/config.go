package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/ryan-topping/sick-ploc2d/ploc2d"
)

// fileConfig is the TOML key mapping for the device settings file.
type fileConfig struct {
	Host           string  `toml:"host"`
	Port           int     `toml:"port"`
	TimeoutSeconds float64 `toml:"timeout_seconds"`
	BufferSize     int     `toml:"buffer_size"`
	Verbose        bool    `toml:"verbose"`
}

// envOverrides are environment variables applied on top of the file config.
type envOverrides struct {
	Host       string        `env:"PLOC2D_HOST"`
	Port       int           `env:"PLOC2D_PORT"`
	Timeout    time.Duration `env:"PLOC2D_TIMEOUT"`
	BufferSize int           `env:"PLOC2D_BUFFER_SIZE"`
	Verbose    bool          `env:"PLOC2D_VERBOSE"`
}

type cliConfig struct {
	Host       string
	Port       int
	Timeout    time.Duration
	BufferSize int
	Verbose    bool
}

func defaultCLIConfig() cliConfig {
	return cliConfig{
		Port:       ploc2d.DefaultPort,
		Timeout:    3 * time.Second,
		BufferSize: 1024,
	}
}

// loadConfig builds the effective configuration: defaults, overlaid by the
// TOML file at path (when given), overlaid by PLOC2D_* environment
// variables.
func loadConfig(path string) (cliConfig, error) {
	cfg := defaultCLIConfig()

	if path != "" {
		var raw fileConfig
		meta, err := toml.DecodeFile(path, &raw)
		if err != nil {
			return cliConfig{}, fmt.Errorf("load config: %w", err)
		}

		if meta.IsDefined("host") {
			cfg.Host = strings.TrimSpace(raw.Host)
		}
		if meta.IsDefined("port") {
			cfg.Port = raw.Port
		}
		if meta.IsDefined("timeout_seconds") {
			cfg.Timeout = time.Duration(raw.TimeoutSeconds * float64(time.Second))
		}
		if meta.IsDefined("buffer_size") {
			cfg.BufferSize = raw.BufferSize
		}
		if meta.IsDefined("verbose") {
			cfg.Verbose = raw.Verbose
		}
	}

	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return cliConfig{}, fmt.Errorf("parse env: %w", err)
	}

	if overrides.Host != "" {
		cfg.Host = overrides.Host
	}
	if overrides.Port != 0 {
		cfg.Port = overrides.Port
	}
	if overrides.Timeout != 0 {
		cfg.Timeout = overrides.Timeout
	}
	if overrides.BufferSize != 0 {
		cfg.BufferSize = overrides.BufferSize
	}
	if overrides.Verbose {
		cfg.Verbose = true
	}

	if cfg.Host == "" {
		return cliConfig{}, errors.New("device host not set (config file or PLOC2D_HOST)")
	}

	return cfg, nil
}
