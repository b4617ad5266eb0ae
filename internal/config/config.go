// Copyright 2025 The simple-statuspage-subscriber-lister Authors
//
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

// Package config provides configuration management for
// get_subscribers_for_component with support for multiple configuration
// sources and a well-defined precedence order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Environment file (.env by default)
//  4. YAML configuration file
//  5. Built-in defaults
//
// The environment file is loaded into the process environment without
// replacing variables that are already set, which is what puts it below the
// real environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	spgerrors "github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/errors"
)

const defaultEnvFile = ".env"

// Environment variable names.
const (
	EnvPageID   = "STATUSPAGE_PAGE_ID"
	EnvAPIURL   = "STATUSPAGE_API_URL"
	EnvPerPage  = "STATUSPAGE_PER_PAGE"
	EnvLogLevel = "STATUSPAGE_LOG_LEVEL"
)

// Load loads configuration from all sources and applies them in precedence
// order. If opts.ConfigPath is set, that YAML file must exist. Otherwise the
// first of these that exists is used:
//   - .statuspage.yaml (current directory)
//   - .statuspage.yml (current directory)
//   - ~/.statuspage/config.yaml
//
// Likewise an explicit opts.EnvFile must exist, while the default .env is
// optional. The files actually read are recorded in Config.Sources. Load
// does not validate; call Validate once flags are applied.
func Load(opts LoadOptions) (*Config, error) {
	envFile, err := loadEnvFile(opts.EnvFile)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	cfg.Sources.EnvFile = envFile

	if opts.ConfigPath != "" {
		if err := loadConfigFile(expandPath(opts.ConfigPath), cfg); err != nil {
			return nil, err
		}
	} else {
		defaultPaths := []string{
			".statuspage.yaml",
			".statuspage.yml",
			expandPath("~/.statuspage/config.yaml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, err
				}
				break
			}
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadEnvFile loads KEY=VALUE pairs into the process environment and
// returns the file it read, or "" when the default .env is absent.
func loadEnvFile(path string) (string, error) {
	if path == "" {
		if _, err := os.Stat(defaultEnvFile); err != nil {
			return "", nil
		}
		path = defaultEnvFile
	}

	if err := godotenv.Load(expandPath(path)); err != nil {
		return "", &spgerrors.ConfigError{Message: fmt.Sprintf("failed to load env file %s: %v", path, err)}
	}
	return path, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &spgerrors.ConfigError{Message: fmt.Sprintf("failed to read config file %s: %v", path, err)}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return &spgerrors.ConfigError{Message: fmt.Sprintf("failed to parse config file %s: %v", path, err)}
	}

	cfg.Sources.ConfigFile = path
	return nil
}

// applyEnvOverrides applies environment variable overrides to config and
// reads the API token from the configured variable.
func applyEnvOverrides(cfg *Config) error {
	if apiURL := os.Getenv(EnvAPIURL); apiURL != "" {
		cfg.Statuspage.APIURL = apiURL
	}
	if pageID := os.Getenv(EnvPageID); pageID != "" {
		cfg.Statuspage.PageID = pageID
	}
	if perPage := os.Getenv(EnvPerPage); perPage != "" {
		size, err := parsePositiveInt(perPage)
		if err != nil {
			return &spgerrors.ConfigError{Message: fmt.Sprintf("invalid %s: %v", EnvPerPage, err)}
		}
		cfg.Defaults.PerPage = size
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Defaults.LogLevel = level
	}

	if cfg.Statuspage.TokenEnv == "" {
		cfg.Statuspage.TokenEnv = DefaultTokenEnv
	}
	cfg.Statuspage.Token = strings.TrimSpace(os.Getenv(cfg.Statuspage.TokenEnv))
	return nil
}

// Apply overlays command-line values on the loaded configuration.
func (c *Config) Apply(o Overrides) {
	if o.PageID != "" {
		c.Statuspage.PageID = o.PageID
	}
	if o.APIURL != "" {
		c.Statuspage.APIURL = o.APIURL
	}
}

// Validate checks that the required values are present and the optional ones
// are sane. All missing required values are reported in a single ConfigError.
func (c *Config) Validate() error {
	var missing []string
	if c.Statuspage.Token == "" {
		missing = append(missing, c.Statuspage.TokenEnv)
	}
	if c.Statuspage.PageID == "" {
		missing = append(missing, EnvPageID)
	}
	if len(missing) > 0 {
		return &spgerrors.ConfigError{Missing: missing}
	}

	u, err := url.Parse(c.Statuspage.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &spgerrors.ConfigError{Message: fmt.Sprintf("invalid API URL %q", c.Statuspage.APIURL)}
	}
	if c.Defaults.PerPage <= 0 || c.Defaults.PerPage > MaxPerPage {
		return &spgerrors.ConfigError{Message: fmt.Sprintf("per_page must be between 1 and %d, got: %d", MaxPerPage, c.Defaults.PerPage)}
	}
	if c.Defaults.LogFormat != "text" && c.Defaults.LogFormat != "json" {
		return &spgerrors.ConfigError{Message: fmt.Sprintf("log format must be text or json, got: %q", c.Defaults.LogFormat)}
	}
	if _, err := logrus.ParseLevel(c.Defaults.LogLevel); err != nil {
		return &spgerrors.ConfigError{Message: fmt.Sprintf("invalid log level: %v", err)}
	}
	return nil
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			home = os.Getenv("USERPROFILE") // Windows
		}
		path = filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// parsePositiveInt parses a string to a positive integer
func parsePositiveInt(s string) (int, error) {
	var i int
	_, err := fmt.Sscanf(s, "%d", &i)
	if err != nil {
		return 0, fmt.Errorf("failed to parse integer from '%s': %w", s, err)
	}
	if i <= 0 {
		return 0, fmt.Errorf("value must be positive, got: %d", i)
	}
	return i, nil
}
