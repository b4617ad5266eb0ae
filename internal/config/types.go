// Copyright 2025 The simple-statuspage-subscriber-lister Authors
//
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

// Package config types define the configuration structures used throughout
// get_subscribers_for_component. These types represent settings that can be
// loaded from YAML configuration files, environment files, environment
// variables, or command-line flags.
package config

import (
	"net/url"
	"strings"
)

// Config represents the complete configuration for a run. It is built once
// at startup and handed by pointer to the components that need it.
type Config struct {
	Statuspage StatuspageConfig `yaml:"statuspage"`
	Defaults   DefaultsConfig   `yaml:"defaults"`

	Sources Sources `yaml:"-"`
}

// Sources records which files Load read. Empty fields mean the file was
// not used.
type Sources struct {
	EnvFile    string
	ConfigFile string
}

// StatuspageConfig contains the API endpoint, the page to inspect and the
// name of the environment variable holding the API token. The token itself is
// never read from the YAML file.
type StatuspageConfig struct {
	APIURL   string `yaml:"api_url"`
	PageID   string `yaml:"page_id"`
	TokenEnv string `yaml:"token_env"`
	Token    string `yaml:"-"`
}

// DefaultsConfig contains operational settings.
type DefaultsConfig struct {
	// PerPage is the page size requested from paginated endpoints.
	// Statuspage caps it at 100.
	PerPage   int    `yaml:"per_page"`
	LogFormat string `yaml:"log_format"`
	LogLevel  string `yaml:"log_level"`
}

// Overrides holds values supplied on the command line. Empty fields leave
// the loaded configuration untouched.
type Overrides struct {
	PageID string
	APIURL string
}

// LoadOptions selects the files Load reads. Empty paths mean "use the
// standard locations if present".
type LoadOptions struct {
	ConfigPath string
	EnvFile    string
}

// Default values
const (
	DefaultAPIURL   = "https://api.statuspage.io/v1"
	DefaultTokenEnv = "STATUSPAGE_TOKEN"
	DefaultPerPage  = 100
	MaxPerPage      = 100
)

// DefaultConfig returns a Config pointing at the public Statuspage API.
func DefaultConfig() *Config {
	return &Config{
		Statuspage: StatuspageConfig{
			APIURL:   DefaultAPIURL,
			TokenEnv: DefaultTokenEnv,
		},
		Defaults: DefaultsConfig{
			PerPage:   DefaultPerPage,
			LogFormat: "text",
			LogLevel:  "info",
		},
	}
}

// PageURL returns the base URL of the configured page, without a trailing
// slash, e.g. https://api.statuspage.io/v1/pages/abc123.
func (c *Config) PageURL() string {
	return strings.TrimRight(c.Statuspage.APIURL, "/") + "/pages/" + url.PathEscape(c.Statuspage.PageID)
}
