// Copyright 2025 The simple-statuspage-subscriber-lister Authors
//
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	spgerrors "github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/errors"
)

// clearEnv unsets the given variables for the duration of the test.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if old, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, old) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

var allEnv = []string{DefaultTokenEnv, EnvPageID, EnvAPIURL, EnvPerPage, EnvLogLevel, "CUSTOM_TOKEN"}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Statuspage.APIURL != "https://api.statuspage.io/v1" {
		t.Errorf("APIURL = %s, want https://api.statuspage.io/v1", cfg.Statuspage.APIURL)
	}
	if cfg.Statuspage.TokenEnv != "STATUSPAGE_TOKEN" {
		t.Errorf("TokenEnv = %s, want STATUSPAGE_TOKEN", cfg.Statuspage.TokenEnv)
	}
	if cfg.Defaults.PerPage != 100 {
		t.Errorf("PerPage = %d, want 100", cfg.Defaults.PerPage)
	}
	if cfg.Defaults.LogFormat != "text" {
		t.Errorf("LogFormat = %s, want text", cfg.Defaults.LogFormat)
	}
	if cfg.Defaults.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.Defaults.LogLevel)
	}
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t, allEnv...)
	t.Setenv("CUSTOM_TOKEN", "file-token")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
statuspage:
  api_url: https://statuspage.internal.example.com/v1
  page_id: page_from_file
  token_env: CUSTOM_TOKEN

defaults:
  per_page: 25
  log_format: json
  log_level: debug
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(LoadOptions{ConfigPath: configPath})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Statuspage.APIURL != "https://statuspage.internal.example.com/v1" {
		t.Errorf("APIURL = %s", cfg.Statuspage.APIURL)
	}
	if cfg.Statuspage.PageID != "page_from_file" {
		t.Errorf("PageID = %s, want page_from_file", cfg.Statuspage.PageID)
	}
	if cfg.Statuspage.Token != "file-token" {
		t.Errorf("Token = %q, want token read from CUSTOM_TOKEN", cfg.Statuspage.Token)
	}
	if cfg.Defaults.PerPage != 25 {
		t.Errorf("PerPage = %d, want 25", cfg.Defaults.PerPage)
	}
	if cfg.Defaults.LogFormat != "json" {
		t.Errorf("LogFormat = %s, want json", cfg.Defaults.LogFormat)
	}
	if cfg.Sources.ConfigFile != configPath {
		t.Errorf("Sources.ConfigFile = %q, want %q", cfg.Sources.ConfigFile, configPath)
	}
	if cfg.Sources.EnvFile != "" {
		t.Errorf("Sources.EnvFile = %q, want empty", cfg.Sources.EnvFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	clearEnv(t, allEnv...)

	_, err := Load(LoadOptions{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")})
	if !errors.Is(err, spgerrors.ErrConfig) {
		t.Fatalf("Load() error = %v, want ErrConfig", err)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	clearEnv(t, allEnv...)
	t.Setenv(EnvAPIURL, "https://custom.api.com/v1")
	t.Setenv(EnvPageID, "env_page")
	t.Setenv(EnvPerPage, "50")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(DefaultTokenEnv, "  env-token  ")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	configContent := `
statuspage:
  api_url: https://file.api.com/v1
  page_id: file_page
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(LoadOptions{ConfigPath: configPath})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Statuspage.APIURL != "https://custom.api.com/v1" {
		t.Errorf("APIURL = %s, want https://custom.api.com/v1", cfg.Statuspage.APIURL)
	}
	if cfg.Statuspage.PageID != "env_page" {
		t.Errorf("PageID = %s, want env_page", cfg.Statuspage.PageID)
	}
	if cfg.Defaults.PerPage != 50 {
		t.Errorf("PerPage = %d, want 50", cfg.Defaults.PerPage)
	}
	if cfg.Defaults.LogLevel != "warn" {
		t.Errorf("LogLevel = %s, want warn", cfg.Defaults.LogLevel)
	}
	if cfg.Statuspage.Token != "env-token" {
		t.Errorf("Token = %q, want env-token", cfg.Statuspage.Token)
	}
}

func TestInvalidPerPageEnv(t *testing.T) {
	clearEnv(t, allEnv...)
	t.Setenv(EnvPerPage, "lots")

	_, err := Load(LoadOptions{})
	if !errors.Is(err, spgerrors.ErrConfig) {
		t.Fatalf("Load() error = %v, want ErrConfig", err)
	}
	if !strings.Contains(err.Error(), EnvPerPage) {
		t.Errorf("error %q does not name %s", err, EnvPerPage)
	}
}

func TestEnvFile(t *testing.T) {
	clearEnv(t, allEnv...)
	// The real environment wins over the env file.
	t.Setenv(EnvPageID, "real_env_page")

	envPath := filepath.Join(t.TempDir(), "statuspage.env")
	envContent := "STATUSPAGE_TOKEN=dotenv-token\nSTATUSPAGE_PAGE_ID=dotenv_page\nSTATUSPAGE_PER_PAGE=10\n"
	if err := os.WriteFile(envPath, []byte(envContent), 0o600); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	cfg, err := Load(LoadOptions{EnvFile: envPath})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Statuspage.Token != "dotenv-token" {
		t.Errorf("Token = %q, want dotenv-token", cfg.Statuspage.Token)
	}
	if cfg.Statuspage.PageID != "real_env_page" {
		t.Errorf("PageID = %s, want real_env_page", cfg.Statuspage.PageID)
	}
	if cfg.Defaults.PerPage != 10 {
		t.Errorf("PerPage = %d, want 10", cfg.Defaults.PerPage)
	}
	if cfg.Sources.EnvFile != envPath {
		t.Errorf("Sources.EnvFile = %q, want %q", cfg.Sources.EnvFile, envPath)
	}
}

func TestMissingExplicitEnvFile(t *testing.T) {
	clearEnv(t, allEnv...)

	_, err := Load(LoadOptions{EnvFile: filepath.Join(t.TempDir(), "missing.env")})
	if !errors.Is(err, spgerrors.ErrConfig) {
		t.Fatalf("Load() error = %v, want ErrConfig", err)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Statuspage.PageID = "env_page"

	cfg.Apply(Overrides{})
	if cfg.Statuspage.PageID != "env_page" || cfg.Statuspage.APIURL != DefaultAPIURL {
		t.Errorf("empty overrides changed config: %+v", cfg.Statuspage)
	}

	cfg.Apply(Overrides{PageID: "flag_page", APIURL: "http://127.0.0.1:8080/v1"})
	if cfg.Statuspage.PageID != "flag_page" {
		t.Errorf("PageID = %s, want flag_page", cfg.Statuspage.PageID)
	}
	if cfg.Statuspage.APIURL != "http://127.0.0.1:8080/v1" {
		t.Errorf("APIURL = %s, want http://127.0.0.1:8080/v1", cfg.Statuspage.APIURL)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := DefaultConfig()
		cfg.Statuspage.Token = "token"
		cfg.Statuspage.PageID = "page_x"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: "",
		},
		{
			name: "missing token and page",
			mutate: func(c *Config) {
				c.Statuspage.Token = ""
				c.Statuspage.PageID = ""
			},
			wantErr: "missing required configuration: STATUSPAGE_TOKEN, STATUSPAGE_PAGE_ID",
		},
		{
			name: "missing token names custom variable",
			mutate: func(c *Config) {
				c.Statuspage.Token = ""
				c.Statuspage.TokenEnv = "SP_KEY"
			},
			wantErr: "missing required configuration: SP_KEY",
		},
		{
			name:    "bad url",
			mutate:  func(c *Config) { c.Statuspage.APIURL = "api.statuspage.io" },
			wantErr: "invalid API URL",
		},
		{
			name:    "per page too large",
			mutate:  func(c *Config) { c.Defaults.PerPage = 150 },
			wantErr: "per_page must be between 1 and 100",
		},
		{
			name:    "per page zero",
			mutate:  func(c *Config) { c.Defaults.PerPage = 0 },
			wantErr: "per_page must be between 1 and 100",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Defaults.LogFormat = "xml" },
			wantErr: "log format must be text or json",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Defaults.LogLevel = "chatty" },
			wantErr: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() error = nil, want %s", tt.wantErr)
			}
			if !errors.Is(err, spgerrors.ErrConfig) {
				t.Errorf("Validate() error = %v, want ErrConfig", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %s", err, tt.wantErr)
			}
		})
	}
}

func TestPageURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Statuspage.PageID = "page_x"
	if got := cfg.PageURL(); got != "https://api.statuspage.io/v1/pages/page_x" {
		t.Errorf("PageURL() = %s", got)
	}

	cfg.Statuspage.APIURL = "http://localhost:9000/v1/"
	if got := cfg.PageURL(); got != "http://localhost:9000/v1/pages/page_x" {
		t.Errorf("PageURL() with trailing slash = %s", got)
	}
}

func TestExpandPath(t *testing.T) {
	home := os.Getenv("HOME")
	if home == "" {
		home = os.Getenv("USERPROFILE")
	}

	tests := []struct {
		input string
		want  string
	}{
		{"~/test", filepath.Join(home, "test")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		if got := expandPath(tt.input); got != tt.want {
			t.Errorf("expandPath(%s) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"50", 50, false},
		{"1", 1, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := parsePositiveInt(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePositiveInt(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parsePositiveInt(%s) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
