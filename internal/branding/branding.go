// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	ConfigDir   string `yaml:"config_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	APIURL      string `yaml:"api_url"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "pocket",
			DisplayName: "Pocket",
			Description: "Command line client for the Pocket read-later service",
			ConfigDir:   ".config/pocket",
			EnvPrefix:   "POCKET",
			APIURL:      "https://getpocket.com",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "pocket").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Pocket").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// ConfigDir returns the settings directory relative to $HOME (e.g., ".config/pocket").
func ConfigDir() string { load(); return defaults.ConfigDir }

// APIURL returns the origin of the remote API, without a trailing slash.
func APIURL() string { load(); return strings.TrimRight(defaults.APIURL, "/") }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("access_token") → "POCKET_ACCESS_TOKEN".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
