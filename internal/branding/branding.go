// Package branding provides compile-time identity values for the CLI and the
// blog it writes posts for.
//
// Values come from branding.yaml, embedded into the binary with //go:embed.
// Forks of the blog edit that file instead of the Go sources.
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
	CLIName        string `yaml:"cli_name"`
	DisplayName    string `yaml:"display_name"`
	Description    string `yaml:"description"`
	EnvPrefix      string `yaml:"env_prefix"`
	ConfigName     string `yaml:"config_name"`
	ImageURLPrefix string `yaml:"image_url_prefix"`
	Greeting       string `yaml:"greeting"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:        "newpost",
			DisplayName:    "fullcommit",
			Description:    "Scaffold a new fullcommit blog post",
			EnvPrefix:      "NEWPOST",
			ConfigName:     ".newpost",
			ImageURLPrefix: "/fullcommit/assets/images",
			Greeting:       "Hello, fullcommit!",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "newpost").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the blog name (e.g., "fullcommit").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "NEWPOST").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ConfigName returns the project config file name without extension.
func ConfigName() string { load(); return defaults.ConfigName }

// ImageURLPrefix returns the site URL under which post images are served.
func ImageURLPrefix() string { load(); return defaults.ImageURLPrefix }

// Greeting returns the string printed by the default template's code sample.
func Greeting() string { load(); return defaults.Greeting }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("posts_dir") → "NEWPOST_POSTS_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
