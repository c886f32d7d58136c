package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/JuneC7020/Full-Commit-Repo/internal/branding"
	"github.com/spf13/viper"
)

const fileType = "yaml"

// Config keys.
const (
	KeyPostsDir   = "posts_dir"
	KeyTemplate   = "template"
	KeyImagesDir  = "images_dir"
	KeyTags       = "tags"
	KeyCategories = "categories"
)

// Default layout of the blog repository, relative to the working directory.
var (
	DefaultPostsDir   = filepath.Join("docs", "_posts")
	DefaultTemplate   = filepath.Join("docs", "_posts", "template.md")
	DefaultImagesDir  = filepath.Join("docs", "assets", "images")
	DefaultTags       = []string{"python", "learning", "tips"}
	DefaultCategories = []string{"python"}
)

var listKeys = []string{KeyTags, KeyCategories}

// Settings is a resolved snapshot of the configuration.
type Settings struct {
	PostsDir   string
	Template   string
	ImagesDir  string
	Tags       []string
	Categories []string
}

// Keys returns every recognised config key.
func Keys() []string {
	return []string{KeyPostsDir, KeyTemplate, KeyImagesDir, KeyTags, KeyCategories}
}

// FilePath returns the path to the project config file (./.newpost.yaml).
func FilePath() string {
	return branding.ConfigName() + "." + fileType
}

// Load initializes Viper to read from the project config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyPostsDir, DefaultPostsDir)
	viper.SetDefault(KeyTemplate, DefaultTemplate)
	viper.SetDefault(KeyImagesDir, DefaultImagesDir)
	viper.SetDefault(KeyTags, DefaultTags)
	viper.SetDefault(KeyCategories, DefaultCategories)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the settings resolved from defaults, file, and environment.
func Current() Settings {
	return Settings{
		PostsDir:   viper.GetString(KeyPostsDir),
		Template:   viper.GetString(KeyTemplate),
		ImagesDir:  viper.GetString(KeyImagesDir),
		Tags:       getList(KeyTags),
		Categories: getList(KeyCategories),
	}
}

// Get returns a config value by key. List values are joined with ", ".
// Returns empty string if not set.
func Get(key string) string {
	if slices.Contains(listKeys, key) {
		return strings.Join(getList(key), ", ")
	}
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file. List keys
// take a comma-separated value.
//
// The file is rewritten from its own contents only, so defaults and
// environment overrides are never persisted.
func Set(key, value string) error {
	if !slices.Contains(Keys(), key) {
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys(), ", "))
	}

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType(fileType)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}

	var stored any = value
	if slices.Contains(listKeys, key) {
		stored = splitList(value)
	}
	v.Set(key, stored)
	viper.Set(key, stored)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// getList reads a list key. Environment variables arrive as plain strings
// and are split on commas.
func getList(key string) []string {
	if s, ok := viper.Get(key).(string); ok {
		return splitList(s)
	}
	return viper.GetStringSlice(key)
}

// splitList turns "a, b,,c" into [a b c].
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
