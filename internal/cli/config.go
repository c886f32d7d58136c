package cli

import (
	"fmt"
	"strings"

	"github.com/JuneC7020/Full-Commit-Repo/internal/branding"
	"github.com/JuneC7020/Full-Commit-Repo/internal/config"
	"github.com/spf13/cobra"
)

var (
	configGetFlag  string
	configSetFlag  string
	configListFlag bool
)

func init() {
	rootCmd.Long += fmt.Sprintf(`

Settings are read from %s in the current directory. Keys: %s.
tags and categories take a comma-separated list. Environment variables such
as %s override the file.`, config.FilePath(), strings.Join(config.Keys(), ", "), branding.EnvVar(config.KeyPostsDir))
}

func configRequested(cmd *cobra.Command) bool {
	f := cmd.Flags()
	return f.Changed("config-get") || f.Changed("config-set") || f.Changed("config-list")
}

// runConfig serves --config-get, --config-set and --config-list.
func runConfig(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	config.Load()

	switch {
	case cmd.Flags().Changed("config-set"):
		key, value, ok := strings.Cut(configSetFlag, "=")
		if !ok {
			return fmt.Errorf("--config-set expects key=value, got %q", configSetFlag)
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(out, "Set %s = %s\n", key, config.Get(key))
	case cmd.Flags().Changed("config-get"):
		fmt.Fprintln(out, config.Get(configGetFlag))
	default:
		for _, key := range config.Keys() {
			fmt.Fprintf(out, "%s = %s\n", key, config.Get(key))
		}
	}
	return nil
}
