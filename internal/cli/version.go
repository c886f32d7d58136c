package cli

import "fmt"

// setBuildInfo enables --version with the build info injected via ldflags.
func setBuildInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}} (commit: %s, built: %s)\n", commit, date))
}
