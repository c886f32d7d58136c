// Package cli defines the Cobra command for the newpost CLI. The command
// takes a post title and creates the post; flags check front matter, manage
// project settings, and print version information. The command delegates to
// internal packages for business logic and only handles flag parsing and
// output formatting.
package cli
