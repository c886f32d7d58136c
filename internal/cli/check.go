package cli

import (
	"fmt"
	"path/filepath"

	"github.com/JuneC7020/Full-Commit-Repo/internal/config"
	"github.com/JuneC7020/Full-Commit-Repo/internal/frontmatter"
	"github.com/spf13/cobra"
)

var checkFlag bool

// runCheck validates the front matter of the posts named in args. With no
// args, every *.md file in the posts directory is checked except the
// template.
func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	paths := args
	if len(paths) == 0 {
		var err error
		paths, err = listPosts(loadSettings(cmd))
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			fmt.Fprintln(out, "No posts found.")
			return nil
		}
	}

	invalid := 0
	for _, p := range paths {
		result, err := frontmatter.ValidateFile(p)
		if err != nil {
			return err
		}
		if result.Valid {
			fmt.Fprintf(out, "ok       %s\n", p)
			continue
		}
		invalid++
		fmt.Fprintf(out, "invalid  %s\n", p)
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "  - %s\n", issue)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d posts have invalid front matter", invalid, len(paths))
	}
	return nil
}

// listPosts returns the markdown files in the posts directory, skipping the
// template.
func listPosts(settings config.Settings) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(settings.PostsDir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("listing posts in %s: %w", settings.PostsDir, err)
	}

	template := filepath.Clean(settings.Template)
	var posts []string
	for _, m := range matches {
		if filepath.Clean(m) == template {
			continue
		}
		posts = append(posts, m)
	}
	return posts, nil
}
