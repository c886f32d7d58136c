package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/JuneC7020/Full-Commit-Repo/internal/branding"
	"github.com/JuneC7020/Full-Commit-Repo/internal/config"
	"github.com/JuneC7020/Full-Commit-Repo/internal/scaffold"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Per-run overrides of the project config.
var (
	postsDirFlag string
	templateFlag string
)

const exampleTitle = "Python List Comprehensions"

// The root command has no subcommands: every positional argument belongs to
// the title, so a post can be called "check" or "help". Auxiliary actions are
// flags instead.
var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + ` "<title>"`,
	Short: branding.Description(),
	Long: `Create a new ` + branding.DisplayName() + ` blog post from a title.

The post is written to <posts_dir>/<YYYY-MM-DD>-<slug>.md using the project's
template.md, or a built-in template when there is none. Existing posts are
never overwritten.

Any argument that is not one of the flags below is taken as the title, even
when it starts with a hyphen. Use "--" to end flag parsing explicitly.`,
	Example: fmt.Sprintf(`  %[1]s %[2]q
  %[1]s -- "-5 Tips for Faster Tests"
  %[1]s --check
  %[1]s --config-set tags=go,cli`, branding.CLIName(), exampleTitle),
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: runRoot,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&postsDirFlag, "posts-dir", "", "Posts directory (default: docs/_posts)")
	f.StringVar(&templateFlag, "template", "", "Post template file (default: docs/_posts/template.md)")
	f.BoolVar(&checkFlag, "check", false, "Validate front matter of the given posts, or of every post")
	f.StringVar(&configGetFlag, "config-get", "", "Print a configuration value")
	f.StringVar(&configSetFlag, "config-set", "", "Set a configuration value (`key=value`)")
	f.BoolVar(&configListFlag, "config-list", false, "List all configuration values")
	rootCmd.MarkFlagsMutuallyExclusive("check", "config-get", "config-set", "config-list")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	setBuildInfo(version, commit, date)
	return execute(os.Args[1:])
}

func execute(args []string) error {
	rootCmd.SetArgs(titleArgs(rootCmd, args))
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// titleArgs ends flag parsing at the first argument that is not a known
// flag or flag value, so the title is never read as a flag or command name.
func titleArgs(cmd *cobra.Command, args []string) []string {
	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()
	flags := cmd.Flags()

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return args
		}
		f := lookupFlag(flags, arg)
		if f == nil {
			rewritten := make([]string, 0, len(args)+1)
			rewritten = append(rewritten, args[:i]...)
			rewritten = append(rewritten, "--")
			return append(rewritten, args[i:]...)
		}
		if f.NoOptDefVal == "" && !strings.Contains(arg, "=") {
			i++ // skip the flag's value
		}
	}
	return args
}

// lookupFlag returns the flag arg refers to, or nil when arg is not a flag
// the command defines.
func lookupFlag(flags *pflag.FlagSet, arg string) *pflag.Flag {
	switch {
	case strings.HasPrefix(arg, "--"):
		name, _, _ := strings.Cut(arg[2:], "=")
		return flags.Lookup(name)
	case strings.HasPrefix(arg, "-") && len(arg) == 2:
		return flags.ShorthandLookup(arg[1:])
	}
	return nil
}

// loadSettings reads the project config and applies flag overrides.
func loadSettings(cmd *cobra.Command) config.Settings {
	config.Load()
	s := config.Current()
	if cmd.Flags().Changed("posts-dir") {
		s.PostsDir = postsDirFlag
	}
	if cmd.Flags().Changed("template") {
		s.Template = templateFlag
	}
	return s
}

func runRoot(cmd *cobra.Command, args []string) error {
	switch {
	case checkFlag:
		return runCheck(cmd, args)
	case configRequested(cmd):
		if len(args) > 0 {
			return fmt.Errorf("config flags take no title, got %q", args[0])
		}
		return runConfig(cmd)
	}
	return runCreate(cmd, args)
}

func runCreate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Only the first argument is the title; extra words are ignored.
	var title string
	if len(args) > 0 {
		title = args[0]
	}
	if title == "" {
		printUsage(out)
		return nil
	}

	settings := loadSettings(cmd)
	result, err := scaffold.Create(title, scaffold.Options{
		PostsDir:     settings.PostsDir,
		TemplatePath: settings.Template,
		Tags:         settings.Tags,
		Categories:   settings.Categories,
	})
	if err != nil {
		return err
	}

	printResult(out, result, settings)
	return nil
}

func printUsage(out io.Writer) {
	fmt.Fprintf(out, "Usage: %s \"Your Post Title\"\n", branding.CLIName())
	fmt.Fprintln(out, "\nExample:")
	fmt.Fprintf(out, "%s %q\n", branding.CLIName(), exampleTitle)
}

func printResult(out io.Writer, result *scaffold.Result, settings config.Settings) {
	if result.Outcome == scaffold.OutcomeExists {
		fmt.Fprintf(out, "Post already exists: %s\n", result.Path)
		return
	}

	if result.Source == scaffold.SourceDefault {
		fmt.Fprintln(out, "Template not found. Creating basic template...")
	}
	fmt.Fprintf(out, "✅ Created new post: %s\n", result.Path)
	fmt.Fprintln(out, "📝 Edit the file and add your content")
	fmt.Fprintf(out, "🖼️  Add images to %s/\n", filepath.ToSlash(settings.ImagesDir))
	fmt.Fprintln(out, "🚀 Commit and push to publish")

	if len(result.Warnings) > 0 {
		fmt.Fprintln(out, "\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}
}
