package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/JuneC7020/Full-Commit-Repo/internal/frontmatter"
)

// DateLayout is the date format used in post filenames and front matter.
const DateLayout = "2006-01-02"

// Outcome is how a Create call ended.
type Outcome int

const (
	// OutcomeUsage means no title was given; nothing was read or written.
	OutcomeUsage Outcome = iota
	// OutcomeExists means a post for this title and date is already there.
	OutcomeExists
	// OutcomeCreated means a new post file was written.
	OutcomeCreated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUsage:
		return "usage-shown"
	case OutcomeExists:
		return "already-exists"
	case OutcomeCreated:
		return "created"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Where the post content came from.
const (
	SourceFile    = "file"
	SourceDefault = "default"
)

// Options configures where posts go and what the built-in template contains.
type Options struct {
	PostsDir     string
	TemplatePath string
	Tags         []string
	Categories   []string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Result holds the outcome of a Create call.
type Result struct {
	Outcome  Outcome
	Path     string
	Date     string
	Slug     string
	Source   string // SourceFile or SourceDefault; empty unless created
	Warnings []string
}

// Filename returns the post filename for a date and slug, e.g.
// "2024-01-15-python-list-comprehensions.md".
func Filename(date, slug string) string {
	return date + "-" + slug + ".md"
}

// Create writes a new post for title into opts.PostsDir.
//
// An empty title and an existing post are reported through Result.Outcome,
// not as errors. The posts directory must already exist. Front matter
// problems in the written post are returned as Result.Warnings.
func Create(title string, opts Options) (*Result, error) {
	if title == "" {
		return &Result{Outcome: OutcomeUsage}, nil
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	date := now().Format(DateLayout)
	slug := Slugify(title)
	path := filepath.Join(opts.PostsDir, Filename(date, slug))

	result := &Result{
		Path: path,
		Date: date,
		Slug: slug,
	}

	exists, err := fileExists(path)
	if err != nil {
		return nil, err
	}
	if exists {
		result.Outcome = OutcomeExists
		return result, nil
	}

	content, source, err := loadContent(title, date, opts)
	if err != nil {
		return nil, err
	}

	// O_EXCL keeps a concurrent invocation from overwriting a post that
	// appeared after the existence check.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, fs.ErrExist) {
		result.Outcome = OutcomeExists
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("creating post %s: %w", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing post %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("closing post %s: %w", path, err)
	}

	result.Outcome = OutcomeCreated
	result.Source = source
	result.Warnings = validate(content)
	return result, nil
}

// loadContent returns the filled-in project template if one exists,
// otherwise the rendered built-in template.
func loadContent(title, date string, opts Options) (string, string, error) {
	if opts.TemplatePath != "" {
		exists, err := fileExists(opts.TemplatePath)
		if err != nil {
			return "", "", err
		}
		if exists {
			data, err := os.ReadFile(opts.TemplatePath)
			if err != nil {
				return "", "", fmt.Errorf("reading template %s: %w", opts.TemplatePath, err)
			}
			return ApplyTemplate(string(data), title, date), SourceFile, nil
		}
	}

	content, err := DefaultTemplate(NewPostData(title, date, opts.Tags, opts.Categories))
	if err != nil {
		return "", "", err
	}
	return content, SourceDefault, nil
}

// validate checks the front matter of freshly written content.
func validate(content string) []string {
	valResult, err := frontmatter.Validate(content)
	if err != nil {
		return []string{fmt.Sprintf("Could not validate front matter: %v", err)}
	}

	var warnings []string
	for _, issue := range valResult.Issues {
		warnings = append(warnings, issue.String())
	}
	return warnings
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("checking %s: %w", path, err)
}
