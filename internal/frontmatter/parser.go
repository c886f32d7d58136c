package frontmatter

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

const delimiter = "---"

// ErrNoFrontMatter is returned when content does not open with a "---" line.
var ErrNoFrontMatter = errors.New("post has no front matter block")

// ErrUnterminated is returned when the opening "---" has no closing partner.
var ErrUnterminated = errors.New("front matter block is not terminated by ---")

// Split separates a post into its front matter header (without delimiters)
// and the body that follows the closing delimiter.
func Split(content string) (header, body string, err error) {
	content = strings.TrimPrefix(content, "\ufeff")
	lines := strings.SplitAfter(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r\n") != delimiter {
		return "", "", ErrNoFrontMatter
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r\n") == delimiter {
			header = strings.Join(lines[1:i], "")
			body = strings.Join(lines[i+1:], "")
			return header, body, nil
		}
	}
	return "", "", ErrUnterminated
}

// Parse decodes the front matter of a post.
func Parse(content string) (*FrontMatter, error) {
	header, _, err := Split(content)
	if err != nil {
		return nil, err
	}

	var fm FrontMatter
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return nil, fmt.Errorf("parsing front matter: %w", err)
	}
	return &fm, nil
}

// ParseFile reads a post from disk and decodes its front matter.
func ParseFile(path string) (*FrontMatter, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	fm, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fm, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
