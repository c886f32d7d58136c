package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/JuneC7020/Full-Commit-Repo/internal/branding"
)

//go:embed templates/default.md.tmpl
var templateFS embed.FS

const defaultTemplateName = "templates/default.md.tmpl"

// Placeholders replaced in a project's template.md.
const (
	TitlePlaceholder = "Your Post Title Here"
	DatePlaceholder  = "YYYY-MM-DD"
)

// PostData holds all variables available to the built-in post template.
type PostData struct {
	Title          string
	Date           string // YYYY-MM-DD
	Tags           []string
	Categories     []string
	Greeting       string // printed by the sample code block
	ImageURLPrefix string // e.g., "/fullcommit/assets/images"
}

// NewPostData creates a PostData with the branding fields populated.
func NewPostData(title, date string, tags, categories []string) *PostData {
	return &PostData{
		Title:          title,
		Date:           date,
		Tags:           tags,
		Categories:     categories,
		Greeting:       branding.Greeting(),
		ImageURLPrefix: strings.TrimSuffix(branding.ImageURLPrefix(), "/"),
	}
}

var funcs = template.FuncMap{
	"join": strings.Join,
}

// DefaultTemplate renders the built-in post skeleton used when the project
// has no template.md.
func DefaultTemplate(data *PostData) (string, error) {
	tmplBytes, err := templateFS.ReadFile(defaultTemplateName)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", defaultTemplateName, err)
	}

	tmpl, err := template.New("default.md").Funcs(funcs).Parse(string(tmplBytes))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", defaultTemplateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", defaultTemplateName, err)
	}
	return buf.String(), nil
}

// ApplyTemplate fills a project template by literal replacement: every
// TitlePlaceholder becomes title, then every DatePlaceholder becomes date.
func ApplyTemplate(content, title, date string) string {
	content = strings.ReplaceAll(content, TitlePlaceholder, title)
	return strings.ReplaceAll(content, DatePlaceholder, date)
}
