package frontmatter

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/frontmatter.schema.json
var schemaBytes []byte

var printer = message.NewPrinter(language.English)

// loadSchema compiles the embedded schema on first use.
var loadSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("reading front matter schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("frontmatter.schema.json", doc); err != nil {
		return nil, fmt.Errorf("adding front matter schema: %w", err)
	}
	schema, err := c.Compile("frontmatter.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compiling front matter schema: %w", err)
	}
	return schema, nil
})

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is one problem found in a post header.
type ValidationIssue struct {
	Path    string // e.g. "/date"; empty for the header as a whole
	Message string
	Keyword string // failing schema keyword, e.g. "required"
}

// String renders the issue as "path: message", or just the message at the root.
func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Validate checks the front matter of a post against the schema.
//
// A missing, unterminated, or unparsable header is reported as an issue,
// not an error. The error return is reserved for schema failures.
func Validate(content string) (*ValidationResult, error) {
	schema, err := loadSchema()
	if err != nil {
		return nil, err
	}

	header, _, err := Split(content)
	if err != nil {
		return invalid(err.Error()), nil
	}

	var doc any
	if err := yaml.Unmarshal([]byte(header), &doc); err != nil {
		return invalid(fmt.Sprintf("front matter is not valid YAML: %v", err)), nil
	}
	if doc == nil {
		doc = map[string]any{}
	}

	err = schema.Validate(instance(doc))
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("validating front matter: %w", err)
	}
	return &ValidationResult{Issues: leafIssues(ve)}, nil
}

// ValidateFile reads a post and validates its front matter.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Validate(string(data))
}

func invalid(msg string) *ValidationResult {
	return &ValidationResult{Issues: []ValidationIssue{{Message: msg}}}
}

// leafIssues flattens the error tree. The front matter schema is flat, so
// every leaf is a keyword failure on the header or one of its fields.
func leafIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	if len(ve.Causes) > 0 {
		var issues []ValidationIssue
		for _, cause := range ve.Causes {
			issues = append(issues, leafIssues(cause)...)
		}
		return issues
	}

	issue := ValidationIssue{Message: ve.ErrorKind.LocalizedString(printer)}
	if len(ve.InstanceLocation) > 0 {
		issue.Path = "/" + strings.Join(ve.InstanceLocation, "/")
	}
	if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
		issue.Keyword = kw[len(kw)-1]
	}
	return []ValidationIssue{issue}
}

// instance adapts a decoded YAML value for the validator, which only accepts
// JSON shapes. Keys such as `2024: x` are formatted as strings, and unquoted
// timestamps go back to text.
func instance(v any) any {
	switch v := v.(type) {
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case map[string]any:
		for k, e := range v {
			v[k] = instance(e)
		}
		return v
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, e := range v {
			m[fmt.Sprint(k)] = instance(e)
		}
		return m
	case []any:
		for i, e := range v {
			v[i] = instance(e)
		}
		return v
	}
	return v
}
