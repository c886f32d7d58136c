package frontmatter

// FrontMatter holds the header fields consumed by the site generator.
type FrontMatter struct {
	Layout      string   `yaml:"layout" json:"layout"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Date        string   `yaml:"date" json:"date"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Categories  []string `yaml:"categories,omitempty" json:"categories,omitempty"`
}
