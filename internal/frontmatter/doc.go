// Package frontmatter handles the YAML header block at the top of a blog
// post. It splits a post into header and body, decodes the header, and
// validates it against the JSON Schema the site generator expects
// (layout, title, description, date, tags, categories).
package frontmatter
