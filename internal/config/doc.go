// Package config manages project settings stored in .newpost.yaml at the
// blog repository root. Values may be overridden with NEWPOST_* environment
// variables; unset keys fall back to the blog's standard layout
// (docs/_posts, docs/_posts/template.md, docs/assets/images).
package config
