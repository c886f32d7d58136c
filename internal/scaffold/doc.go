// Package scaffold creates new blog posts. It powers the root "newpost"
// command: derive a slug and dated filename from a title, fill in the
// project's template.md (or the built-in default), and write the post if
// it does not exist yet.
package scaffold
