package scaffold

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// space matches Unicode whitespace, including the separators Go's \s omits.
const space = `\s\v\p{Z}\x{85}\x{1c}-\x{1f}`

var (
	unsafeChars = regexp.MustCompile(`[^\p{L}\p{N}_` + space + `-]+`)
	separators  = regexp.MustCompile(`[` + space + `-]+`)
)

// Slugify converts a title to a URL-friendly slug: lowercase, with only
// letters, digits, underscores and single hyphens between words.
// Titles with nothing worth keeping yield "".
func Slugify(title string) string {
	s := cases.Lower(language.Und).String(title)
	s = unsafeChars.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
