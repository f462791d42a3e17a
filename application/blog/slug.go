package blog

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases title, collapses every run of characters outside [a-z0-9] into a
// single hyphen and trims hyphens from both ends. Slugify(Slugify(s)) == Slugify(s).
func Slugify(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
