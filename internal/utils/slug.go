package utils

import (
	"regexp"
	"strings"
)

var (
	slugDisallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace = regexp.MustCompile(`\s+`)
)

// Slugify lowercases the input, strips everything outside [a-z0-9 -],
// trims and joins whitespace runs with a single hyphen.
func Slugify(input string) string {
	slug := strings.ToLower(input)
	slug = slugDisallowed.ReplaceAllString(slug, "")
	slug = strings.TrimSpace(slug)
	return slugWhitespace.ReplaceAllString(slug, "-")
}
