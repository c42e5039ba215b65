// Package slug turns display titles into URL-safe path segments.
package slug

import (
	"regexp"
	"strings"
)

var (
	// stripPattern matches anything that is not a letter, digit, whitespace,
	// or hyphen. Letters outside ASCII pass through untouched.
	stripPattern = regexp.MustCompile(`[^\p{L}\p{N}\s-]`)
	spaceRuns    = regexp.MustCompile(`\s+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// Generate normalizes a title into a lowercase, hyphen-separated slug with no
// leading, trailing, or duplicate hyphens. An input that strips down to
// nothing yields an empty string; callers must treat that as invalid.
func Generate(title string) string {
	out := strings.ToLower(strings.TrimSpace(title))
	out = stripPattern.ReplaceAllString(out, "")
	out = spaceRuns.ReplaceAllString(out, "-")
	out = hyphenRuns.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}
