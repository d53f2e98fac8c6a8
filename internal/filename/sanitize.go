// Package filename derives canonical, filesystem-safe filenames from
// recognized filing metadata.
package filename

import (
	"regexp"
	"strings"
)

var (
	unsafeCharsPattern = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	multiHyphenPattern = regexp.MustCompile(`-+`)
)

// Sanitize maps an arbitrary label into an uppercase hyphen-delimited token
// containing only letters, digits, hyphens, and underscores. The " & "
// replacement must happen before plain spaces are replaced, otherwise the
// surrounding spaces would each become a hyphen.
func Sanitize(label string) string {
	s := strings.ReplaceAll(label, " & ", "-")
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "&", "-")
	s = strings.ReplaceAll(s, ".", "")
	s = unsafeCharsPattern.ReplaceAllString(s, "")
	s = multiHyphenPattern.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return strings.ToUpper(s)
}
