package extract

import (
	"regexp"
	"strings"
)

// maxFilerNameLength is the point at which a cleaned filer name is
// abbreviated to its first two words. Lossy by intent; long institutional
// names would otherwise dominate the filename.
const maxFilerNameLength = 30

// filerRules capture the reporting-person name between its label (optionally
// followed by a row-number line) and the next structural marker: a following
// numbered line, a "Check" marker, or end of line.
var filerRules = []Rule{
	// Standard 13G/13D format.
	{Pattern: regexp.MustCompile(`(?im)Names? of Reporting Persons?\s*\n\s*([A-Z][A-Z\s&,.]+?)(?:\n\d|\nCheck|$)`)},
	// Name on the line after the row number "1".
	{Pattern: regexp.MustCompile(`(?im)Names? of Reporting Persons?\s*\n\s*\d+\s*\n\s*([A-Z][A-Z\s&,.]+?)(?:\n|$)`)},
	// Singular form, common in 13D.
	{Pattern: regexp.MustCompile(`(?im)Name of reporting person\s*\n\s*\d*\s*\n?\s*([A-Z][A-Za-z\s]+?)(?:\n\d|\nCheck|$)`)},
	// Alternative "person filing" format.
	{Pattern: regexp.MustCompile(`(?im)Name of person filing:\s*\n?\s*([A-Z][A-Z\s&,.]+?)(?:\n|$)`)},
	// Item 2(a) format.
	{Pattern: regexp.MustCompile(`(?im)Item 2\.\s*\(a\)\s*Name of person filing:\s*\n?\s*([^\n]+)`)},
}

var (
	filerSuffixPattern = regexp.MustCompile(`(?i)\s+(LLC|LP|LLP|LTD|LIMITED|INC|INCORPORATED|CORP|CORPORATION)\.?$`)
	filerSpacesPattern = regexp.MustCompile(`\s+`)
)

// FindFilerName locates and cleans the reporting person's name. Returns
// false when no pattern matches or the cleaned name is empty.
func FindFilerName(text string) (string, bool) {
	raw, ok := firstMatch(filerRules, text)
	if !ok {
		return "", false
	}

	name := cleanFilerName(raw)
	if name == "" {
		return "", false
	}
	return name, true
}

// cleanFilerName collapses newlines, strips one trailing legal-entity suffix
// (keeping "& CO" style names intact), collapses whitespace, and abbreviates
// over-long names to their first two words.
func cleanFilerName(raw string) string {
	name := strings.ReplaceAll(raw, "\n", " ")
	name = strings.TrimSpace(name)
	name = filerSuffixPattern.ReplaceAllString(name, "")
	name = filerSpacesPattern.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)

	if len(name) > maxFilerNameLength {
		words := strings.Fields(name)
		if len(words) > 2 {
			name = strings.Join(words[:2], " ")
		}
	}

	return name
}
