package extract

import "regexp"

// ownershipRules capture the percent-of-class figure from 13G/13D filings in
// both two-line (label, row index line, numeric line) and single-line
// layouts. The captured numeric string is returned verbatim; formatting
// happens at filename synthesis.
var ownershipRules = []Rule{
	// "Percent of class represented by amount in row (9)" followed by the row
	// number and then the percentage on its own line.
	{Pattern: regexp.MustCompile(`(?im)Percent of class represented by amount in row\s*\([^)]+\)\s*\n\s*\d+\s*\n\s*(\d+\.?\d*)\s*%`)},
	// Single line: "Percent of class represented by amount in row (9) 5.5 %".
	// The row reference is skipped so its digits are not taken as the value.
	{Pattern: regexp.MustCompile(`(?im)Percent of class represented by amount in row\s*(?:\([^)]*\))?[^0-9]*(\d+\.?\d*)\s*%`)},
	// "Percent of class: 5.01 %"
	{Pattern: regexp.MustCompile(`(?im)Percent of class[:\s]*(\d+\.?\d*)\s*%`)},
	// Item 4(b) format.
	{Pattern: regexp.MustCompile(`(?im)Item 4\.[^(]*\(b\)[^:]*:\s*(\d+\.?\d*)\s*%`)},
}

// FindOwnershipPercent locates the ownership percentage and returns it as a
// unitless decimal string with the percent sign stripped.
func FindOwnershipPercent(text string) (string, bool) {
	return firstMatch(ownershipRules, text)
}
