package extract

import (
	"regexp"
	"time"
)

// dateLayouts are the calendar-format templates tried in order by ParseDate.
// The first template that parses wins, even when a later one would also match.
var dateLayouts = []string{
	"January 2, 2006", // June 30, 2025
	"January 2 2006",  // June 30 2025
	"1/2/2006",        // 06/30/2025
	"20060102",        // 20250630
	"2-Jan-2006",      // 30-Jun-2025
}

// datePatterns locate a date substring in filing text, in priority order.
// Captures feed ParseDate; a capture that fails to parse falls through to the
// next pattern.
var datePatterns = []*regexp.Regexp{
	// Standalone date like "06/30/2025" near the top of the document.
	regexp.MustCompile(`\b(\d{2}/\d{2}/\d{4})\b`),
	// "EVENT DATE: June 30, 2025"
	regexp.MustCompile(`(?i)EVENT DATE[:\s]*([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
	// "FILED AS OF DATE: 06/30/2025"
	regexp.MustCompile(`(?i)FILED AS OF DATE[:\s]*(\d{1,2}/\d{1,2}/\d{4})`),
	// "CONFORMED PERIOD OF REPORT: 20250630"
	regexp.MustCompile(`(?i)CONFORMED PERIOD OF REPORT[:\s]*(\d{8})`),
	// "For the fiscal year ended December 31, 2024"
	regexp.MustCompile(`(?i)for the (?:fiscal|quarterly) (?:year|period) ended[:\s]*([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
	// "Date: June 30, 2025"
	regexp.MustCompile(`(?i)Date[:\s]*([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
	// Date on the line after "(Date of Event Which Requires Filing of this Statement)".
	regexp.MustCompile(`(?i)\(Date of Event[^)]*\)\s*\n\s*(\d{2}/\d{2}/\d{4})`),
}

var dateRules = buildDateRules()

func buildDateRules() []Rule {
	rules := make([]Rule, 0, len(datePatterns))
	for _, p := range datePatterns {
		rules = append(rules, Rule{
			Pattern: p,
			Accept: func(raw string) (string, bool) {
				d, ok := ParseDate(raw)
				if !ok {
					return "", false
				}
				return d.Format("2006-01-02"), true
			},
		})
	}
	return rules
}

// ParseDate normalizes a raw date substring into a calendar date. Templates
// are tried strictly in order; time-of-day and timezone are not handled.
func ParseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, raw); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// FindDate locates the filing or event date in document text. Returns false
// when no pattern yields a parseable date.
func FindDate(text string) (time.Time, bool) {
	iso, ok := firstMatch(dateRules, text)
	if !ok {
		return time.Time{}, false
	}
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
