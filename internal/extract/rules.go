// Package extract recognizes filing metadata fields in raw document text.
// Each recognizer scans with an ordered list of pattern rules; the first
// matching rule wins.
package extract

import "regexp"

// Rule pairs a compiled pattern with an optional acceptance function applied
// to the first capture group. When Accept is nil the capture is taken as-is.
type Rule struct {
	Pattern *regexp.Regexp
	Accept  func(value string) (string, bool)
}

// firstMatch evaluates rules in order and returns the first accepted capture.
// A rule whose pattern matches but whose Accept rejects the capture does not
// stop the scan; later rules are still tried.
func firstMatch(rules []Rule, text string) (string, bool) {
	for _, rule := range rules {
		m := rule.Pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		value := m[0]
		if len(m) > 1 {
			value = m[1]
		}

		if rule.Accept == nil {
			return value, true
		}
		if accepted, ok := rule.Accept(value); ok {
			return accepted, true
		}
	}

	return "", false
}
