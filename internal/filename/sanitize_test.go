package filename

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected string
	}{
		{
			name:     "spaces become hyphens",
			label:    "JANE DOE CAPITAL",
			expected: "JANE-DOE-CAPITAL",
		},
		{
			name:     "spaced ampersand collapses to one hyphen",
			label:    "GOLDMAN SACHS & CO",
			expected: "GOLDMAN-SACHS-CO",
		},
		{
			name:     "bare ampersand becomes hyphen",
			label:    "AT&T",
			expected: "AT-T",
		},
		{
			name:     "periods are removed",
			label:    "D.E. Shaw",
			expected: "DE-SHAW",
		},
		{
			name:     "commas and other punctuation removed",
			label:    "Smith, Jones (Advisors)",
			expected: "SMITH-JONES-ADVISORS",
		},
		{
			name:     "hyphen runs collapse",
			label:    "A -- B",
			expected: "A-B",
		},
		{
			name:     "leading and trailing hyphens trimmed",
			label:    "- Acme -",
			expected: "ACME",
		},
		{
			name:     "lowercase is uppercased",
			label:    "berkshire hathaway",
			expected: "BERKSHIRE-HATHAWAY",
		},
		{
			name:     "underscores and digits survive",
			label:    "fund_2 partners",
			expected: "FUND_2-PARTNERS",
		},
		{
			name:     "empty input",
			label:    "",
			expected: "",
		},
		{
			name:     "only punctuation",
			label:    "...&&&",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.label))
		})
	}
}

func TestSanitizeOutputAlphabet(t *testing.T) {
	inputs := []string{
		"JANE DOE CAPITAL",
		"GOLDMAN SACHS & CO",
		"Smith, Jones (Advisors)",
		"a & b & c",
		"weird\tcontrol\nchars",
		"très sûr",
		"100% owned",
	}

	alphabet := regexp.MustCompile(`^[A-Z0-9_-]*$`)
	for _, in := range inputs {
		out := Sanitize(in)
		if !alphabet.MatchString(out) {
			t.Errorf("Sanitize(%q) = %q contains characters outside the allowed set", in, out)
		}
		assert.NotContains(t, out, "--", "input %q", in)
	}
}

func TestSanitizeIsIdempotent(t *testing.T) {
	labels := []string{
		"JANE DOE CAPITAL",
		"GOLDMAN SACHS & CO",
		"D.E. Shaw",
		"- Acme -",
		"fund_2 partners",
	}

	for _, label := range labels {
		once := Sanitize(label)
		assert.Equal(t, once, Sanitize(once), "label %q", label)
	}
}
