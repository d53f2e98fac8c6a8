package filename

import (
	"errors"
	"strings"

	"github.com/a3tai/filing-renamer/internal/extract"
)

// Extension is appended to every synthesized filename.
const Extension = ".pdf"

// Synthesis aborts with one of these when a mandatory field is absent. The
// two cases are distinct so the caller can report which field was missing.
var (
	ErrMissingDate       = errors.New("filing date not recognized")
	ErrMissingFilingType = errors.New("filing type not recognized")
)

// Synthesize composes the recognition results for one document into a
// canonical filename:
//
//	YYYY-MM-DD_TYPE[_TICKER][_FILER][_D-DDPCT].pdf
//
// Date and filing type are mandatory; ticker, filer, and ownership are
// omitted entirely when absent (no placeholder tokens).
func Synthesize(meta extract.Metadata) (string, error) {
	if !meta.HasFilingDate {
		return "", ErrMissingDate
	}
	if meta.FilingType == "" {
		return "", ErrMissingFilingType
	}

	parts := []string{
		meta.FilingDate.Format("2006-01-02"),
		normalizeFilingType(meta.FilingType),
	}

	if meta.Ticker != "" {
		parts = append(parts, meta.Ticker)
	}
	if meta.Filer != "" {
		parts = append(parts, Sanitize(meta.Filer))
	}
	if meta.OwnershipPercent != "" {
		parts = append(parts, formatOwnership(meta.OwnershipPercent))
	}

	return strings.Join(parts, "_") + Extension, nil
}

// normalizeFilingType rewrites internal separators so "13G/A" becomes
// "13G-A" and "DEF 14A" becomes "DEF-14A".
func normalizeFilingType(code string) string {
	s := strings.ReplaceAll(code, "/", "-")
	return strings.ReplaceAll(s, " ", "-")
}

// formatOwnership renders "5.01" as "5-01PCT".
func formatOwnership(pct string) string {
	return strings.ReplaceAll(pct, ".", "-") + "PCT"
}
