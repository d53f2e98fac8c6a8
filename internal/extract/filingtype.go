package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// defaultFilingTypes is the priority-ordered catalog of known SEC form codes.
// Amendment variants must precede their base forms so that "13G/A" is never
// reported as "13G".
var defaultFilingTypes = []string{
	"13D/A", "13G/A",
	"10-K", "10-Q", "8-K", "20-F",
	"13D", "13G", "13F",
	"S-1", "S-3", "S-4", "S-8",
	"DEF 14A", "DEFA14A", "SC 13D", "SC 13G",
	"6-K", "424B5", "FWP",
}

// Catalog is an immutable, priority-ordered list of filing-type codes.
type Catalog struct {
	codes []string
}

// NewCatalog builds a catalog from codes, rejecting orderings where a base
// form precedes its "/A" amendment.
func NewCatalog(codes []string) (*Catalog, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("catalog cannot be empty")
	}

	position := make(map[string]int, len(codes))
	for i, code := range codes {
		if code == "" {
			return nil, fmt.Errorf("catalog entry %d is empty", i)
		}
		if _, dup := position[code]; dup {
			return nil, fmt.Errorf("duplicate catalog entry: %s", code)
		}
		position[code] = i
	}

	for code, pos := range position {
		base := strings.TrimSuffix(code, "/A")
		if base == code {
			continue
		}
		if basePos, ok := position[base]; ok && basePos < pos {
			return nil, fmt.Errorf("amendment %s must precede base form %s", code, base)
		}
	}

	return &Catalog{codes: append([]string(nil), codes...)}, nil
}

// DefaultCatalog returns the built-in filing-type catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultFilingTypes)
	if err != nil {
		panic(err) // the built-in list is validated by tests
	}
	return c
}

// Codes returns the catalog entries in priority order.
func (c *Catalog) Codes() []string {
	return append([]string(nil), c.codes...)
}

// FilingTypeRecognizer finds the filing-type code of a document.
type FilingTypeRecognizer struct {
	catalog *Catalog
	labeled []*regexp.Regexp
	bare    []*regexp.Regexp
}

// NewFilingTypeRecognizer compiles labeled and bare patterns for every
// catalog entry.
func NewFilingTypeRecognizer(catalog *Catalog) *FilingTypeRecognizer {
	r := &FilingTypeRecognizer{
		catalog: catalog,
		labeled: make([]*regexp.Regexp, 0, len(catalog.codes)),
		bare:    make([]*regexp.Regexp, 0, len(catalog.codes)),
	}

	for _, code := range catalog.codes {
		quoted := regexp.QuoteMeta(code)
		// Labeled mentions like "FORM 10-K", "Form: 10-Q", "SCHEDULE 13G/A".
		r.labeled = append(r.labeled,
			regexp.MustCompile(`(?i)(?:FORM|TYPE|SCHEDULE)[\s:]*`+quoted+`\b`))
		// Bare standalone mentions, case-sensitive to limit false positives.
		r.bare = append(r.bare,
			regexp.MustCompile(`\b`+quoted+`\b`))
	}

	return r
}

// Recognize scans text in two passes. Pass 1 requires a label token before
// the code and runs across the whole catalog in priority order; only when no
// entry matches does pass 2 accept bare word-boundary mentions, again in
// catalog order.
func (r *FilingTypeRecognizer) Recognize(text string) (string, bool) {
	for i, code := range r.catalog.codes {
		if r.labeled[i].MatchString(text) {
			return code, true
		}
	}

	for i, code := range r.catalog.codes {
		if r.bare[i].MatchString(text) {
			return code, true
		}
	}

	return "", false
}
