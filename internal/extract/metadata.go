package extract

import "time"

// Metadata holds the recognition results for one document. Each optional
// field carries an explicit presence flag rather than a sentinel value.
type Metadata struct {
	FilingDate    time.Time
	HasFilingDate bool

	FilingType string

	Ticker string

	Filer string

	OwnershipPercent string
}

// Extractor runs all field recognizers over document text.
type Extractor struct {
	filingTypes *FilingTypeRecognizer
}

// NewExtractor creates an extractor over the given filing-type catalog.
func NewExtractor(catalog *Catalog) *Extractor {
	return &Extractor{
		filingTypes: NewFilingTypeRecognizer(catalog),
	}
}

// Extract scans text with every recognizer. Absent fields are left at their
// zero value with the corresponding presence flag unset; recognizers never
// produce partial or ambiguous results.
func (e *Extractor) Extract(text string) Metadata {
	var meta Metadata

	meta.FilingDate, meta.HasFilingDate = FindDate(text)
	meta.FilingType, _ = e.filingTypes.Recognize(text)
	meta.Ticker, _ = FindTicker(text)
	meta.Filer, _ = FindFilerName(text)
	meta.OwnershipPercent, _ = FindOwnershipPercent(text)

	return meta
}
