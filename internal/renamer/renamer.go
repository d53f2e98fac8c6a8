// Package renamer runs the per-file pipeline: extract text, recognize
// metadata, synthesize the canonical name, check for collisions, and rename.
package renamer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/a3tai/filing-renamer/internal/extract"
	"github.com/a3tai/filing-renamer/internal/filename"
	"github.com/a3tai/filing-renamer/internal/pdf"
)

// Outcome is the terminal state of one processed file.
type Outcome int

const (
	OutcomeExtractionFailed Outcome = iota
	OutcomeSynthesisFailed
	OutcomeCollisionSkipped
	OutcomeRenameFailed
	OutcomeRenamed
	OutcomeSimulated
)

// TextExtractor produces the concatenated plain text of a document's leading
// pages. Failures are returned as errors, never raised past this boundary.
type TextExtractor interface {
	ExtractText(path string, maxPages int) (string, error)
}

// FileValidator rejects files that are not structurally readable PDFs.
type FileValidator interface {
	ValidateFile(path string) error
}

// Lister enumerates the PDF files of the source directory.
type Lister interface {
	ListDirectory(directory string) ([]pdf.FileInfo, error)
}

// Options controls one batch run.
type Options struct {
	Directory string
	DryRun    bool
	MaxPages  int
}

// Summary accumulates batch counters. A simulated rename counts as renamed so
// dry-run totals match what a real run would report.
type Summary struct {
	Renamed int
	Skipped int
}

// Renamer processes the files of one directory sequentially. Files must be
// handled one at a time: each collision check reads the destination namespace
// as mutated by earlier renames in the same batch.
type Renamer struct {
	extractor TextExtractor
	validator FileValidator
	lister    Lister
	fields    *extract.Extractor
	out       io.Writer
}

// New creates a renamer over the given collaborators, reporting per-file
// progress to out.
func New(extractor TextExtractor, validator FileValidator, lister Lister, catalog *extract.Catalog, out io.Writer) *Renamer {
	return &Renamer{
		extractor: extractor,
		validator: validator,
		lister:    lister,
		fields:    extract.NewExtractor(catalog),
		out:       out,
	}
}

// Preview runs the extraction and synthesis pipeline for a single file and
// returns the metadata along with the synthesized destination name. The
// filesystem is not touched.
func (r *Renamer) Preview(path string, maxPages int) (extract.Metadata, string, error) {
	if err := r.validator.ValidateFile(path); err != nil {
		return extract.Metadata{}, "", err
	}

	text, err := r.extractor.ExtractText(path, maxPages)
	if err != nil {
		return extract.Metadata{}, "", fmt.Errorf("text extraction failed: %w", err)
	}

	meta := r.fields.Extract(text)
	newName, err := filename.Synthesize(meta)
	if err != nil {
		return meta, "", err
	}

	return meta, newName, nil
}

// Run processes every eligible file in opts.Directory exactly once, in
// listing order, and returns the batch summary.
func (r *Renamer) Run(opts Options) (Summary, error) {
	var summary Summary

	files, err := r.lister.ListDirectory(opts.Directory)
	if err != nil {
		return summary, err
	}

	if len(files) == 0 {
		fmt.Fprintf(r.out, "No PDF files found in %s\n", opts.Directory)
		return summary, nil
	}

	fmt.Fprintf(r.out, "Found %d PDF file(s)\n", len(files))
	if opts.DryRun {
		fmt.Fprintf(r.out, "DRY RUN - Processing...\n\n")
	} else {
		fmt.Fprintf(r.out, "Processing...\n\n")
	}

	// Destinations claimed by simulated renames. A real rename mutates the
	// directory, so later collision checks see it via os.Stat; a simulated
	// one must be tracked here so dry-run counts match a real run.
	claimed := make(map[string]bool)

	for _, file := range files {
		outcome := r.processFile(file, opts, claimed)
		switch outcome {
		case OutcomeRenamed, OutcomeSimulated:
			summary.Renamed++
		default:
			summary.Skipped++
		}
		fmt.Fprintln(r.out)
	}

	r.reportSummary(summary, opts.DryRun)
	return summary, nil
}

// processFile drives one file through the state machine:
//
//	PENDING → TEXT_EXTRACTED | EXTRACTION_FAILED
//	TEXT_EXTRACTED → SYNTHESIZED | SYNTHESIS_FAILED
//	SYNTHESIZED → COLLISION_SKIPPED | RENAMED | SIMULATED
func (r *Renamer) processFile(file pdf.FileInfo, opts Options, claimed map[string]bool) Outcome {
	fmt.Fprintf(r.out, "Processing: %s\n", file.Name)

	if err := r.validator.ValidateFile(file.Path); err != nil {
		fmt.Fprintf(r.out, "⚠️  Could not extract text from %s\n", file.Name)
		return OutcomeExtractionFailed
	}

	text, err := r.extractor.ExtractText(file.Path, opts.MaxPages)
	if err != nil || text == "" {
		fmt.Fprintf(r.out, "⚠️  Could not extract text from %s\n", file.Name)
		return OutcomeExtractionFailed
	}

	meta := r.fields.Extract(text)
	newName, err := filename.Synthesize(meta)
	if err != nil {
		switch {
		case errors.Is(err, filename.ErrMissingDate):
			fmt.Fprintf(r.out, "⚠️  Could not find date in %s\n", file.Name)
		case errors.Is(err, filename.ErrMissingFilingType):
			fmt.Fprintf(r.out, "⚠️  Could not find filing type in %s\n", file.Name)
		default:
			fmt.Fprintf(r.out, "⚠️  Could not build filename for %s: %v\n", file.Name, err)
		}
		return OutcomeSynthesisFailed
	}

	newPath := filepath.Join(filepath.Dir(file.Path), newName)

	// Destination occupied by a different file, or claimed by an earlier
	// simulated rename: never overwrite, never append a disambiguator.
	if newPath != file.Path {
		if claimed[newPath] {
			fmt.Fprintf(r.out, "⚠️  File already exists: %s\n", newName)
			return OutcomeCollisionSkipped
		}
		if _, err := os.Stat(newPath); err == nil {
			fmt.Fprintf(r.out, "⚠️  File already exists: %s\n", newName)
			return OutcomeCollisionSkipped
		}
	}

	if opts.DryRun {
		claimed[newPath] = true
		fmt.Fprintf(r.out, "✓  Would rename to: %s\n", newName)
		return OutcomeSimulated
	}

	if err := os.Rename(file.Path, newPath); err != nil {
		fmt.Fprintf(r.out, "⚠️  Rename failed for %s: %v\n", file.Name, err)
		return OutcomeRenameFailed
	}

	fmt.Fprintf(r.out, "✓  Renamed to: %s\n", newName)
	return OutcomeRenamed
}

func (r *Renamer) reportSummary(summary Summary, dryRun bool) {
	prefix := ""
	if dryRun {
		prefix = "DRY RUN "
	}
	fmt.Fprintf(r.out, "\n%sSummary:\n", prefix)
	fmt.Fprintf(r.out, "  Renamed: %d\n", summary.Renamed)
	fmt.Fprintf(r.out, "  Skipped: %d\n", summary.Skipped)
}
