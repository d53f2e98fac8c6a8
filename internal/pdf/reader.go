package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Reader extracts plain text from the leading pages of a PDF file.
type Reader struct {
	maxFileSize int64
}

// NewReader creates a reader with the specified file-size limit.
func NewReader(maxFileSize int64) *Reader {
	return &Reader{maxFileSize: maxFileSize}
}

// ExtractText returns the newline-joined plain text of up to maxPages leading
// pages. Per-page extraction failures are skipped; an error is returned only
// when the file cannot be opened or yields no text at all. Panics from the
// underlying parser are recovered and reported as errors so a malformed file
// never aborts a batch.
func (r *Reader) ExtractText(path string, maxPages int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("PDF parser failure: %v", rec)
		}
	}()

	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return "", fmt.Errorf("cannot access file: %w", err)
	}

	if err := r.validatePDFFile(path, fileInfo); err != nil {
		return "", err
	}

	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	pages := pdfReader.NumPage()
	if maxPages > 0 && pages > maxPages {
		pages = maxPages
	}

	var builder strings.Builder
	for pageNum := 1; pageNum <= pages; pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			// Continue with other pages even if one fails.
			continue
		}
		if content == "" {
			continue
		}

		builder.WriteString(content)
		builder.WriteString("\n")
	}

	text = builder.String()
	if text == "" {
		return "", fmt.Errorf("no text content could be extracted from PDF")
	}

	return text, nil
}

// validatePDFFile performs basic validation before opening the file.
func (r *Reader) validatePDFFile(filePath string, fileInfo os.FileInfo) error {
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	if !strings.HasSuffix(strings.ToLower(filePath), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", filePath)
	}

	if fileInfo.Size() > r.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), r.maxFileSize)
	}

	return nil
}
