package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Search discovers PDF files eligible for renaming.
type Search struct{}

// NewSearch creates a search handler.
func NewSearch() *Search {
	return &Search{}
}

// ListDirectory returns the PDF files directly inside directory, in the
// order the directory listing yields them. Only files carrying the literal
// ".pdf" extension are considered; subdirectories are not descended into.
// No structural or size checks happen here: every listed file is visited by
// the pipeline, which reports unreadable ones individually.
func (s *Search) ListDirectory(directory string) ([]FileInfo, error) {
	if directory == "" {
		return nil, fmt.Errorf("directory cannot be empty")
	}

	stat, err := os.Stat(directory)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("directory does not exist: %s", directory)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access directory: %w", err)
	}
	if !stat.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", directory)
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("error reading directory: %w", err)
	}

	var pdfFiles []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), ".pdf") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// Skip entries that vanish mid-listing but keep processing.
			continue
		}

		pdfFiles = append(pdfFiles, FileInfo{
			Path: filepath.Join(directory, entry.Name()),
			Name: entry.Name(),
			Size: info.Size(),
		})
	}

	return pdfFiles, nil
}
