package pdf

import (
	"os"
	"testing"
)

func TestNewValidator(t *testing.T) {
	maxFileSize := int64(1024 * 1024)
	validator := NewValidator(maxFileSize)

	if validator == nil {
		t.Fatal("NewValidator returned nil")
	}
	if validator.maxFileSize != maxFileSize {
		t.Errorf("Expected maxFileSize to be %d, got %d", maxFileSize, validator.maxFileSize)
	}
	if validator.conf == nil {
		t.Error("configuration should not be nil")
	}
}

func TestValidator_ValidateFileInfo(t *testing.T) {
	dir := t.TempDir()
	smallPDF := writeFile(t, dir, "small.pdf", []byte("%PDF-1.4"))
	emptyPDF := writeFile(t, dir, "empty.pdf", nil)
	textFile := writeFile(t, dir, "notes.txt", []byte("text"))
	upperPDF := writeFile(t, dir, "UPPER.PDF", []byte("%PDF-1.4"))
	largePDF := writeFile(t, dir, "large.pdf", make([]byte, 64))

	validator := NewValidator(16)

	tests := []struct {
		name          string
		path          string
		expectedError bool
	}{
		{name: "valid small pdf", path: smallPDF, expectedError: false},
		{name: "uppercase extension accepted", path: upperPDF, expectedError: false},
		{name: "directory rejected", path: dir, expectedError: true},
		{name: "non-pdf extension rejected", path: textFile, expectedError: true},
		{name: "empty file rejected", path: emptyPDF, expectedError: true},
		{name: "oversized file rejected", path: largePDF, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := os.Stat(tt.path)
			if err != nil {
				t.Fatalf("stat failed: %v", err)
			}
			err = validator.ValidateFileInfo(tt.path, info)
			if tt.expectedError && err == nil {
				t.Error("expected an error")
			}
			if !tt.expectedError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidator_ValidateFileMissing(t *testing.T) {
	validator := NewValidator(1024)

	err := validator.ValidateFile("/nonexistent/file.pdf")
	if err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestValidator_ValidateFileRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "garbage.pdf", []byte("this is not a real pdf"))

	validator := NewValidator(1024)
	if err := validator.ValidateFile(path); err == nil {
		t.Error("expected structural validation to fail")
	}
	if validator.IsValidPDF(path) {
		t.Error("IsValidPDF should report false for garbage content")
	}
}
