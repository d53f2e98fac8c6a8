package pdf

import (
	"strings"
	"testing"
)

func TestNewReader(t *testing.T) {
	maxFileSize := int64(1024 * 1024)
	reader := NewReader(maxFileSize)

	if reader == nil {
		t.Fatal("NewReader returned nil")
	}
	if reader.maxFileSize != maxFileSize {
		t.Errorf("Expected maxFileSize to be %d, got %d", maxFileSize, reader.maxFileSize)
	}
}

func TestReader_ExtractTextErrors(t *testing.T) {
	dir := t.TempDir()
	textFile := writeFile(t, dir, "notes.txt", []byte("plain text"))
	largePDF := writeFile(t, dir, "large.pdf", make([]byte, 64))
	garbagePDF := writeFile(t, dir, "garbage.pdf", []byte("not a pdf at all"))

	reader := NewReader(16)

	tests := []struct {
		name    string
		path    string
		errPart string
	}{
		{name: "empty path", path: "", errPart: "path cannot be empty"},
		{name: "missing file", path: "/nonexistent/file.pdf", errPart: "does not exist"},
		{name: "directory", path: dir, errPart: "directory"},
		{name: "wrong extension", path: textFile, errPart: "not a PDF"},
		{name: "oversized file", path: largePDF, errPart: "too large"},
		{name: "unparseable content", path: garbagePDF, errPart: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := reader.ExtractText(tt.path, 5)
			if err == nil {
				t.Fatal("expected an error")
			}
			if text != "" {
				t.Errorf("expected empty text, got %q", text)
			}
			if tt.errPart != "" && !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("expected error containing %q, got %q", tt.errPart, err.Error())
			}
		})
	}
}
