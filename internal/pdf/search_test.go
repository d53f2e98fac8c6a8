package pdf

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestNewSearch(t *testing.T) {
	search := NewSearch()
	if search == nil {
		t.Fatal("NewSearch returned nil")
	}
}

func TestSearch_ListDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.pdf", []byte("%PDF-1.4 content"))
	writeFile(t, dir, "a.pdf", []byte("%PDF-1.4 content"))
	writeFile(t, dir, "notes.txt", []byte("not a pdf"))
	writeFile(t, dir, "UPPER.PDF", []byte("%PDF-1.4 content"))

	if err := os.Mkdir(filepath.Join(dir, "nested.pdf"), 0o750); err != nil {
		t.Fatalf("failed to create subdirectory: %v", err)
	}
	writeFile(t, filepath.Join(dir, "nested.pdf"), "inner.pdf", []byte("%PDF-1.4 content"))

	search := NewSearch()
	files, err := search.ListDirectory(dir)
	if err != nil {
		t.Fatalf("ListDirectory failed: %v", err)
	}

	// Only "a.pdf" and "b.pdf" qualify: the extension match is
	// case-sensitive and subdirectories are not descended into.
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %+v", len(files), files)
	}
	if files[0].Name != "a.pdf" || files[1].Name != "b.pdf" {
		t.Errorf("unexpected listing order: %q, %q", files[0].Name, files[1].Name)
	}
	for _, f := range files {
		if f.Path != filepath.Join(dir, f.Name) {
			t.Errorf("expected absolute path under %s, got %s", dir, f.Path)
		}
		if f.Size == 0 {
			t.Errorf("expected non-zero size for %s", f.Name)
		}
	}
}

func TestSearch_ListDirectoryKeepsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.pdf", nil)
	writeFile(t, dir, "huge.pdf", make([]byte, 256))

	search := NewSearch()
	files, err := search.ListDirectory(dir)
	if err != nil {
		t.Fatalf("ListDirectory failed: %v", err)
	}

	// Size and content checks belong to the per-file pipeline; the listing
	// must surface every .pdf entry so failures are reported, not hidden.
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %+v", len(files), files)
	}
	if files[0].Name != "empty.pdf" || files[1].Name != "huge.pdf" {
		t.Errorf("unexpected listing: %q, %q", files[0].Name, files[1].Name)
	}
	if files[0].Size != 0 {
		t.Errorf("expected zero size for empty.pdf, got %d", files[0].Size)
	}
}

func TestSearch_ListDirectoryErrors(t *testing.T) {
	tests := []struct {
		name      string
		directory string
	}{
		{name: "empty directory path", directory: ""},
		{name: "nonexistent directory", directory: "/nonexistent/path"},
	}

	search := NewSearch()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := search.ListDirectory(tt.directory); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestSearch_ListDirectoryRejectsFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.pdf", []byte("%PDF"))

	search := NewSearch()
	if _, err := search.ListDirectory(path); err == nil {
		t.Error("expected an error when given a file instead of a directory")
	}
}

func TestSearch_ListDirectoryEmpty(t *testing.T) {
	dir := t.TempDir()

	search := NewSearch()
	files, err := search.ListDirectory(dir)
	if err != nil {
		t.Fatalf("ListDirectory failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %d", len(files))
	}
}
