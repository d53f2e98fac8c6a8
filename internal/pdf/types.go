// Package pdf provides the text-extraction and file-discovery collaborators
// for the rename pipeline.
package pdf

// FileInfo describes a discovered PDF file.
type FileInfo struct {
	Path string
	Name string
	Size int64
}
