// Package types defines every cross‑package data structure used by the flatten CLI.
package types

const (
	// DecodeFailureMessage is recorded for files whose bytes are not valid UTF-8.
	DecodeFailureMessage = "Failed to decode the file, as it is not saved with UTF-8 encoding."

	// OutputFileExtension is appended to the output base name.
	OutputFileExtension = ".txt"
)

// FileEntry is a regular file scheduled for reading.
// Explicit entries were named directly by the caller instead of being
// discovered while walking a directory.
type FileEntry struct {
	Path     string
	Explicit bool
}

// ReadResult is the outcome of reading one FileEntry.
// Content is meaningful only when ErrorMessage is empty.
type ReadResult struct {
	Entry        FileEntry
	Content      string
	ErrorMessage string
}

// Succeeded reports whether the file was decoded.
func (result ReadResult) Succeeded() bool {
	return result.ErrorMessage == ""
}

// RunSummary captures the totals printed after a run.
type RunSummary struct {
	TotalFiles  int
	CopiedFiles int
}
