// Package output serializes the tree listing and file contents into the
// concatenated text file.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/temirov/flatten/internal/types"
)

const (
	fileHeaderFormat = "### %s ###\n"
	fileFooterFormat = "--- End of file: %s ---\n"
	fileErrorFormat  = "%s\n%s\n"
	treeSeparator    = "\n\n"

	errorCreateOutputFormat = "create output file %s: %w"
	errorWriteOutputFormat  = "write output file %s: %w"
	errorCloseOutputFormat  = "close output file %s: %w"
)

// Destination is an output file truncated on creation. Callers create it
// before reading inputs, so a destination inside a walked directory reads
// back empty.
type Destination struct {
	path string
	file *os.File
}

// CreateDestination creates or truncates destinationPath.
func CreateDestination(destinationPath string) (*Destination, error) {
	fileHandle, createError := os.Create(destinationPath)
	if createError != nil {
		return nil, fmt.Errorf(errorCreateOutputFormat, destinationPath, createError)
	}
	return &Destination{path: destinationPath, file: fileHandle}, nil
}

// Path returns the destination path as given to CreateDestination.
func (destination *Destination) Path() string {
	return destination.path
}

// Write renders the tree followed by every result in order.
func (destination *Destination) Write(tree string, results []types.ReadResult) (types.RunSummary, error) {
	bufferedWriter := bufio.NewWriter(destination.file)
	summary, renderError := Render(bufferedWriter, tree, results)
	if renderError != nil {
		return summary, fmt.Errorf(errorWriteOutputFormat, destination.path, renderError)
	}
	if flushError := bufferedWriter.Flush(); flushError != nil {
		return summary, fmt.Errorf(errorWriteOutputFormat, destination.path, flushError)
	}
	return summary, nil
}

// Close closes the underlying file. Calls after the first are no-ops.
func (destination *Destination) Close() error {
	if destination.file == nil {
		return nil
	}
	fileHandle := destination.file
	destination.file = nil
	if closeError := fileHandle.Close(); closeError != nil {
		return fmt.Errorf(errorCloseOutputFormat, destination.path, closeError)
	}
	return nil
}

// WriteConcatenation truncates destinationPath and writes the tree followed
// by every result in order.
func WriteConcatenation(destinationPath string, tree string, results []types.ReadResult) (summary types.RunSummary, err error) {
	destination, createError := CreateDestination(destinationPath)
	if createError != nil {
		return types.RunSummary{}, createError
	}
	defer func() {
		if closeError := destination.Close(); closeError != nil && err == nil {
			err = closeError
		}
	}()
	return destination.Write(tree, results)
}

// Render writes the concatenated layout to writer and returns the totals.
func Render(writer io.Writer, tree string, results []types.ReadResult) (types.RunSummary, error) {
	var summary types.RunSummary
	if _, writeError := io.WriteString(writer, tree+treeSeparator); writeError != nil {
		return summary, writeError
	}
	for _, result := range results {
		summary.TotalFiles++
		if !result.Succeeded() {
			if _, writeError := fmt.Fprintf(writer, fileErrorFormat, result.Entry.Path, result.ErrorMessage); writeError != nil {
				return summary, writeError
			}
			continue
		}
		if writeError := writeFileBlock(writer, result); writeError != nil {
			return summary, writeError
		}
		summary.CopiedFiles++
	}
	return summary, nil
}

func writeFileBlock(writer io.Writer, result types.ReadResult) error {
	if _, writeError := fmt.Fprintf(writer, fileHeaderFormat, result.Entry.Path); writeError != nil {
		return writeError
	}
	if _, writeError := io.WriteString(writer, result.Content+"\n"); writeError != nil {
		return writeError
	}
	_, writeError := fmt.Fprintf(writer, fileFooterFormat, result.Entry.Path)
	return writeError
}
