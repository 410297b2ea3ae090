// Package clipboard copies the concatenated output to the system clipboard.
package clipboard

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

const errorReadCopySourceFormat = "read %s for clipboard: %w"

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct{}

// NewService constructs a Clipboard service implementation.
func NewService() *Service {
	return &Service{}
}

// Copy writes text to the system clipboard.
func (service *Service) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// CopyFile places the contents of the file at path on the clipboard.
func CopyFile(copier Copier, path string) error {
	fileBytes, readErr := os.ReadFile(path)
	if readErr != nil {
		return fmt.Errorf(errorReadCopySourceFormat, path, readErr)
	}
	return copier.Copy(string(fileBytes))
}

var _ Copier = (*Service)(nil)
