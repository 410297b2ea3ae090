// Package pathwalk expands input paths into the files to concatenate and the
// tree listing printed at the top of the output.
package pathwalk

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
)

const (
	// errorReadDirectoryFormat is used when a directory cannot be read.
	errorReadDirectoryFormat = "reading directory %s: %w"

	pathSeparator = string(os.PathSeparator)
)

// directoryVisit describes one directory reached by walkDirectory together
// with the names of its non-directory entries.
type directoryVisit struct {
	Root      string
	FileNames []string
}

// walkDirectory visits rootPath top-down, calling visit for each directory
// before descending into its subdirectories. Symbolic links to directories
// are reported as directories but never followed.
func walkDirectory(rootPath string, visit func(directoryVisit) error) error {
	directoryEntries, readDirectoryError := os.ReadDir(rootPath)
	if readDirectoryError != nil {
		return fmt.Errorf(errorReadDirectoryFormat, rootPath, readDirectoryError)
	}

	var subdirectories []string
	var fileNames []string
	for _, directoryEntry := range directoryEntries {
		childPath := joinPath(rootPath, directoryEntry.Name())
		isDirectory, isLink := classifyEntry(childPath, directoryEntry)
		if !isDirectory {
			fileNames = append(fileNames, directoryEntry.Name())
			continue
		}
		if !isLink {
			subdirectories = append(subdirectories, childPath)
		}
	}

	if visitError := visit(directoryVisit{Root: rootPath, FileNames: fileNames}); visitError != nil {
		return visitError
	}
	for _, subdirectory := range subdirectories {
		if walkError := walkDirectory(subdirectory, visit); walkError != nil {
			return walkError
		}
	}
	return nil
}

// classifyEntry reports whether the entry resolves to a directory and
// whether it is a symbolic link.
func classifyEntry(childPath string, directoryEntry fs.DirEntry) (bool, bool) {
	if directoryEntry.Type()&fs.ModeSymlink == 0 {
		return directoryEntry.IsDir(), false
	}
	targetInfo, statError := os.Stat(childPath)
	if statError != nil {
		return false, true
	}
	return targetInfo.IsDir(), true
}

// joinPath appends name to base without cleaning base, so "." stays "./name".
func joinPath(base, name string) string {
	if base == "" || strings.HasSuffix(base, pathSeparator) {
		return base + name
	}
	return base + pathSeparator + name
}

// lastElement returns the text after the final separator, which is empty
// for paths ending in a separator.
func lastElement(path string) string {
	return path[strings.LastIndex(path, pathSeparator)+1:]
}
