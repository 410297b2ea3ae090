package pathwalk

import (
	"os"
	"strings"

	"github.com/temirov/flatten/internal/types"
)

const indentWidth = 4

// Expansion is the result of expanding the input paths.
type Expansion struct {
	// Tree is the indented listing, lines joined by newlines without a trailing one.
	Tree string
	// Files lists every discovered file in traversal order, unfiltered.
	Files []types.FileEntry
}

// Expand walks inputPaths in order. Regular files are kept as given,
// directories are walked recursively and missing paths are skipped.
func Expand(inputPaths []string) (Expansion, error) {
	var treeLines []string
	var files []types.FileEntry

	for _, inputPath := range inputPaths {
		pathInfo, statError := os.Stat(inputPath)
		if statError != nil {
			continue
		}
		if pathInfo.Mode().IsRegular() {
			treeLines = append(treeLines, lastElement(inputPath))
			files = append(files, types.FileEntry{Path: inputPath, Explicit: true})
			continue
		}
		if !pathInfo.IsDir() {
			continue
		}
		walkError := walkDirectory(inputPath, func(visit directoryVisit) error {
			level := directoryLevel(inputPath, visit.Root)
			indent := strings.Repeat(" ", indentWidth*level)
			fileIndent := strings.Repeat(" ", indentWidth*(level+1))
			treeLines = append(treeLines, indent+lastElement(visit.Root)+pathSeparator)
			for _, fileName := range visit.FileNames {
				treeLines = append(treeLines, fileIndent+fileName)
				files = append(files, types.FileEntry{Path: joinPath(visit.Root, fileName)})
			}
			return nil
		})
		if walkError != nil {
			return Expansion{}, walkError
		}
	}

	return Expansion{Tree: strings.Join(treeLines, "\n"), Files: files}, nil
}

// directoryLevel counts the separators remaining in root once every
// occurrence of inputPath has been removed from it.
func directoryLevel(inputPath, root string) int {
	return strings.Count(strings.ReplaceAll(root, inputPath, ""), pathSeparator)
}
