// Package reader loads file contents concurrently while keeping results in
// submission order.
package reader

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/temirov/flatten/internal/progress"
	"github.com/temirov/flatten/internal/types"
)

const errorReadFileFormat = "reading file %s: %w"

// Options configures ReadFiles.
type Options struct {
	// Workers bounds concurrent reads; non-positive values use runtime.NumCPU.
	Workers  int
	Progress progress.Reporter
	Logger   *zap.Logger
}

// ReadFiles reads every entry and returns one result per entry at the
// entry's index. Decode failures are recorded in the result; any other
// read error aborts the remaining reads and is returned.
func ReadFiles(ctx context.Context, entries []types.FileEntry, options Options) ([]types.ReadResult, error) {
	workers := options.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	reporter := options.Progress
	if reporter == nil {
		reporter = progress.Discard
	}
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Debug("Reading files", zap.Int("files", len(entries)), zap.Int("workers", workers))
	reporter.Start(len(entries))
	defer reporter.Finish()

	results := make([]types.ReadResult, len(entries))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for index, entry := range entries {
		group.Go(func() error {
			if contextErr := groupCtx.Err(); contextErr != nil {
				return contextErr
			}
			result, readErr := ReadFile(entry)
			if readErr != nil {
				return readErr
			}
			if !result.Succeeded() {
				logger.Debug("File is not valid UTF-8", zap.String("path", entry.Path))
			}
			results[index] = result
			reporter.Increment()
			return nil
		})
	}
	if waitErr := group.Wait(); waitErr != nil {
		return nil, waitErr
	}
	return results, nil
}

// ReadFile reads one entry as UTF-8 text with newlines normalised to "\n".
func ReadFile(entry types.FileEntry) (types.ReadResult, error) {
	fileBytes, readErr := os.ReadFile(entry.Path)
	if readErr != nil {
		return types.ReadResult{}, fmt.Errorf(errorReadFileFormat, entry.Path, readErr)
	}
	if !utf8.Valid(fileBytes) {
		return types.ReadResult{Entry: entry, ErrorMessage: types.DecodeFailureMessage}, nil
	}
	return types.ReadResult{Entry: entry, Content: normalizeNewlines(string(fileBytes))}, nil
}

var newlineNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// normalizeNewlines converts "\r\n" and lone "\r" to "\n", matching how a
// text-mode read presents line endings.
func normalizeNewlines(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	return newlineNormalizer.Replace(text)
}
