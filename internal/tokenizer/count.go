package tokenizer

import (
	"io"
	"strings"
)

// CountResult captures the outcome of counting one text.
// Tokens is meaningful only when Err is nil.
type CountResult struct {
	Tokens int
	Err    error
}

// Succeeded reports whether the count is usable.
func (result CountResult) Succeeded() bool {
	return result.Err == nil
}

// SanitizeInput decodes data as UTF-8, dropping invalid byte sequences.
func SanitizeInput(data []byte) string {
	return strings.ToValidUTF8(string(data), "")
}

// CountReader reads everything from reader and counts its tokens with counter.
// Read failures are reported through the result like tokenisation failures.
func CountReader(counter Counter, reader io.Reader) CountResult {
	data, readErr := io.ReadAll(reader)
	if readErr != nil {
		return CountResult{Err: readErr}
	}
	return counter.Count(SanitizeInput(data))
}
