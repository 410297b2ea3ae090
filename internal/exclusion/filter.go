// Package exclusion decides which walked files are dropped before reading.
package exclusion

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/temirov/flatten/internal/types"
	"github.com/temirov/flatten/internal/utils"
)

const (
	errorCompilePatternFormat = "compile exclusion pattern %q: %w"
	errorMatchPatternFormat   = "match exclusion pattern %q against %s: %w"
)

// DefaultPatterns are always applied. They are regular expressions searched
// anywhere in the candidate path.
var DefaultPatterns = []string{
	`node_modules/`,
	`\.git/`,
	`build`,
	`test`,
	`\.gitignore`,
	`\.ds_store`,
	`\.jpg$`,
	`\.png$`,
	`\.svg$`,
	`database/`,
	`aider.*`,
	`__pycache__/`,
	`\.bin$`,
	`\.sqlite$`,
	`\.toml$`,
}

// Filter holds the compiled default and user patterns.
type Filter struct {
	expressions []*regexp2.Regexp
}

// New compiles DefaultPatterns followed by userTerms. User terms match
// literally; blank and repeated terms are ignored.
func New(userTerms []string) (*Filter, error) {
	patterns := append([]string{}, DefaultPatterns...)
	patterns = append(patterns, LiteralPatterns(userTerms)...)

	expressions := make([]*regexp2.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		expression, compileError := regexp2.Compile(pattern, regexp2.None)
		if compileError != nil {
			return nil, fmt.Errorf(errorCompilePatternFormat, pattern, compileError)
		}
		expressions = append(expressions, expression)
	}
	return &Filter{expressions: expressions}, nil
}

// LiteralPatterns escapes terms so regular expression metacharacters lose
// their meaning.
func LiteralPatterns(terms []string) []string {
	var trimmedTerms []string
	for _, term := range terms {
		if strings.TrimSpace(term) == "" {
			continue
		}
		trimmedTerms = append(trimmedTerms, term)
	}
	deduplicated := utils.DeduplicatePatterns(trimmedTerms)
	escaped := make([]string, 0, len(deduplicated))
	for _, term := range deduplicated {
		escaped = append(escaped, regexp2.Escape(term))
	}
	return escaped
}

// Excludes reports whether any pattern matches anywhere in path.
func (filter *Filter) Excludes(path string) (bool, error) {
	for _, expression := range filter.expressions {
		matched, matchError := expression.MatchString(path)
		if matchError != nil {
			return false, fmt.Errorf(errorMatchPatternFormat, expression.String(), path, matchError)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// Apply returns the entries that survive filtering, preserving order.
// Entries the caller named explicitly are never excluded.
func (filter *Filter) Apply(entries []types.FileEntry) ([]types.FileEntry, error) {
	kept := make([]types.FileEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Explicit {
			kept = append(kept, entry)
			continue
		}
		excluded, matchError := filter.Excludes(entry.Path)
		if matchError != nil {
			return nil, matchError
		}
		if !excluded {
			kept = append(kept, entry)
		}
	}
	return kept, nil
}
