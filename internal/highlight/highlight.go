// Package highlight marks every occurrence of a query inside a line.
package highlight

import (
	"strings"

	"github.com/sha1n/minigrep/internal/search"
)

// Emphasizer wraps matched text in a visual marker
type Emphasizer interface {
	Emphasize(text string) string
}

// EmphasizerFunc adapts a plain function to Emphasizer
type EmphasizerFunc func(text string) string

// Emphasize calls f(text)
func (f EmphasizerFunc) Emphasize(text string) string {
	return f(text)
}

// Matches returns line with every occurrence of query emphasized.
//
// Case-sensitive matches are replaced with the emphasized query. An empty
// query emphasizes the empty string at every rune boundary.
//
// Case-insensitive matches are found in the lowercased line and are shown in
// their lowercase form. After each match the cursor into the original line
// advances by the byte length of the original query, so when lowercasing
// changes a string's length the copied segments drift from the match
// positions. Offsets are clamped to the line so the drift never panics.
func Matches(line, query string, ignoreCase bool, em Emphasizer) string {
	if !ignoreCase {
		return strings.ReplaceAll(line, query, em.Emphasize(query))
	}

	lineLower := search.ToLower(line)
	queryLower := search.ToLower(query)

	var sb strings.Builder
	end := 0
	for _, idx := range matchIndices(lineLower, queryLower) {
		start := min(idx, len(line))
		if start > end {
			sb.WriteString(line[end:start])
		}
		sb.WriteString(em.Emphasize(lineLower[idx : idx+len(queryLower)]))
		end = min(idx+len(query), len(line))
	}
	sb.WriteString(line[end:])
	return sb.String()
}

// matchIndices returns the start offsets of the non-overlapping occurrences
// of sub in s, scanning left to right. An empty sub matches at every rune
// boundary, including both ends.
func matchIndices(s, sub string) []int {
	var indices []int

	if sub == "" {
		for i := range s {
			indices = append(indices, i)
		}
		return append(indices, len(s))
	}

	for pos := 0; pos <= len(s)-len(sub); {
		i := strings.Index(s[pos:], sub)
		if i < 0 {
			break
		}
		indices = append(indices, pos+i)
		pos += i + len(sub)
	}
	return indices
}
