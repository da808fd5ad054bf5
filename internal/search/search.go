// Package search selects the lines of a text that contain a literal query.
package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lines splits content into lines. Lines end at "\n" or "\r\n", the
// terminator is not part of the line, and a final terminator does not
// produce a trailing empty line.
func Lines(content string) []string {
	if content == "" {
		return nil
	}

	terminated := strings.HasSuffix(content, "\n")
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, line := range lines {
		// a bare "\r" at the very end is content, not a terminator
		if i < len(lines)-1 || terminated {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
	}
	return lines
}

// Search returns the lines of content containing query, in order.
// An empty query matches every line.
func Search(query, content string) []string {
	var results []string
	for _, line := range Lines(content) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

// SearchCaseInsensitive is Search over the lowercase forms of query and each line.
func SearchCaseInsensitive(query, content string) []string {
	query = ToLower(query)

	var results []string
	for _, line := range Lines(content) {
		if strings.Contains(ToLower(line), query) {
			results = append(results, line)
		}
	}
	return results
}

// ToLower applies full Unicode lowercase mapping, which may change the byte
// length of s (for example "İ" becomes "i̇").
func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}
