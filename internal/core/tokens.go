package core

import "strings"

// Tokenize splits text into words on runs of whitespace, preserving order.
// Empty or whitespace-only input yields an empty slice.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// WordCount returns the number of words Tokenize would produce.
func WordCount(text string) int {
	return len(Tokenize(text))
}
