package core

import (
	"slices"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"surrounding and repeated spaces", "  a  b   c ", []string{"a", "b", "c"}},
		{"tabs and newlines", "one\ttwo\n\nthree\r\nfour", []string{"one", "two", "three", "four"}},
		{"punctuation stays attached", "Hello, world! It's fine.", []string{"Hello,", "world!", "It's", "fine."}},
		{"single word", "word", []string{"word"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if len(got) != len(tt.want) || !slices.Equal(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.text, got, tt.want)
			}
			for _, tok := range got {
				if tok == "" {
					t.Errorf("Tokenize(%q) produced an empty token", tt.text)
				}
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("the quick  brown\tfox"); got != 4 {
		t.Errorf("WordCount() = %d, want 4", got)
	}
	if got := WordCount(" \n "); got != 0 {
		t.Errorf("WordCount() = %d, want 0", got)
	}
}
