package core

// Session is the token sequence of one reading session and the position in it.
type Session struct {
	Tokens []string `json:"tokens"`
	Index  int      `json:"index"`
}

// Current returns the word at the current position, or "" if there is none.
func (s *Session) Current() string {
	if s == nil || len(s.Tokens) == 0 || s.Index < 0 || s.Index >= len(s.Tokens) {
		return ""
	}
	return s.Tokens[s.Index]
}

// Upcoming returns up to n words after the current position.
func (s *Session) Upcoming(n int) []string {
	if s == nil || n <= 0 || len(s.Tokens) == 0 || s.Index < 0 || s.Index >= len(s.Tokens)-1 {
		return nil
	}
	end := s.Index + 1 + n
	if end > len(s.Tokens) {
		end = len(s.Tokens)
	}
	return s.Tokens[s.Index+1 : end]
}

// Len returns the total number of words in the session.
func (s *Session) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Tokens)
}

// IsEmpty returns true if the session has no words.
func (s *Session) IsEmpty() bool {
	return s.Len() == 0
}

// Position returns the 1-based current position and the total word count.
// Both are zero for an empty session.
func (s *Session) Position() (current, total int) {
	if s.IsEmpty() {
		return 0, 0
	}
	return s.Index + 1, len(s.Tokens)
}

// AtEnd reports whether the current word is the last one.
func (s *Session) AtEnd() bool {
	return !s.IsEmpty() && s.Index >= len(s.Tokens)-1
}
