package command

import (
	"strings"
	"unicode"

	"pugchamp/errors"
)

// Scanner walks an argument stream. Commands pull whitespace tokens or
// comma-separated fields off the front; either way the remainder stays
// available for the next pull.
type Scanner struct {
	rest string
}

func NewScanner(args string) *Scanner {
	return &Scanner{rest: strings.TrimSpace(args)}
}

func (s *Scanner) HasNext() bool {
	return s.rest != ""
}

// NextToken returns the next whitespace-delimited token. Trailing
// commas are stripped so "name," and "name" read the same.
func (s *Scanner) NextToken() (string, error) {
	if s.rest == "" {
		return "", errors.ErrMissingArgument
	}
	var tok string
	if idx := strings.IndexFunc(s.rest, unicode.IsSpace); idx >= 0 {
		tok, s.rest = s.rest[:idx], strings.TrimSpace(s.rest[idx:])
	} else {
		tok, s.rest = s.rest, ""
	}
	s.rest = strings.TrimLeft(s.rest, ", \t")
	return strings.TrimRight(tok, ","), nil
}

// NextField returns everything up to the next comma, trimmed. Empty
// segments are skipped.
func (s *Scanner) NextField() (string, error) {
	for s.rest != "" {
		var field string
		if idx := strings.Index(s.rest, ","); idx >= 0 {
			field, s.rest = s.rest[:idx], strings.TrimSpace(s.rest[idx+1:])
		} else {
			field, s.rest = s.rest, ""
		}
		if field = strings.TrimSpace(field); field != "" {
			return field, nil
		}
	}
	return "", errors.ErrMissingArgument
}

// Rest consumes and returns whatever is left.
func (s *Scanner) Rest() string {
	r := s.rest
	s.rest = ""
	return strings.TrimSpace(r)
}
