// Package moderation censors banned words in PUG descriptions before
// they are stored or announced. Matching runs over a normalized view of
// the text (lowercased, leet-mapped, punctuation stripped) so trivial
// obfuscation does not slip through.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	matcher     *goahocorasick.Machine
	replacement rune
}

// NewModerator builds the automaton from the banned word list.
func NewModerator(bannedWords []string, replacement rune) (Moderator, error) {
	patterns := make([][]rune, len(bannedWords))
	for i, word := range bannedWords {
		patterns[i], _ = normalize(word)
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Moderator{}, err
	}
	return Moderator{matcher: m, replacement: replacement}, nil
}

// CensorDescription replaces every banned match with the replacement
// rune, preserving the description's spacing and length.
func (m *Moderator) CensorDescription(description string) string {
	normalized, origIdx := normalize(description)
	if len(normalized) == 0 {
		return description
	}

	spans := m.matcher.MultiPatternSearch(normalized, false)
	if len(spans) == 0 {
		return description
	}

	out := []rune(description)
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(origIdx) {
			continue
		}
		for i := origIdx[start]; i <= origIdx[end-1]; i++ {
			out[i] = m.replacement
		}
	}
	return string(out)
}

// normalize lowercases, undoes common leet substitutions and drops
// punctuation/whitespace, keeping an index back into the original.
func normalize(input string) ([]rune, []int) {
	runes := []rune(input)
	normalized := make([]rune, 0, len(runes))
	origIdx := make([]int, 0, len(runes))

	for i, r := range runes {
		r = unleet(r)
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		normalized = append(normalized, unicode.ToLower(r))
		origIdx = append(origIdx, i)
	}
	return normalized, origIdx
}

func unleet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}
