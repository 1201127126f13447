// README: Shared text-matching helpers for the classifier pipeline.
package classify

import (
	"strings"
	"unicode"
)

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// containsTerm reports whether term occurs in text. Terms with spaces match as
// substrings; single words must sit on word boundaries so that "date" never
// matches inside "update".
func containsTerm(text, term string) bool {
	if strings.ContainsRune(term, ' ') {
		return strings.Contains(text, term)
	}
	return containsWord(text, term)
}

func containsWord(text, word string) bool {
	for start := 0; start <= len(text)-len(word); {
		i := strings.Index(text[start:], word)
		if i < 0 {
			return false
		}
		i += start
		if boundaryBefore(text, i) && boundaryAfter(text, i+len(word)) {
			return true
		}
		start = i + 1
	}
	return false
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	return !isWordRune(rune(text[i-1]))
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	return !isWordRune(rune(text[i]))
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// stripPunct removes every rune that is not a letter, digit, or space.
func stripPunct(text string) string {
	var b strings.Builder
	for _, r := range text {
		if isWordRune(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if containsTerm(text, t) {
			return true
		}
	}
	return false
}

// Normalize lowercases and trims a message the way every classifier does.
func Normalize(text string) string { return normalize(text) }

// ContainsTerm applies the pipeline's matching rule (boundary-checked single
// words, substring phrases) to an already-normalized text.
func ContainsTerm(text, term string) bool { return containsTerm(text, term) }

// ContainsAny reports whether any term matches under ContainsTerm.
func ContainsAny(text string, terms []string) bool { return containsAny(text, terms) }

// EqualsAny reports whether the punctuation-stripped message equals one of
// the tokens exactly. Same whole-message rule the frustration token tier uses.
func EqualsAny(text string, tokens []string) bool {
	bare := stripPunct(normalize(text))
	for _, tok := range tokens {
		if bare == tok {
			return true
		}
	}
	return false
}
