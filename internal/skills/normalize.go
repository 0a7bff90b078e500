package skills

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize cleans a candidate token for display: trailing ".,;" runs and a
// fully wrapping [..] or (..) pair are removed, then every space-separated
// word is title-cased. Acronyms are flattened too ("AWS" becomes "Aws").
//
// Cleanup repeats until the token stops changing so Normalize(Normalize(s))
// always equals Normalize(s).
func Normalize(s string) string {
	for {
		prev := s
		s = strings.TrimSpace(s)
		s = strings.TrimRight(s, ".,;")
		s = unwrap(s)
		if s == prev {
			break
		}
	}
	return titleWords(s)
}

func unwrap(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if (first == '[' && last == ']') || (first == '(' && last == ')') {
		return s[1 : len(s)-1]
	}
	return s
}

func titleWords(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
