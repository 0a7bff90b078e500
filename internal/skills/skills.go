// Package skills finds the skills sections of a résumé's extracted text and
// turns their lines into clean, de-duplicated skill names.
//
// Everything here is a pure function of its input: an Extractor holds only
// its compiled vocabulary and can be shared between goroutines.
package skills

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MinTextLen is the shortest text worth scanning.
	MinTextLen = 50

	maxHeaderLineLen   = 100
	maxBoundaryLineLen = 50

	minSkillLen = 2
	maxSkillLen = 49
)

var lineBreakRe = regexp.MustCompile(`[\r\n]+`)

// Result maps a matched header phrase to its skills.
// Found is true when any header was matched, even if no skills survived.
type Result struct {
	Sections map[string][]string `json:"sections"`
	Found    bool                `json:"found"`
	// Order lists the keys of Sections in the order their headers first appeared.
	Order []string `json:"-"`
}

// Empty reports whether there is nothing to show.
func (r Result) Empty() bool {
	return !r.Found || len(r.Sections) == 0
}

// Count returns the total number of skills across sections.
func (r Result) Count() int {
	n := 0
	for _, s := range r.Sections {
		n += len(s)
	}
	return n
}

// Extractor scans text with a fixed vocabulary.
type Extractor struct {
	vocab      Vocabulary
	headers    []string
	boundaries []string
	segmenter  *Segmenter
}

// NewExtractor validates v and compiles it.
func NewExtractor(v Vocabulary) (*Extractor, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &Extractor{
		vocab:      v,
		headers:    lowerAll(v.Headers),
		boundaries: lowerAll(v.Boundaries),
		segmenter:  NewSegmenter(v),
	}, nil
}

var defaultExtractor = mustExtractor(DefaultVocabulary())

func mustExtractor(v Vocabulary) *Extractor {
	e, err := NewExtractor(v)
	if err != nil {
		panic(err)
	}
	return e
}

// Extract runs the default extractor over raw.
func Extract(raw string) Result {
	return defaultExtractor.Extract(raw)
}

// Vocabulary returns the lists e was built from.
func (e *Extractor) Vocabulary() Vocabulary {
	return e.vocab
}

// Segmenter exposes the line segmenter e uses.
func (e *Extractor) Segmenter() *Segmenter {
	return e.segmenter
}

// Extract walks raw line by line, collecting skills under each recognised
// header until a line that starts another résumé section.
func (e *Extractor) Extract(raw string) Result {
	if utf8.RuneCountInString(raw) < MinTextLen {
		return Result{Sections: map[string][]string{}}
	}

	collected := map[string][]string{}
	var (
		order   []string
		current string
		found   bool
	)
	for _, line := range splitLines(raw) {
		lower := strings.ToLower(line)
		n := utf8.RuneCountInString(line)

		if h, ok := matchPhrase(lower, n, e.headers, maxHeaderLineLen); ok {
			current = h
			found = true
			if _, seen := collected[h]; !seen {
				collected[h] = []string{}
				order = append(order, h)
			}
			continue
		}
		if current == "" {
			continue
		}
		if _, ok := matchPhrase(lower, n, e.boundaries, maxBoundaryLineLen); ok {
			current = ""
			continue
		}
		collected[current] = append(collected[current], e.segmenter.Segment(line)...)
	}

	return aggregate(collected, order, found)
}

// IsHeader reports the header phrase line opens, if any.
func (e *Extractor) IsHeader(line string) (string, bool) {
	line = strings.TrimSpace(line)
	return matchPhrase(strings.ToLower(line), utf8.RuneCountInString(line), e.headers, maxHeaderLineLen)
}

// IsBoundary reports whether line starts a non-skills section.
func (e *Extractor) IsBoundary(line string) bool {
	line = strings.TrimSpace(line)
	_, ok := matchPhrase(strings.ToLower(line), utf8.RuneCountInString(line), e.boundaries, maxBoundaryLineLen)
	return ok
}

func splitLines(raw string) []string {
	var lines []string
	for _, l := range lineBreakRe.Split(raw, -1) {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// matchPhrase returns the first phrase that lower contains and either equals,
// starts with or ends with, provided the line is shorter than limit.
func matchPhrase(lower string, n int, phrases []string, limit int) (string, bool) {
	if n >= limit {
		return "", false
	}
	for _, p := range phrases {
		if !strings.Contains(lower, p) {
			continue
		}
		if lower == p || strings.HasPrefix(lower, p) || strings.HasSuffix(lower, p) {
			return p, true
		}
	}
	return "", false
}

func aggregate(collected map[string][]string, order []string, found bool) Result {
	res := Result{Sections: map[string][]string{}, Found: found}
	for _, key := range order {
		kept := dedupe(collected[key])
		if len(kept) == 0 {
			continue
		}
		res.Sections[key] = kept
		res.Order = append(res.Order, key)
	}
	return res
}

func dedupe(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	var out []string
	for _, t := range tokens {
		n := utf8.RuneCountInString(t)
		if n < minSkillLen || n > maxSkillLen {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
