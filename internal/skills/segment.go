package skills

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Rule is one line-splitting strategy. The segmenter applies the first rule
// whose Match accepts the line.
type Rule struct {
	Name  string
	Match func(line string) bool
	Split func(line string) []string
}

// Rule names, in priority order.
const (
	RuleDelimiters      = "delimiters"
	RuleSpacedBullet    = "spaced-bullet"
	RuleWideGap         = "wide-gap"
	RuleSpacedSeparator = "spaced-separator"
	RuleParenthesised   = "parenthesised"
	RuleWords           = "words"
)

var (
	delimiterRe      = regexp.MustCompile(`[,;|]+`)
	wideGapRe        = regexp.MustCompile(`\s{3,}`)
	spacedSepMatchRe = regexp.MustCompile(`\s+[-/]\s+|\s+\|\s+`)
	spacedSepSplitRe = regexp.MustCompile(`\s+[-/|]\s+`)
	leadingDigitRe   = regexp.MustCompile(`^\d+[\s\-.]`)
	punctOnlyRe      = regexp.MustCompile(`^\W+$`)
	nonAlnumRe       = regexp.MustCompile(`[^a-z0-9]`)
)

const (
	minWords     = 2
	maxWords     = 8
	maxShortWord = 12
	maxTokenLen  = 50
)

// Segmenter turns a line inside a skills section into normalized tokens.
type Segmenter struct {
	rules        []Rule
	leadBullet   *regexp.Regexp
	spacedBullet *regexp.Regexp
	bulletSplit  *regexp.Regexp
	stopWords    map[string]struct{}
	phrases      []string
	knownTech    map[string]struct{}
}

// NewSegmenter builds the rule table for v.
func NewSegmenter(v Vocabulary) *Segmenter {
	class := bulletClass(v.Bullets)
	s := &Segmenter{
		leadBullet:   regexp.MustCompile(`^` + class + `\s*`),
		spacedBullet: regexp.MustCompile(`\s` + class + `\s`),
		bulletSplit:  regexp.MustCompile(`\s+` + class + `\s+`),
		stopWords:    toSet(lowerAll(v.StopWords)),
		phrases:      lowerAll(v.Phrases),
		knownTech:    make(map[string]struct{}, len(v.KnownTech)),
	}
	for _, t := range v.KnownTech {
		s.knownTech[techKey(t)] = struct{}{}
	}
	s.rules = []Rule{
		{
			Name:  RuleDelimiters,
			Match: func(l string) bool { return strings.ContainsAny(l, ",;|") },
			Split: func(l string) []string { return delimiterRe.Split(l, -1) },
		},
		{
			Name:  RuleSpacedBullet,
			Match: s.spacedBullet.MatchString,
			Split: func(l string) []string { return s.bulletSplit.Split(l, -1) },
		},
		{
			Name:  RuleWideGap,
			Match: func(l string) bool { return strings.Contains(l, "   ") },
			Split: func(l string) []string { return wideGapRe.Split(l, -1) },
		},
		{
			Name:  RuleSpacedSeparator,
			Match: spacedSepMatchRe.MatchString,
			Split: func(l string) []string { return spacedSepSplitRe.Split(l, -1) },
		},
		{
			Name:  RuleParenthesised,
			Match: func(l string) bool { return strings.Contains(l, "(") && strings.Contains(l, ")") },
			Split: splitOutsideParens,
		},
		{
			Name:  RuleWords,
			Match: func(string) bool { return true },
			Split: s.splitWords,
		},
	}
	return s
}

// Rules returns the strategies in priority order.
func (s *Segmenter) Rules() []Rule {
	return append([]Rule(nil), s.rules...)
}

// Select returns the rule that applies to line once its leading bullet is removed.
func (s *Segmenter) Select(line string) Rule {
	line = s.stripBullet(line)
	for _, r := range s.rules {
		if r.Match(line) {
			return r
		}
	}
	return s.rules[len(s.rules)-1]
}

// Segment splits line with the first matching rule, drops noise and
// normalizes what is left.
func (s *Segmenter) Segment(line string) []string {
	line = s.stripBullet(line)
	var pieces []string
	for _, r := range s.rules {
		if r.Match(line) {
			pieces = r.Split(line)
			break
		}
	}
	var out []string
	for _, p := range pieces {
		p = s.stripBullet(strings.TrimSpace(p))
		if s.isNoise(p) {
			continue
		}
		out = append(out, Normalize(p))
	}
	return out
}

func (s *Segmenter) stripBullet(line string) string {
	return strings.TrimSpace(s.leadBullet.ReplaceAllString(line, ""))
}

// splitWords treats a short line of short or well-known words as a word list
// and anything else as one token.
func (s *Segmenter) splitWords(line string) []string {
	words := strings.Fields(line)
	if len(words) < minWords || len(words) > maxWords || s.hasPhrase(line) {
		return []string{line}
	}
	for _, w := range words {
		if utf8.RuneCountInString(w) <= 1 {
			return []string{line}
		}
		if !s.isKnownTech(w) && utf8.RuneCountInString(w) > maxShortWord {
			return []string{line}
		}
	}
	return words
}

func (s *Segmenter) hasPhrase(line string) bool {
	lower := strings.ToLower(line)
	for _, p := range s.phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func (s *Segmenter) isKnownTech(word string) bool {
	_, ok := s.knownTech[techKey(word)]
	return ok
}

func (s *Segmenter) isNoise(p string) bool {
	n := utf8.RuneCountInString(p)
	if n <= 2 || n >= maxTokenLen {
		return true
	}
	if _, ok := s.stopWords[strings.ToLower(p)]; ok {
		return true
	}
	return leadingDigitRe.MatchString(p) || punctOnlyRe.MatchString(p)
}

// splitOutsideParens splits on commas that are not inside a parenthesis group.
// Lines with unbalanced parentheses are kept whole.
func splitOutsideParens(line string) []string {
	var (
		out   []string
		cur   strings.Builder
		depth int
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return []string{line}
			}
		case ',':
			if depth == 0 {
				out = append(out, cur.String())
				cur.Reset()
				for i+1 < len(line) && (line[i+1] == ' ' || line[i+1] == '\t') {
					i++
				}
				continue
			}
		}
		cur.WriteByte(c)
	}
	if depth != 0 {
		return []string{line}
	}
	out = append(out, cur.String())
	kept := out[:0]
	for _, p := range out {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return kept
}

func bulletClass(bullets string) string {
	var b strings.Builder
	b.WriteString("[")
	for _, r := range bullets {
		switch r {
		case '-', ']', '[', '^', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	b.WriteString("]")
	return b.String()
}

func techKey(w string) string {
	return nonAlnumRe.ReplaceAllString(strings.ToLower(w), "")
}

func toSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
