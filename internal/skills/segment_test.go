package skills_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thywilljoshua/skillscan/internal/skills"
)

func newSegmenter(t *testing.T) *skills.Segmenter {
	t.Helper()
	return skills.NewSegmenter(skills.DefaultVocabulary())
}

func ruleByName(t *testing.T, s *skills.Segmenter, name string) skills.Rule {
	t.Helper()
	for _, r := range s.Rules() {
		if r.Name == name {
			return r
		}
	}
	require.FailNow(t, "no such rule", name)
	return skills.Rule{}
}

func TestSegmenter_RuleOrder(t *testing.T) {
	t.Parallel()

	var names []string
	for _, r := range newSegmenter(t).Rules() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		skills.RuleDelimiters,
		skills.RuleSpacedBullet,
		skills.RuleWideGap,
		skills.RuleSpacedSeparator,
		skills.RuleParenthesised,
		skills.RuleWords,
	}, names)
}

func TestSegmenter_Select(t *testing.T) {
	t.Parallel()

	s := newSegmenter(t)
	tests := []struct {
		line string
		want string
	}{
		{"Python, Java", skills.RuleDelimiters},
		{"Python; Java | Go", skills.RuleDelimiters},
		{"Docker • Kubernetes • Terraform", skills.RuleSpacedBullet},
		{"Docker - Kubernetes", skills.RuleSpacedBullet},
		{"Python   Haskell   Erlang", skills.RuleWideGap},
		{"Linux / Windows / macOS", skills.RuleSpacedSeparator},
		{"React (hooks and context)", skills.RuleParenthesised},
		{"HTML CSS JavaScript", skills.RuleWords},
		{"• Python, Java", skills.RuleDelimiters},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Select(tt.line).Name, tt.line)
	}
}

func TestSegmenter_Segment(t *testing.T) {
	t.Parallel()

	s := newSegmenter(t)
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"commas", "Python, Java, SQL", []string{"Python", "Java", "Sql"}},
		{"mixed delimiters", "Python;; Java || Haskell", []string{"Python", "Java", "Haskell"}},
		{"leading bullet", "• Docker, Kubernetes", []string{"Docker", "Kubernetes"}},
		{"spaced bullets", "Docker • Kubernetes • Terraform", []string{"Docker", "Kubernetes", "Terraform"}},
		{"wide gaps", "Python   Haskell    Erlang", []string{"Python", "Haskell", "Erlang"}},
		{"slashes", "Linux / Windows / macOS", []string{"Linux", "Windows", "Macos"}},
		{"parenthesised", "React (hooks and context)", []string{"React (hooks And Context)"}},
		{"word list", "HTML CSS JavaScript", []string{"Html", "Css", "Javascript"}},
		{"known phrase kept whole", "Machine Learning Pipelines", []string{"Machine Learning Pipelines"}},
		{"long word kept whole", "Containerization Kubernetes", []string{"Containerization Kubernetes"}},
		{"short words split", "PostgreSQL PowerShell", []string{"Postgresql", "Powershell"}},
		{"single word", "Terraform", []string{"Terraform"}},
		{"too many words", "one two three four five six seven eight nine", []string{"One Two Three Four Five Six Seven Eight Nine"}},
		{"stop words dropped", "Python, and, Advanced, years", []string{"Python"}},
		{"short tokens dropped", "Go, C#, Rust", []string{"Rust"}},
		{"leading number dropped", "Java, 5 years of Go", []string{"Java"}},
		{"punctuation dropped", "Python, ???, !!!", []string{"Python"}},
		{"trailing punctuation", "Python., Java;", []string{"Python", "Java"}},
		{"wrapped token", "[Docker], (Kubernetes)", []string{"Docker", "Kubernetes"}},
		{"acronyms flattened", "AWS, GCP, iOS", []string{"Aws", "Gcp", "Ios"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, s.Segment(tt.line))
		})
	}
}

func TestSegmenter_NothingLeft(t *testing.T) {
	t.Parallel()

	assert.Empty(t, newSegmenter(t).Segment("and, or, the"))
	assert.Empty(t, newSegmenter(t).Segment("•"))
}

func TestRule_ParenthesisedSplitsOutsideGroups(t *testing.T) {
	t.Parallel()

	r := ruleByName(t, newSegmenter(t), skills.RuleParenthesised)

	assert.Equal(t, []string{"React (v18)", "Python (3.9)"}, r.Split("React (v18), Python (3.9)"))
	assert.Equal(t, []string{"Go (generics, modules)", "Rust"}, r.Split("Go (generics, modules), Rust"))
	assert.Equal(t, []string{"A (b)", "C"}, r.Split("A (b),, C"))
}

func TestRule_ParenthesisedUnbalancedKeepsLine(t *testing.T) {
	t.Parallel()

	r := ruleByName(t, newSegmenter(t), skills.RuleParenthesised)

	assert.Equal(t, []string{"React (v18, Python"}, r.Split("React (v18, Python"))
	assert.Equal(t, []string{"React v18), Python ("}, r.Split("React v18), Python ("))
}

func TestSegmenter_CustomBullets(t *testing.T) {
	t.Parallel()

	v := skills.DefaultVocabulary()
	v.Bullets = "»"
	s := skills.NewSegmenter(v)

	assert.Equal(t, []string{"Docker", "Kubernetes"}, s.Segment("» Docker » Kubernetes"))
}
