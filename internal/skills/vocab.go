package skills

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Vocabulary holds the fixed word lists the scanner and segmenter match against.
// Order matters for Headers: the first matching phrase names the section.
type Vocabulary struct {
	Headers    []string `yaml:"headers" json:"headers"`
	Boundaries []string `yaml:"boundaries" json:"boundaries"`
	StopWords  []string `yaml:"stop_words" json:"stop_words"`
	Phrases    []string `yaml:"phrases" json:"phrases"`
	KnownTech  []string `yaml:"known_tech" json:"known_tech"`
	Bullets    string   `yaml:"bullets" json:"bullets"`
}

// DefaultVocabulary returns a fresh copy of the built-in lists.
// Multi-word headers come before the single words they end with, so
// "Technical Skills" opens "technical skills" rather than "skills".
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Headers: []string{
			"technical skills",
			"programming skills",
			"software skills",
			"extracurricular skills",
			"soft skills",
			"key skills",
			"core competencies",
			"technical competencies",
			"tools and technologies",
			"areas of expertise",
			"programming languages",
			"skills",
			"expertise",
			"proficiencies",
			"languages",
			"frameworks",
			"technologies",
			"certifications",
			"competencies",
		},
		Boundaries: []string{
			"experience", "education", "projects", "work experience", "employment history",
			"contact", "summary", "objective", "career objective", "professional summary",
			"awards", "references", "personal information", "achievements", "certifications",
			"volunteer", "activities", "interests", "hobbies", "publications", "research",
		},
		StopWords: []string{
			"and", "or", "with", "using", "including", "such", "as",
			"the", "in", "on", "at", "to", "for", "of", "a", "an",
			"experience", "proficiency", "knowledge", "familiar", "year", "years",
			"level", "basic", "intermediate", "advanced", "expert",
		},
		Phrases: []string{
			"machine learning", "data analysis", "web development", "project management",
			"artificial intelligence", "cloud computing", "data science", "software development",
			"database management", "version control", "agile methodology", "responsive design",
			"user experience", "quality assurance", "business intelligence", "digital marketing",
		},
		KnownTech: []string{
			"html", "css", "javascript", "python", "java", "react", "nodejs", "php", "sql",
			"mongodb", "mysql", "postgresql", "docker", "kubernetes", "aws", "azure", "gcp",
			"git", "github", "gitlab", "jenkins", "terraform", "ansible", "linux", "ubuntu",
			"windows", "macos", "photoshop", "illustrator", "figma", "sketch", "bootstrap",
			"tailwind", "vue", "angular", "django", "flask", "spring", "laravel", "express",
			"rest", "graphql", "api", "json", "xml", "yaml", "bash", "powershell", "c++",
			"go", "rust", "swift", "kotlin", "dart", "flutter", "reactnative", "ionic",
		},
		Bullets: "-•·*▪▫◦‣⁃",
	}
}

// Validate reports lists that would make the scanner useless.
func (v Vocabulary) Validate() error {
	if len(v.Headers) == 0 {
		return errors.New("vocabulary: no section headers")
	}
	if v.Bullets == "" {
		return errors.New("vocabulary: no bullet glyphs")
	}
	lists := map[string][]string{
		"headers":    v.Headers,
		"boundaries": v.Boundaries,
		"stop_words": v.StopWords,
		"phrases":    v.Phrases,
		"known_tech": v.KnownTech,
	}
	for name, list := range lists {
		for i, w := range list {
			if strings.TrimSpace(w) == "" {
				return fmt.Errorf("vocabulary: %s[%d] is blank", name, i)
			}
		}
	}
	return nil
}

// LoadVocabulary reads a YAML (or JSON) file and fills any list it leaves out
// from DefaultVocabulary.
func LoadVocabulary(path string) (Vocabulary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("read vocabulary: %w", err)
	}
	var v Vocabulary
	if err := yaml.Unmarshal(b, &v); err != nil {
		return Vocabulary{}, fmt.Errorf("parse vocabulary %s: %w", path, err)
	}
	v = v.withDefaults()
	if err := v.Validate(); err != nil {
		return Vocabulary{}, err
	}
	return v, nil
}

func (v Vocabulary) withDefaults() Vocabulary {
	d := DefaultVocabulary()
	if v.Headers == nil {
		v.Headers = d.Headers
	}
	if v.Boundaries == nil {
		v.Boundaries = d.Boundaries
	}
	if v.StopWords == nil {
		v.StopWords = d.StopWords
	}
	if v.Phrases == nil {
		v.Phrases = d.Phrases
	}
	if v.KnownTech == nil {
		v.KnownTech = d.KnownTech
	}
	if v.Bullets == "" {
		v.Bullets = d.Bullets
	}
	return v
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}
	return out
}
