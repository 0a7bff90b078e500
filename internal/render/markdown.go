package render

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/thywilljoshua/skillscan/internal/skills"
)

func renderMarkdown(w io.Writer, name string, res skills.Result) error {
	title := "Skills"
	if name != "" {
		title = "Skills: " + name
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("---\ntitle: \"%s\"\nfound: %t\n---\n\n", escapeQuotes(title), res.Found))

	groups := Groups(res)
	if !res.Found || len(groups) == 0 {
		b.WriteString("> ")
		b.WriteString(EmptyMessage)
		b.WriteString("\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	// Section index first, then one heading per section.
	for _, g := range groups {
		b.WriteString(fmt.Sprintf("- [%s](#%s)\n", g.Title, slugify(g.Title)))
	}
	b.WriteString("\n")
	for _, g := range groups {
		b.WriteString("## ")
		b.WriteString(g.Title)
		b.WriteString("\n\n")
		tags := make([]string, len(g.Skills))
		for i, s := range g.Skills {
			tags[i] = "`" + strings.ReplaceAll(s, "`", "'") + "`"
		}
		b.WriteString(strings.Join(tags, " "))
		b.WriteString("\n\n")
	}
	_, err := io.WriteString(w, strings.TrimRight(b.String(), "\n")+"\n")
	return err
}

func escapeQuotes(s string) string { return strings.ReplaceAll(s, "\"", "\\\"") }

var nonSlug = regexp.MustCompile(`[^a-z0-9\-]+`)

func slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = nonSlug.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return s
}
