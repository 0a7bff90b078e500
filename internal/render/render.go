// Package render displays extraction results: one group per skills section
// with one tag per skill, or an explanatory message when nothing was found.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/thywilljoshua/skillscan/internal/skills"
)

// Format selects an output style.
type Format string

const (
	Text     Format = "text"
	Markdown Format = "markdown"
	JSON     Format = "json"
)

// EmptyMessage is shown when no section was found or every section came out empty.
const EmptyMessage = `No skills section found in the resume. Please make sure your resume has a clearly labeled skills section (e.g., "Skills", "Technical Skills", "Core Competencies", etc.)`

// ParseFormat accepts a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, Markdown, JSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, markdown or json)", s)
	}
}

// Group is one displayed section.
type Group struct {
	Title  string
	Skills []string
}

// Groups orders the non-empty sections of res for display.
func Groups(res skills.Result) []Group {
	keys := res.Order
	if len(keys) != len(res.Sections) {
		// Results built by hand may lack Order.
		keys = make([]string, 0, len(res.Sections))
		for k := range res.Sections {
			keys = append(keys, k)
		}
		sort.Strings(keys)
	}
	caser := cases.Title(language.English)
	var out []Group
	for _, k := range keys {
		list := res.Sections[k]
		if len(list) == 0 {
			continue
		}
		out = append(out, Group{Title: caser.String(k), Skills: list})
	}
	return out
}

// Render writes res to w in format f. name labels the source in formats that
// carry a title.
func Render(w io.Writer, f Format, name string, res skills.Result) error {
	switch f {
	case JSON:
		return renderJSON(w, res)
	case Markdown:
		return renderMarkdown(w, name, res)
	case Text, "":
		return renderText(w, name, res)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

type jsonResult struct {
	Sections map[string][]string `json:"sections"`
	Found    bool                `json:"found"`
}

func renderJSON(w io.Writer, res skills.Result) error {
	out := jsonResult{Sections: res.Sections, Found: res.Found}
	if out.Sections == nil {
		out.Sections = map[string][]string{}
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
