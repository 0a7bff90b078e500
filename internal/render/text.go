package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thywilljoshua/skillscan/internal/skills"
)

var (
	colorGreen = lipgloss.Color("#16A34A")
	colorDim   = lipgloss.Color("#6B7280")
	colorRed   = lipgloss.Color("#EF4444")

	sourceStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	tagStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGreen)

	emptyStyle = lipgloss.NewStyle().
			Foreground(colorRed)
)

// tagWidth caps how wide a row of tags may grow before wrapping.
const tagWidth = 80

func renderText(w io.Writer, name string, res skills.Result) error {
	var b strings.Builder
	if name != "" {
		b.WriteString(sourceStyle.Render(name))
		b.WriteString("\n")
	}
	groups := Groups(res)
	if !res.Found || len(groups) == 0 {
		b.WriteString(emptyStyle.Render(EmptyMessage))
		b.WriteString("\n")
		_, err := io.WriteString(w, b.String())
		return err
	}
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d)", g.Title, len(g.Skills))))
		b.WriteString("\n")
		for _, row := range tagRows(g.Skills) {
			b.WriteString(row)
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// tagRows renders skills as bordered tags, packed into rows no wider than tagWidth.
func tagRows(list []string) []string {
	var (
		rows []string
		row  []string
		used int
	)
	for _, s := range list {
		tag := tagStyle.Render(s)
		tw := lipgloss.Width(tag)
		if len(row) > 0 && used+tw > tagWidth {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, used = nil, 0
		}
		row = append(row, tag)
		used += tw
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return rows
}
