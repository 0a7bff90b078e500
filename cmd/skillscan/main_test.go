package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cv = "Jane Doe\njane.doe@example.com | Springfield | +1 555 0100\n" +
	"Skills\nPython, Java, SQL\nEducation\nState University\n"

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtract_JSONFromStdin(t *testing.T) {
	out, _, err := run(t, cv, "extract", "-f", "json", "-")
	require.NoError(t, err)

	var got struct {
		Sections map[string][]string `json:"sections"`
		Found    bool                `json:"found"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Found)
	assert.Equal(t, map[string][]string{"skills": {"Python", "Java", "Sql"}}, got.Sections)
}

func TestExtract_TextFile(t *testing.T) {
	path := writeFile(t, "cv.txt", cv)

	out, _, err := run(t, "", "extract", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Skills (3)")
	assert.Contains(t, out, "Python")
	assert.Contains(t, out, "Sql")
}

func TestExtract_EmptyState(t *testing.T) {
	path := writeFile(t, "cv.txt", "Jane Doe\nSenior Engineer at Acme building things for years\n")

	out, _, err := run(t, "", "extract", path)
	require.NoError(t, err)
	assert.Contains(t, out, "No skills section found")
}

func TestExtract_MultipleJSON(t *testing.T) {
	a := writeFile(t, "a.txt", cv)
	b := writeFile(t, "b.txt", "short")

	out, _, err := run(t, "", "extract", "--format", "json", a, b)
	require.NoError(t, err)

	var got []struct {
		Source string `json:"source"`
		Found  bool   `json:"found"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, a, got[0].Source)
	assert.True(t, got[0].Found)
	assert.False(t, got[1].Found)
}

func TestExtract_Markdown(t *testing.T) {
	path := writeFile(t, "cv.txt", cv)

	out, _, err := run(t, "", "extract", "--format", "markdown", path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "---\ntitle: "))
	assert.Contains(t, out, "## Skills")
	assert.Contains(t, out, "`Python` `Java` `Sql`")
}

func TestExtract_CustomVocabulary(t *testing.T) {
	vocab := writeFile(t, "vocab.yaml", "headers:\n  - toolbox\n")
	path := writeFile(t, "cv.txt", "Jane Doe\njane.doe@example.com | Springfield\nToolbox\nHammer, Wrench\n")

	out, _, err := run(t, "", "extract", "-f", "json", "--vocabulary", vocab, path)
	require.NoError(t, err)
	assert.Contains(t, out, `"toolbox"`)
	assert.Contains(t, out, `"Hammer"`)
}

func TestExtract_Errors(t *testing.T) {
	_, _, err := run(t, "", "extract")
	assert.Error(t, err)

	_, _, err = run(t, "", "extract", "cv.docx")
	assert.ErrorContains(t, err, "unsupported source type")

	_, _, err = run(t, cv, "extract", "--format", "html", "-")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestExtract_StdinTwice(t *testing.T) {
	_, _, err := run(t, cv, "extract", "-", "-")
	assert.ErrorContains(t, err, "standard input given more than once")
}

func TestBindFlags_UnknownFlag(t *testing.T) {
	v := viper.New()
	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().String("known", "", "")

	require.NoError(t, bindFlags(v, cmd, map[string]string{"known": "known"}))
	assert.ErrorContains(t, bindFlags(v, cmd, map[string]string{"missing": "no-such-flag"}), "bind --no-such-flag")
}

func TestExtract_DebugLogging(t *testing.T) {
	_, stderr, err := run(t, cv, "extract", "--log-level", "debug", "-")
	require.NoError(t, err)

	assert.Contains(t, stderr, "skills extraction")
	assert.Contains(t, stderr, "scanned resume")
}

func TestVocab(t *testing.T) {
	out, _, err := run(t, "", "vocab")
	require.NoError(t, err)

	assert.Contains(t, out, "headers:")
	assert.Contains(t, out, "- technical skills")
	assert.Contains(t, out, "known_tech:")
}
