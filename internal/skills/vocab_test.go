package skills_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thywilljoshua/skillscan/internal/skills"
)

func TestDefaultVocabulary_Valid(t *testing.T) {
	t.Parallel()

	v := skills.DefaultVocabulary()
	require.NoError(t, v.Validate())

	// Copies are independent.
	v.Headers[0] = "changed"
	assert.Equal(t, "technical skills", skills.DefaultVocabulary().Headers[0])
}

func TestVocabulary_Validate(t *testing.T) {
	t.Parallel()

	v := skills.DefaultVocabulary()
	v.StopWords = append(v.StopWords, "  ")
	assert.ErrorContains(t, v.Validate(), "stop_words")

	v = skills.DefaultVocabulary()
	v.Bullets = ""
	assert.Error(t, v.Validate())
}

func TestLoadVocabulary_YAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("headers:\n  - toolbox\n  - skills\nbullets: \"-»\"\n"), 0o644))

	v, err := skills.LoadVocabulary(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"toolbox", "skills"}, v.Headers)
	assert.Equal(t, "-»", v.Bullets)
	assert.Equal(t, skills.DefaultVocabulary().Boundaries, v.Boundaries)
	assert.Equal(t, skills.DefaultVocabulary().StopWords, v.StopWords)
}

func TestLoadVocabulary_JSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "vocab.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"phrases": ["site reliability"]}`), 0o644))

	v, err := skills.LoadVocabulary(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"site reliability"}, v.Phrases)
	assert.Equal(t, skills.DefaultVocabulary().Headers, v.Headers)
}

func TestLoadVocabulary_Errors(t *testing.T) {
	t.Parallel()

	_, err := skills.LoadVocabulary(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("headers: [unterminated"), 0o644))
	_, err = skills.LoadVocabulary(bad)
	assert.Error(t, err)

	blank := filepath.Join(t.TempDir(), "blank.yaml")
	require.NoError(t, os.WriteFile(blank, []byte("headers: [\"\"]"), 0o644))
	_, err = skills.LoadVocabulary(blank)
	assert.Error(t, err)
}
