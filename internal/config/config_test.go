package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsComplete(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidateReportsMissingFields(t *testing.T) {
	c := Default()
	c.DBName = ""
	c.WebPort = "  "

	err := c.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncomplete))
	assert.Contains(t, err.Error(), KeyDBName)
	assert.Contains(t, err.Error(), KeyWebPort)
}

func TestValidateRejectsCollidingServiceKeys(t *testing.T) {
	c := Default()
	c.WebContainer = "App"
	c.DBContainer = "app"

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "same service key")
}

func TestServiceKeys(t *testing.T) {
	c := Default()
	c.WebContainer = "My App!"
	assert.Equal(t, "my_app_", c.WebService())
	assert.Equal(t, "mariadb_app", c.DBService())
	// The raw value is untouched.
	assert.Equal(t, "My App!", c.WebContainer)
}

func TestFromAnswersDefaults(t *testing.T) {
	c, err := FromAnswers(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestFromAnswersOverrides(t *testing.T) {
	c, err := FromAnswers(map[string]string{
		KeyWebContainer:      "  web  ",
		KeyDBPassword:        "s3cret",
		KeyInstallSymfonyCLI: "y",
		KeyInstallNode:       "",
	})
	require.NoError(t, err)
	assert.Equal(t, "web", c.WebContainer)
	assert.Equal(t, "s3cret", c.DBPassword)
	assert.True(t, c.InstallSymfonyCLI)
	assert.False(t, c.InstallNode)
	assert.Equal(t, "mariadb_app", c.DBContainer)
}

func TestFromAnswersBadFlag(t *testing.T) {
	_, err := FromAnswers(map[string]string{KeyInstallNode: "maybe"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyInstallNode)
}

func TestParseYesNo(t *testing.T) {
	tests := []struct {
		in      string
		def     bool
		want    bool
		wantErr bool
	}{
		{"", false, false, false},
		{"", true, true, false},
		{"y", false, true, false},
		{"YES", false, true, false},
		{" n ", true, false, false},
		{"no", true, false, false},
		{"true", false, true, false},
		{"perhaps", false, false, true},
	}
	for _, tc := range tests {
		got, err := ParseYesNo(tc.in, tc.def)
		if tc.wantErr {
			assert.Error(t, err, "ParseYesNo(%q)", tc.in)
			continue
		}
		require.NoError(t, err, "ParseYesNo(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseYesNo(%q)", tc.in)
	}
}

func TestQuestionsCoverEveryField(t *testing.T) {
	seen := make(map[string]bool)
	for _, q := range Questions() {
		assert.False(t, seen[q.Key], "duplicate question %q", q.Key)
		seen[q.Key] = true
		assert.NotEmpty(t, q.Prompt)
	}
	c := Default()
	for _, f := range c.stringFields() {
		assert.True(t, seen[f.key], "no question for %q", f.key)
	}
	assert.True(t, seen[KeyInstallSymfonyCLI])
	assert.True(t, seen[KeyInstallNode])
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "answers.yaml")
	data := "web_container: front\nweb_port: \"8080\"\ninstall_node: true\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "front", c.WebContainer)
	assert.Equal(t, "8080", c.WebPort)
	assert.True(t, c.InstallNode)
	assert.False(t, c.InstallSymfonyCLI)
	assert.Equal(t, "app_db", c.DBName)
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "answers.env")
	data := "DB_NAME=shop\nINSTALL_SYMFONY_CLI=y\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "shop", c.DBName)
	assert.True(t, c.InstallSymfonyCLI)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_port: \"3307\"\n"), 0o644))
	t.Setenv("STACKGEN_DB_PORT", "3310")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "3310", c.DBPort)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
