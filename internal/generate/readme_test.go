package generate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackgen/internal/config"
)

func TestReadmeSections(t *testing.T) {
	assert.False(t, contains(readmeSections(withFlags(false, false)).Names(), ReadmeSymfony))
	assert.True(t, contains(readmeSections(withFlags(true, false)).Names(), ReadmeSymfony))
	assert.False(t, contains(readmeSections(withFlags(false, true)).Names(), ReadmeSymfony))

	names := readmeSections(withFlags(true, true)).Names()
	assert.Equal(t, ReadmeIntro, names[0])
	assert.Equal(t, ReadmeFooter, names[len(names)-1])
}

func TestReadmeFlags(t *testing.T) {
	tests := []struct {
		symfony, node bool
	}{{false, false}, {true, false}, {false, true}, {true, true}}
	for _, tc := range tests {
		content, err := buildReadme(withFlags(tc.symfony, tc.node))
		require.NoError(t, err)

		assert.Equal(t, tc.symfony, strings.Contains(content, "## Symfony"))
		assert.Equal(t, tc.symfony, strings.Contains(content, "Symfony CLI"))
		assert.Equal(t, tc.symfony, strings.Contains(content, "cconsole"))
		assert.Equal(t, tc.node, strings.Contains(content, "Node.js 20"))
	}
}

func TestReadmeInterpolation(t *testing.T) {
	c := config.Default()
	c.WebContainer = "front_web"
	c.DBContainer = "back_db"
	c.WebPort = "8081"
	c.DBPort = "3307"
	c.DBPassword = "do-not-print"
	content, err := buildReadme(c)
	require.NoError(t, err)

	assert.Contains(t, content, "http://localhost:8081")
	assert.Contains(t, content, "localhost:3307")
	assert.Contains(t, content, "docker compose exec front_web composer install")
	assert.Contains(t, content, "docker compose exec back_db /docker-entrypoint-initdb.d/backup.sh")
	assert.NotContains(t, content, "do-not-print")
}

func TestReadmeMarkdownFences(t *testing.T) {
	content, err := buildReadme(withFlags(true, true))
	require.NoError(t, err)

	assert.Contains(t, content, "```bash\n")
	assert.Zero(t, strings.Count(content, "```")%2, "unbalanced code fences")
	assert.NotContains(t, content, "~~~")
	assert.Contains(t, content, "`.env`")
}

// TestReadmeKeepsTildeInNames checks user values are not rewritten by the
// backtick substitution.
func TestReadmeKeepsTildeInNames(t *testing.T) {
	c := config.Default()
	c.WebContainer = "web~1"
	content, err := buildReadme(c)
	require.NoError(t, err)
	assert.Contains(t, content, "docker compose exec web~1 composer install")
}
