package generate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDockerfileStageOrder(t *testing.T) {
	mandatory := []string{StageBase, StageSystemPackages, StagePHPExtensions, StageComposer}
	trailer := []string{StageApache, StagePermissions, StageExpose}

	tests := []struct {
		name    string
		symfony bool
		node    bool
		middle  []string
	}{
		{"none", false, false, []string{StageXdebug}},
		{"symfony", true, false, []string{StageSymfonyCLI, StageXdebug}},
		{"node", false, true, []string{StageXdebug, StageNode}},
		{"both", true, true, []string{StageSymfonyCLI, StageXdebug, StageNode}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want := append(append(append([]string{}, mandatory...), tc.middle...), trailer...)
			assert.Equal(t, want, dockerfileSections(withFlags(tc.symfony, tc.node)).Names())
		})
	}
}

// TestDockerfileRenderedOrder checks the stage headers in the rendered text
// follow the same order as the section list.
func TestDockerfileRenderedOrder(t *testing.T) {
	headers := map[string]string{
		StageBase:           "# 1. BASE IMAGE",
		StageSystemPackages: "# 2. SYSTEM PACKAGES",
		StagePHPExtensions:  "# 3. PHP EXTENSIONS",
		StageComposer:       "# 4. COMPOSER",
		StageSymfonyCLI:     "# 5. SYMFONY CLI",
		StageXdebug:         "# 6. XDEBUG",
		StageNode:           "# 7. NVM & NODE.JS",
		StageApache:         "# 8. APACHE",
		StagePermissions:    "# 9. PERMISSIONS",
		StageExpose:         "# 10. ENTRYPOINT",
	}
	for _, flags := range [][2]bool{{false, false}, {true, false}, {false, true}, {true, true}} {
		c := withFlags(flags[0], flags[1])
		content, err := buildDockerfile(c)
		require.NoError(t, err)

		last := -1
		for _, name := range dockerfileSections(c).Names() {
			idx := strings.Index(content, headers[name])
			require.GreaterOrEqual(t, idx, 0, "missing %s", name)
			assert.Greater(t, idx, last, "%s out of order", name)
			last = idx
		}
		assert.Equal(t, flags[0], strings.Contains(content, "SYMFONY CLI"))
		assert.Equal(t, flags[1], strings.Contains(content, "nvm install"))
	}
}

func TestDockerfileFixedContent(t *testing.T) {
	content, err := buildDockerfile(withFlags(false, false))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(content, "# 1. BASE IMAGE & ARGUMENTS\nFROM php:8.4-apache\n"))
	assert.Contains(t, content, "ARG NODE_VERSION=20\n")
	assert.Contains(t, content, "COPY --from=composer:latest /usr/bin/composer /usr/bin/composer\n")
	assert.Contains(t, content, "docker-php-ext-enable xdebug")
	assert.True(t, strings.HasSuffix(content, "EXPOSE 80\n"))
}
