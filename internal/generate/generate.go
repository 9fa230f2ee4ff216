// Package generate turns a Configuration into the scaffold's file set.
//
// Generate is pure: it renders every artifact in memory. Write puts a bundle
// on disk under a target root, fully overwriting each file. Run does both.
//
// Layout under the target root:
//
//	.env, .env.example       — environment declarations
//	docker-compose.yml       — two services, one network, one volume
//	apache/Dockerfile        — staged build instructions
//	apache/custom-php.ini    — static PHP settings
//	aliases.sh               — shell aliases
//	db/backup.sh, restore.sh — maintenance scripts (0755)
//	.htaccess, .dockerignore, .gitignore
//	README.md
package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"stackgen/internal/config"
	"stackgen/internal/logger"
)

// Directories are created under the target root before any artifact is
// written.
var Directories = []string{"apache", "db"}

// Artifact is one generated file. Path is slash-separated and relative to
// the target root.
type Artifact struct {
	Path    string
	Mode    os.FileMode
	Content string
}

// Bundle holds every artifact of one run in write order.
type Bundle struct {
	Artifacts []Artifact
}

// Lookup returns the artifact at path.
func (b *Bundle) Lookup(path string) (Artifact, bool) {
	for _, a := range b.Artifacts {
		if a.Path == path {
			return a, true
		}
	}
	return Artifact{}, false
}

type generator struct {
	path  string
	mode  os.FileMode
	build func(config.Configuration) (string, error)
}

// generators is the fixed write order.
var generators = []generator{
	{".env", 0o644, buildEnv},
	{".env.example", 0o644, buildEnvExample},
	{"docker-compose.yml", 0o644, buildCompose},
	{"apache/Dockerfile", 0o644, buildDockerfile},
	{"apache/custom-php.ini", 0o644, buildPHPIni},
	{"aliases.sh", 0o644, buildAliases},
	{"db/backup.sh", 0o755, buildBackupScript},
	{"db/restore.sh", 0o755, buildRestoreScript},
	{".htaccess", 0o644, buildHtaccess},
	{".dockerignore", 0o644, buildDockerignore},
	{".gitignore", 0o644, buildGitignore},
	{"README.md", 0o644, buildReadme},
}

// Paths returns the artifact paths in write order.
func Paths() []string {
	paths := make([]string, len(generators))
	for i, g := range generators {
		paths[i] = g.path
	}
	return paths
}

// Generate renders every artifact for c. No files are written.
func Generate(c config.Configuration) (*Bundle, error) {
	b := &Bundle{Artifacts: make([]Artifact, 0, len(generators))}
	for _, g := range generators {
		content, err := g.build(c)
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", g.path, err)
		}
		b.Artifacts = append(b.Artifacts, Artifact{Path: g.path, Mode: g.mode, Content: content})
	}
	return b, nil
}

// Error reports a failed filesystem step. Artifacts written before the
// failure stay on disk.
type Error struct {
	Op   string // "mkdir", "write" or "chmod"
	Path string
	Err  error
}

func (e *Error) Error() string { return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Write creates the required directories under root and then writes every
// artifact in order. It stops at the first failure.
func Write(b *Bundle, root string) error {
	for _, sub := range Directories {
		dir := filepath.Join(root, sub)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &Error{Op: "mkdir", Path: dir, Err: err}
		}
	}
	for _, a := range b.Artifacts {
		if err := writeArtifact(root, a); err != nil {
			return err
		}
	}
	return nil
}

// writeArtifact truncates and rewrites the file, then reapplies the mode:
// os.WriteFile only honours perm when it creates the file.
func writeArtifact(root string, a Artifact) error {
	path := filepath.Join(root, filepath.FromSlash(a.Path))
	if err := os.WriteFile(path, []byte(a.Content), a.Mode); err != nil {
		return &Error{Op: "write", Path: path, Err: err}
	}
	if err := os.Chmod(path, a.Mode); err != nil {
		return &Error{Op: "chmod", Path: path, Err: err}
	}
	logger.Debugf("wrote %s (%d bytes)", a.Path, len(a.Content))
	return nil
}

// Run generates and writes the full file set for c under root.
func Run(c config.Configuration, root string) error {
	b, err := Generate(c)
	if err != nil {
		return err
	}
	if err := Write(b, root); err != nil {
		return err
	}
	logger.Infof("generated %d files in %s", len(b.Artifacts), root)
	return nil
}
