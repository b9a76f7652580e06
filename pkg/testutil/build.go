package testutil

import (
	"encoding/json"
	"path"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// IndexHTML is a minimal document in the shape Vite emits
const IndexHTML = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <title>App</title>
  </head>
  <body>
    <div id="app"></div>
  </body>
</html>`

// CustomIndexHTML carries the placeholder comment for custom injection
const CustomIndexHTML = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <!--__vite-plugin-inject-preload__-->
    <title>App</title>
  </head>
  <body></body>
</html>`

// TestBuild represents a build output directory
type TestBuild struct {
	FS   afero.Fs
	Dist string
}

// SetupTestBuild creates an empty dist directory on a fresh memory filesystem
func SetupTestBuild(t *testing.T, dist string) *TestBuild {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(dist, 0755))

	return &TestBuild{FS: fs, Dist: dist}
}

// SetupViteBuild creates a dist directory with a typical Vite output
func SetupViteBuild(t *testing.T) *TestBuild {
	t.Helper()

	b := SetupTestBuild(t, "/project/dist")
	b.AddFile(t, "index.html", IndexHTML)
	b.AddFile(t, "assets/index-a1b2c3.js", "console.log('app')")
	b.AddFile(t, "assets/vendor-d4e5f6.js", "export {}")
	b.AddFile(t, "assets/index-0a1b2c.css", "body{margin:0}")
	b.AddFile(t, "assets/Roboto-Regular-f1e2d3.woff2", "wOF2")
	b.AddFile(t, "assets/logo-9f8e7d.svg", "<svg/>")
	return b
}

// Path returns the absolute path of a dist relative name
func (b *TestBuild) Path(name string) string {
	return path.Join(b.Dist, name)
}

// AddFile writes a file below the dist directory
func (b *TestBuild) AddFile(t *testing.T, name, content string) string {
	t.Helper()

	p := b.Path(name)
	require.NoError(t, afero.WriteFile(b.FS, p, []byte(content), 0644))
	return p
}

// ViteChunk is one entry of a generated Vite manifest
type ViteChunk struct {
	File   string   `json:"file"`
	CSS    []string `json:"css,omitempty"`
	Assets []string `json:"assets,omitempty"`
}

// AddViteManifest writes .vite/manifest.json with the given chunks
func (b *TestBuild) AddViteManifest(t *testing.T, chunks map[string]ViteChunk) string {
	t.Helper()

	data, err := json.MarshalIndent(chunks, "", "  ")
	require.NoError(t, err)
	return b.AddFile(t, ".vite/manifest.json", string(data))
}

// ReadFile returns the content of a dist relative file
func (b *TestBuild) ReadFile(t *testing.T, name string) string {
	t.Helper()

	data, err := afero.ReadFile(b.FS, b.Path(name))
	require.NoError(t, err)
	return string(data)
}

// AssertFileContent checks a dist relative file
func (b *TestBuild) AssertFileContent(t *testing.T, name, expected string) {
	t.Helper()
	assert.Equal(t, expected, b.ReadFile(t, name), "content of %s", name)
}
