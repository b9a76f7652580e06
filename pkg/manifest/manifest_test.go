// pkg/manifest/manifest_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero MemMapFs
// PURPOSE: Test the directory, Vite and esbuild manifest sources

package manifest_test

import (
	"testing"

	"github.com/arthur-debert/injectpreload/pkg/errors"
	"github.com/arthur-debert/injectpreload/pkg/manifest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0644))
	}
}

func TestFromDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"/dist/index.html":                "<html></html>",
		"/dist/assets/index-a1b2.js":      "console.log(1)",
		"/dist/assets/index-c3d4.css":     "body{}",
		"/dist/assets/fonts/Roboto.woff2": "woff2",
		"/dist/nested/about.html":         "<html></html>",
	})

	t.Run("all_files_relative_and_slash_separated", func(t *testing.T) {
		m, err := manifest.FromDir(fs, "/dist")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"assets/fonts/Roboto.woff2",
			"assets/index-a1b2.js",
			"assets/index-c3d4.css",
			"index.html",
			"nested/about.html",
		}, m.SortedNames())
		assert.Equal(t, int64(len("body{}")), m["assets/index-c3d4.css"].Size)
	})

	t.Run("exclude_by_base_name_glob", func(t *testing.T) {
		m, err := manifest.FromDir(fs, "/dist", "*.html")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"assets/fonts/Roboto.woff2",
			"assets/index-a1b2.js",
			"assets/index-c3d4.css",
		}, m.SortedNames())
	})

	t.Run("exclude_by_relative_path", func(t *testing.T) {
		m, err := manifest.FromDir(fs, "/dist", "./assets/fonts/*")
		require.NoError(t, err)
		assert.NotContains(t, m, "assets/fonts/Roboto.woff2")
		assert.Contains(t, m, "assets/index-a1b2.js")
	})

	t.Run("missing_root", func(t *testing.T) {
		_, err := manifest.FromDir(fs, "/nope")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrManifestLoad))
	})

	t.Run("root_is_a_file", func(t *testing.T) {
		_, err := manifest.FromDir(fs, "/dist/index.html")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrManifestLoad))
	})
}

const viteManifest = `{
  "index.html": {
    "file": "assets/index-a1b2.js",
    "src": "index.html",
    "isEntry": true,
    "css": ["assets/index-c3d4.css"],
    "assets": ["assets/Roboto-e5f6.woff2"]
  },
  "src/lazy.ts": {
    "file": "assets/lazy-0000.js",
    "css": ["assets/index-c3d4.css"]
  }
}`

func TestFromViteManifest(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"/dist/.vite/manifest.json": viteManifest,
		"/dist/bad.json":            "{not json",
	})

	t.Run("collects_files_css_and_assets", func(t *testing.T) {
		m, err := manifest.FromViteManifest(fs, "/dist/.vite/manifest.json")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"assets/Roboto-e5f6.woff2",
			"assets/index-a1b2.js",
			"assets/index-c3d4.css",
			"assets/lazy-0000.js",
		}, m.SortedNames())
		assert.Equal(t, "css", m["assets/index-c3d4.css"].Kind)
		assert.Equal(t, "chunk", m["assets/index-a1b2.js"].Kind)
		assert.Equal(t, "asset", m["assets/Roboto-e5f6.woff2"].Kind)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := manifest.FromViteManifest(fs, "/dist/none.json")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrManifestLoad))
	})

	t.Run("invalid_json", func(t *testing.T) {
		_, err := manifest.FromViteManifest(fs, "/dist/bad.json")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrManifestParse))
	})
}

const metafile = `{
  "inputs": {"src/main.ts": {"bytes": 120, "imports": []}},
  "outputs": {
    "dist/main.js": {"bytes": 300, "entryPoint": "src/main.ts", "inputs": {}, "imports": [], "exports": []},
    "dist/main.js.map": {"bytes": 900, "inputs": {}, "imports": [], "exports": []},
    "dist/chunks/shared.js": {"bytes": 80, "inputs": {}, "imports": [], "exports": []},
    "other/stray.js": {"bytes": 1, "inputs": {}, "imports": [], "exports": []}
  }
}`

func TestFromMetafile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"/project/meta.json":  metafile,
		"/project/empty.json": `{"inputs": {}}`,
	})

	t.Run("outputs_relative_to_outdir", func(t *testing.T) {
		m, err := manifest.FromMetafile(fs, "/project/meta.json", "dist/")
		require.NoError(t, err)
		assert.Equal(t, []string{"chunks/shared.js", "main.js", "main.js.map"}, m.SortedNames())
		assert.Equal(t, "entry", m["main.js"].Kind)
		assert.Equal(t, "sourcemap", m["main.js.map"].Kind)
		assert.Equal(t, int64(80), m["chunks/shared.js"].Size)
	})

	t.Run("dot_outdir_keeps_everything", func(t *testing.T) {
		m, err := manifest.FromMetafile(fs, "/project/meta.json", ".")
		require.NoError(t, err)
		assert.Len(t, m, 4)
		assert.Contains(t, m, "other/stray.js")
	})

	t.Run("no_outputs", func(t *testing.T) {
		_, err := manifest.FromMetafile(fs, "/project/empty.json", "dist")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrManifestParse))
	})
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    manifest.Kind
		wantErr bool
	}{
		{in: "", want: manifest.KindDir},
		{in: "dir", want: manifest.KindDir},
		{in: "Vite", want: manifest.KindVite},
		{in: " esbuild ", want: manifest.KindEsbuild},
		{in: "webpack", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := manifest.ParseKind(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"/dist/.vite/manifest.json": viteManifest,
		"/dist/meta.json":           `{"outputs": {"/dist/app.js": {"bytes": 3}}}`,
		"/dist/app.js":              "app",
	})

	t.Run("dir", func(t *testing.T) {
		m, err := manifest.Load(fs, manifest.Source{Root: "/dist", Exclude: []string{"*.json"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"app.js"}, m.SortedNames())
	})

	t.Run("vite_default_path", func(t *testing.T) {
		m, err := manifest.Load(fs, manifest.Source{Kind: manifest.KindVite, Root: "/dist"})
		require.NoError(t, err)
		assert.Contains(t, m, "assets/lazy-0000.js")
	})

	t.Run("esbuild_outdir_defaults_to_root", func(t *testing.T) {
		m, err := manifest.Load(fs, manifest.Source{Kind: manifest.KindEsbuild, Root: "/dist"})
		require.NoError(t, err)
		assert.Equal(t, []string{"app.js"}, m.SortedNames())
	})

	t.Run("unknown_kind", func(t *testing.T) {
		_, err := manifest.Load(fs, manifest.Source{Kind: "rollup", Root: "/dist"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}
