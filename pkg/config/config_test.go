// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero MemMapFs
// PURPOSE: Test layered loading, validation and rule compilation

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/injectpreload/pkg/config"
	"github.com/arthur-debert/injectpreload/pkg/errors"
	"github.com/arthur-debert/injectpreload/pkg/manifest"
	"github.com/arthur-debert/injectpreload/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlConfig = `
inject_to = "head"
base = "/app/"
html = ["index.html", "about.html"]

[manifest]
kind = "vite"

[[files]]
match = '''Roboto-[a-zA-Z0-9_-]+\.woff2$'''
[files.attributes]
crossorigin = true
type = "font/woff2"

[[files]]
match = '/INDEX-.*\.css$/i'
`

const yamlConfig = `
inject_to: custom
files:
  - match: 'lazy\.js$'
    attributes:
      fetchpriority: low
      width: 120
      nonce: null
`

func memFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0644))
	}
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	fs := memFS(t, nil)

	cfg, path, err := config.Load(config.LoadOptions{FS: fs, Dir: "/project", SkipEnv: true})
	require.NoError(t, err)

	assert.Empty(t, path)
	assert.Equal(t, "head-prepend", cfg.InjectTo)
	assert.Equal(t, "/", cfg.Base)
	assert.Equal(t, "dist", cfg.Dist)
	assert.Equal(t, []string{"index.html"}, cfg.HTML)
	assert.Equal(t, "dir", cfg.Manifest.Kind)
	assert.Empty(t, cfg.Files)
}

func TestLoad_TOMLFile(t *testing.T) {
	fs := memFS(t, map[string]string{"/project/injectpreload.toml": tomlConfig})

	cfg, path, err := config.Load(config.LoadOptions{FS: fs, Dir: "/project", SkipEnv: true})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/project", "injectpreload.toml"), path)
	assert.Equal(t, "head", cfg.InjectTo)
	assert.Equal(t, "/app/", cfg.Base)
	assert.Equal(t, "dist", cfg.Dist, "unset keys keep their default")
	assert.Equal(t, []string{"index.html", "about.html"}, cfg.HTML)
	assert.Equal(t, "vite", cfg.Manifest.Kind)

	require.Len(t, cfg.Files, 2)
	assert.Equal(t, `Roboto-[a-zA-Z0-9_-]+\.woff2$`, cfg.Files[0].Match)
	assert.Equal(t, true, cfg.Files[0].Attributes["crossorigin"])
	assert.Equal(t, "font/woff2", cfg.Files[0].Attributes["type"])
}

func TestLoad_SearchOrder(t *testing.T) {
	fs := memFS(t, map[string]string{
		"/project/.injectpreload.toml": `base = "/dot/"`,
		"/project/injectpreload.yaml":  `base: /yaml/`,
	})

	cfg, path, err := config.Load(config.LoadOptions{FS: fs, Dir: "/project", SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/project", ".injectpreload.toml"), path)
	assert.Equal(t, "/dot/", cfg.Base)
}

func TestLoad_YAMLExplicitPath(t *testing.T) {
	fs := memFS(t, map[string]string{"/etc/preload.yml": yamlConfig})

	cfg, path, err := config.Load(config.LoadOptions{FS: fs, Path: "/etc/preload.yml", SkipEnv: true})
	require.NoError(t, err)

	assert.Equal(t, "/etc/preload.yml", path)
	assert.Equal(t, "custom", cfg.InjectTo)
	require.Len(t, cfg.Files, 1)
	assert.Equal(t, "low", cfg.Files[0].Attributes["fetchpriority"])
}

func TestLoad_Errors(t *testing.T) {
	fs := memFS(t, map[string]string{
		"/p/broken.toml": "base = [",
		"/p/config.ini":  "base=/",
		"/p/empty.toml":  "[[files]]\nmatch = ''",
		"/p/kind.toml":   "[manifest]\nkind = 'webpack'",
	})

	tests := []struct {
		name string
		path string
		code errors.ErrorCode
	}{
		{name: "missing_explicit_file", path: "/p/none.toml", code: errors.ErrConfigLoad},
		{name: "unsupported_format", path: "/p/config.ini", code: errors.ErrConfigLoad},
		{name: "malformed_toml", path: "/p/broken.toml", code: errors.ErrConfigParse},
		{name: "empty_match", path: "/p/empty.toml", code: errors.ErrConfigValid},
		{name: "unknown_manifest_kind", path: "/p/kind.toml", code: errors.ErrConfigValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := config.Load(config.LoadOptions{FS: fs, Path: tt.path, SkipEnv: true})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestLoad_Environment(t *testing.T) {
	fs := memFS(t, map[string]string{"/project/injectpreload.toml": tomlConfig})

	t.Setenv("INJECTPRELOAD_INJECT_TO", "custom")
	t.Setenv("INJECTPRELOAD_HTML", "a.html,b.html")
	t.Setenv("INJECTPRELOAD_MANIFEST__KIND", "esbuild")

	cfg, _, err := config.Load(config.LoadOptions{FS: fs, Dir: "/project"})
	require.NoError(t, err)

	assert.Equal(t, "custom", cfg.InjectTo)
	assert.Equal(t, []string{"a.html", "b.html"}, cfg.HTML)
	assert.Equal(t, "esbuild", cfg.Manifest.Kind)
	assert.Equal(t, "/app/", cfg.Base, "file values without an override survive")
}

func TestLoad_RealDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "injectpreload.yml"), []byte(yamlConfig), 0644))

	cfg, path, err := config.Load(config.LoadOptions{Dir: dir, SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "injectpreload.yml"), path)
	assert.Equal(t, "custom", cfg.InjectTo)
}

func TestCompile(t *testing.T) {
	fs := memFS(t, map[string]string{"/project/injectpreload.toml": tomlConfig})
	cfg, _, err := config.Load(config.LoadOptions{FS: fs, Dir: "/project", SkipEnv: true})
	require.NoError(t, err)

	compiled, err := cfg.Compile()
	require.NoError(t, err)

	assert.Equal(t, types.InjectHead, compiled.InjectTo)
	require.Len(t, compiled.Rules, 2)

	assert.True(t, compiled.Rules[0].Pattern.MatchString("assets/Roboto-abc.woff2"))
	assert.Equal(t, []string{"crossorigin", "type"}, compiled.Rules[0].Attributes.Names())
	assert.Equal(t, types.Bool(true), compiled.Rules[0].Attributes.Get("crossorigin"))

	assert.True(t, compiled.Rules[1].Pattern.MatchString("assets/index-x1.css"), "literal flags apply")
	assert.Equal(t, 0, compiled.Rules[1].Attributes.Len())
}

func TestCompile_AttributeValues(t *testing.T) {
	cfg := &config.Config{Files: []config.FileRule{{
		Match: `lazy\.js$`,
		Attributes: map[string]interface{}{
			"width":         120,
			"height":        int64(80),
			"ratio":         1.5,
			"fetchpriority": "low",
			"nonce":         nil,
			"defer":         false,
		},
	}}}

	compiled, err := cfg.Compile()
	require.NoError(t, err)

	attrs := compiled.Rules[0].Attributes
	assert.Equal(t, []string{"defer", "fetchpriority", "height", "nonce", "ratio", "width"}, attrs.Names())
	assert.Equal(t, types.String("120"), attrs.Get("width"))
	assert.Equal(t, types.String("80"), attrs.Get("height"))
	assert.Equal(t, types.String("1.5"), attrs.Get("ratio"))
	assert.Equal(t, types.String("low"), attrs.Get("fetchpriority"))
	assert.Equal(t, types.Absent(), attrs.Get("nonce"))
	assert.Equal(t, types.Bool(false), attrs.Get("defer"))
	assert.Equal(t, types.InjectHeadPrepend, compiled.InjectTo, "empty inject_to defaults to prepend")
}

func TestCompile_Errors(t *testing.T) {
	t.Run("invalid_pattern", func(t *testing.T) {
		cfg := &config.Config{Files: []config.FileRule{{Match: "("}}}
		_, err := cfg.Compile()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		assert.Equal(t, "(", errors.GetErrorDetails(err)["match"])
	})

	t.Run("invalid_attribute_name", func(t *testing.T) {
		cfg := &config.Config{Files: []config.FileRule{{
			Match:      "x",
			Attributes: map[string]interface{}{`bad"name`: true},
		}}}
		_, err := cfg.Compile()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		assert.Equal(t, 0, errors.GetErrorDetails(err)["rule"])
	})

	t.Run("unsupported_attribute_value", func(t *testing.T) {
		cfg := &config.Config{Files: []config.FileRule{{
			Match:      "x",
			Attributes: map[string]interface{}{"list": []interface{}{"a"}},
		}}}
		_, err := cfg.Compile()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestValidate_UnknownInjectToIsNotAnError(t *testing.T) {
	cfg := &config.Config{InjectTo: "body"}
	assert.NoError(t, cfg.Validate())

	compiled, err := cfg.Compile()
	require.NoError(t, err)
	assert.Equal(t, types.InjectHeadPrepend, compiled.InjectTo)
}

func TestManifestSource(t *testing.T) {
	cfg := &config.Config{
		Dist: "build",
		Manifest: config.ManifestConfig{
			Kind:    "esbuild",
			Path:    "meta.json",
			Outdir:  "build",
			Exclude: []string{"*.map"},
		},
	}

	src, err := cfg.ManifestSource()
	require.NoError(t, err)
	assert.Equal(t, manifest.Source{
		Kind:    manifest.KindEsbuild,
		Root:    "build",
		Path:    "meta.json",
		Outdir:  "build",
		Exclude: []string{"*.map"},
	}, src)
}
