// cmd/injectpreload/commands_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: afero MemMapFs, cobra
// PURPOSE: Test the inject, tags and init commands end to end

package injectpreload

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/arthur-debert/injectpreload/pkg/config"
	"github.com/arthur-debert/injectpreload/pkg/errors"
	"github.com/arthur-debert/injectpreload/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectConfig = `inject_to = "head"

[[files]]
match = '''Roboto-[a-zA-Z0-9_-]+\.woff2$'''
[files.attributes]
crossorigin = true

[[files]]
match = '''index-[a-zA-Z0-9_-]+\.css$'''
`

// runCmd executes the root command against fs rooted at /project
func runCmd(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	root := newRootCmd(&app{fs: fs, configFS: fs, workDir: "/project"})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func setupProject(t *testing.T) *testutil.TestBuild {
	t.Helper()
	b := testutil.SetupViteBuild(t)
	require.NoError(t, afero.WriteFile(b.FS, "/project/injectpreload.toml", []byte(projectConfig), 0644))
	return b
}

func TestInjectCommand(t *testing.T) {
	b := setupProject(t)

	out, err := runCmd(t, b.FS, "inject", "--format", "text")
	require.NoError(t, err)

	assert.Equal(t, `/project/dist/index.html updated (2 tags)
  <link rel="preload" href="/assets/Roboto-Regular-f1e2d3.woff2" type="font/woff2" as="font" crossorigin>
  <link rel="preload" href="/assets/index-0a1b2c.css" type="text/css" as="style">
2 tags matched across 5 assets
`, out)

	b.AssertFileContent(t, "index.html", `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <title>App</title>
    <link rel="preload" href="/assets/Roboto-Regular-f1e2d3.woff2" type="font/woff2" as="font" crossorigin>
    <link rel="preload" href="/assets/index-0a1b2c.css" type="text/css" as="style">
  </head>
  <body>
    <div id="app"></div>
  </body>
</html>`)
}

func TestInjectCommand_DryRun(t *testing.T) {
	b := setupProject(t)

	out, err := runCmd(t, b.FS, "inject", "--dry-run", "--format", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "Dry run, no files written")
	assert.Contains(t, out, "index.html would update (2 tags)")
	b.AssertFileContent(t, "index.html", testutil.IndexHTML)
}

func TestInjectCommand_FlagsOverrideConfig(t *testing.T) {
	b := setupProject(t)

	out, err := runCmd(t, b.FS, "inject",
		"--inject-to", "head-prepend",
		"--base", "/app",
		"--match", `logo-.*\.svg$`,
		"--format", "json",
	)
	require.NoError(t, err)

	var result struct {
		Base  string `json:"base"`
		Files []struct {
			Path    string `json:"path"`
			Changed bool   `json:"changed"`
			Tags    []struct {
				InjectTo string                 `json:"injectTo"`
				Attrs    map[string]interface{} `json:"attrs"`
			} `json:"tags"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Equal(t, "/app/", result.Base)
	require.Len(t, result.Files, 1)
	require.Len(t, result.Files[0].Tags, 3)
	assert.Equal(t, "/app/assets/logo-9f8e7d.svg", result.Files[0].Tags[2].Attrs["href"])
	assert.Equal(t, "image", result.Files[0].Tags[2].Attrs["as"])
	assert.Equal(t, "head-prepend", result.Files[0].Tags[0].InjectTo)

	content := b.ReadFile(t, "index.html")
	assert.True(t, strings.HasPrefix(content, `<!DOCTYPE html>
<html lang="en">
  <head>
    <link rel="preload" href="/app/assets/Roboto-Regular-f1e2d3.woff2"`))
}

func TestInjectCommand_CustomMarker(t *testing.T) {
	b := setupProject(t)
	b.AddFile(t, "index.html", testutil.CustomIndexHTML)

	_, err := runCmd(t, b.FS, "inject", "--inject-to", "custom", "--format", "text")
	require.NoError(t, err)

	b.AssertFileContent(t, "index.html", `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <link rel="preload" href="/assets/Roboto-Regular-f1e2d3.woff2" type="font/woff2" as="font" crossorigin>
    <link rel="preload" href="/assets/index-0a1b2c.css" type="text/css" as="style">
    <title>App</title>
  </head>
  <body></body>
</html>`)
}

func TestInjectCommand_DistArgument(t *testing.T) {
	b := testutil.SetupTestBuild(t, "/project/build")
	b.AddFile(t, "index.html", testutil.IndexHTML)
	b.AddFile(t, "app.js", "")

	out, err := runCmd(t, b.FS, "inject", "build", "--match", `\.js$`, "--format", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "/project/build/index.html updated (1 tag)")
	assert.Contains(t, b.ReadFile(t, "index.html"), `<link rel="preload" href="/app.js" type="text/javascript" as="script">`)
}

func TestInjectCommand_Errors(t *testing.T) {
	t.Run("missing_config_file", func(t *testing.T) {
		b := setupProject(t)
		_, err := runCmd(t, b.FS, "inject", "--config", "missing.toml")
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("invalid_pattern", func(t *testing.T) {
		b := setupProject(t)
		_, err := runCmd(t, b.FS, "inject", "--match", "(")
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("unknown_manifest_kind", func(t *testing.T) {
		b := setupProject(t)
		_, err := runCmd(t, b.FS, "inject", "--manifest", "webpack")
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("unknown_format", func(t *testing.T) {
		b := setupProject(t)
		_, err := runCmd(t, b.FS, "inject", "--format", "xml")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		b.AssertFileContent(t, "index.html", testutil.IndexHTML)
	})

	t.Run("missing_document", func(t *testing.T) {
		b := setupProject(t)
		_, err := runCmd(t, b.FS, "inject", "--html", "about.html")
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
	})
}

func TestTagsCommand(t *testing.T) {
	b := setupProject(t)

	out, err := runCmd(t, b.FS, "tags", "--format", "text")
	require.NoError(t, err)

	assert.Equal(t, `<link rel="preload" href="/assets/Roboto-Regular-f1e2d3.woff2" type="font/woff2" as="font" crossorigin>
<link rel="preload" href="/assets/index-0a1b2c.css" type="text/css" as="style">
`, out)
	b.AssertFileContent(t, "index.html", testutil.IndexHTML)
}

func TestTagsCommand_ViteManifest(t *testing.T) {
	b := setupProject(t)
	b.AddViteManifest(t, map[string]testutil.ViteChunk{
		"index.html": {
			File: "assets/index-a1b2c3.js",
			CSS:  []string{"assets/index-0a1b2c.css"},
		},
	})

	out, err := runCmd(t, b.FS, "tags", "--manifest", "vite", "--format", "text")
	require.NoError(t, err)

	assert.Equal(t, `<link rel="preload" href="/assets/index-0a1b2c.css" type="text/css" as="style">
`, out)
}

func TestInitCommand(t *testing.T) {
	t.Run("writes_commented_config", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		out, err := runCmd(t, fs, "init")
		require.NoError(t, err)
		assert.Equal(t, "Wrote /project/injectpreload.toml\n", out)

		data, err := afero.ReadFile(fs, "/project/injectpreload.toml")
		require.NoError(t, err)
		want, err := config.GenerateConfigContent()
		require.NoError(t, err)
		assert.Equal(t, want, string(data))

		// The generated file loads to the defaults
		cfg, path, err := config.Load(config.LoadOptions{FS: fs, Dir: "/project", SkipEnv: true})
		require.NoError(t, err)
		assert.Equal(t, "/project/injectpreload.toml", path)
		assert.Empty(t, cfg.Files)
		assert.Equal(t, "head-prepend", cfg.InjectTo)
	})

	t.Run("refuses_to_overwrite", func(t *testing.T) {
		b := setupProject(t)
		_, err := runCmd(t, b.FS, "init")
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileExists))

		data, err := afero.ReadFile(b.FS, "/project/injectpreload.toml")
		require.NoError(t, err)
		assert.Equal(t, projectConfig, string(data))
	})

	t.Run("force_overwrites", func(t *testing.T) {
		b := setupProject(t)
		_, err := runCmd(t, b.FS, "init", "--force")
		require.NoError(t, err)

		data, err := afero.ReadFile(b.FS, "/project/injectpreload.toml")
		require.NoError(t, err)
		assert.NotEqual(t, projectConfig, string(data))
	})

	t.Run("print_writes_nothing", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		out, err := runCmd(t, fs, "init", "--print")
		require.NoError(t, err)
		assert.Contains(t, out, "# [[files]]")

		exists, err := afero.Exists(fs, "/project/injectpreload.toml")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
