package manifest

import (
	"encoding/json"
	"path"
	"strings"

	"github.com/arthur-debert/injectpreload/pkg/errors"
	"github.com/arthur-debert/injectpreload/pkg/filesystem"
	"github.com/arthur-debert/injectpreload/pkg/logging"
	"github.com/arthur-debert/injectpreload/pkg/types"
	"github.com/spf13/afero"
)

// viteChunk is one entry of a Vite build manifest
type viteChunk struct {
	File    string   `json:"file"`
	Src     string   `json:"src,omitempty"`
	IsEntry bool     `json:"isEntry,omitempty"`
	CSS     []string `json:"css,omitempty"`
	Assets  []string `json:"assets,omitempty"`
}

// FromViteManifest reads a Vite manifest.json and records every emitted
// chunk, stylesheet and static asset it references
func FromViteManifest(fs afero.Fs, manifestPath string) (types.Manifest, error) {
	logger := logging.GetLogger("manifest.vite")

	data, err := filesystem.ReadFile(fs, manifestPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestLoad, "cannot read Vite manifest %s", manifestPath).
			WithDetail("path", manifestPath)
	}

	var chunks map[string]viteChunk
	if err := json.Unmarshal(data, &chunks); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "invalid Vite manifest %s", manifestPath).
			WithDetail("path", manifestPath)
	}

	m := types.Manifest{}
	add := func(name, kind string) {
		name = cleanName(name)
		if name == "" {
			return
		}
		if _, seen := m[name]; seen {
			return
		}
		m.Add(types.Asset{FileName: name, Kind: kind})
	}

	for _, chunk := range chunks {
		add(chunk.File, "chunk")
		for _, css := range chunk.CSS {
			add(css, "css")
		}
		for _, asset := range chunk.Assets {
			add(asset, "asset")
		}
	}

	logger.Debug().
		Str("path", manifestPath).
		Int("chunks", len(chunks)).
		Int("assets", len(m)).
		Msg("Vite manifest loaded")
	return m, nil
}

// cleanName normalizes an output name to a slash separated relative path
func cleanName(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, "\\", "/"))
	if name == "" {
		return ""
	}
	name = path.Clean(name)
	name = strings.TrimPrefix(name, "/")
	if name == "." {
		return ""
	}
	return name
}
