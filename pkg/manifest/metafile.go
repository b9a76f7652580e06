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

// metafile is the part of an esbuild metafile the injector needs
type metafile struct {
	Outputs map[string]metafileOutput `json:"outputs"`
}

type metafileOutput struct {
	Bytes      int64  `json:"bytes"`
	EntryPoint string `json:"entryPoint,omitempty"`
}

// FromMetafile reads an esbuild metafile and records its outputs. Output
// keys are relative to the esbuild working directory; outdir is stripped
// so names end up relative to the build output root. Outputs outside
// outdir are skipped.
func FromMetafile(fs afero.Fs, metafilePath, outdir string) (types.Manifest, error) {
	logger := logging.GetLogger("manifest.esbuild")

	data, err := filesystem.ReadFile(fs, metafilePath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestLoad, "cannot read esbuild metafile %s", metafilePath).
			WithDetail("path", metafilePath)
	}

	var meta metafile
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "invalid esbuild metafile %s", metafilePath).
			WithDetail("path", metafilePath)
	}
	if meta.Outputs == nil {
		return nil, errors.Newf(errors.ErrManifestParse, "esbuild metafile %s has no outputs", metafilePath).
			WithDetail("path", metafilePath)
	}

	prefix := cleanName(outdir)
	if prefix != "" {
		prefix += "/"
	}

	m := types.Manifest{}
	for key, out := range meta.Outputs {
		name := cleanName(key)
		if !strings.HasPrefix(name, prefix) {
			logger.Debug().Str("output", key).Str("outdir", outdir).Msg("Output outside outdir, skipped")
			continue
		}
		name = strings.TrimPrefix(name, prefix)
		if name == "" {
			continue
		}

		kind := "output"
		if out.EntryPoint != "" {
			kind = "entry"
		}
		if path.Ext(name) == ".map" {
			kind = "sourcemap"
		}
		m.Add(types.Asset{FileName: name, Size: out.Bytes, Kind: kind})
	}

	logger.Debug().
		Str("path", metafilePath).
		Int("assets", len(m)).
		Msg("esbuild metafile loaded")
	return m, nil
}
