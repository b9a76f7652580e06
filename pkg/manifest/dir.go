package manifest

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/injectpreload/pkg/errors"
	"github.com/arthur-debert/injectpreload/pkg/logging"
	"github.com/arthur-debert/injectpreload/pkg/types"
	"github.com/spf13/afero"
)

// FromDir walks root and records every regular file. Names matching one
// of the exclude globs (path.Match syntax, tested against both the
// relative name and its base name) are skipped.
func FromDir(fs afero.Fs, root string, exclude ...string) (types.Manifest, error) {
	logger := logging.GetLogger("manifest.dir")

	info, err := fs.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestLoad, "cannot read build directory %s", root).
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrManifestLoad, "%s is not a directory", root).
			WithDetail("path", root)
	}

	m := types.Manifest{}
	err = afero.Walk(fs, root, func(p string, fi os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !fi.Mode().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)

		if excluded(name, exclude) {
			logger.Trace().Str("file", name).Msg("Excluded from manifest")
			return nil
		}

		m.Add(types.Asset{FileName: name, Size: fi.Size(), Kind: "file"})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestLoad, "cannot walk build directory %s", root).
			WithDetail("path", root)
	}

	logger.Debug().
		Str("root", root).
		Int("assets", len(m)).
		Msg("Directory manifest loaded")
	return m, nil
}

func excluded(name string, globs []string) bool {
	base := path.Base(name)
	for _, g := range globs {
		g = strings.TrimPrefix(filepath.ToSlash(g), "./")
		if ok, _ := path.Match(g, name); ok {
			return true
		}
		if ok, _ := path.Match(g, base); ok {
			return true
		}
	}
	return false
}
