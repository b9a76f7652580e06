package manifest

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/injectpreload/pkg/errors"
	"github.com/arthur-debert/injectpreload/pkg/types"
	"github.com/spf13/afero"
)

// Kind names a manifest source
type Kind string

const (
	KindDir     Kind = "dir"
	KindVite    Kind = "vite"
	KindEsbuild Kind = "esbuild"
)

// default locations, relative to the build output root
const (
	DefaultViteManifest = ".vite/manifest.json"
	DefaultMetafile     = "meta.json"
)

// Source describes where the manifest for one build comes from
type Source struct {
	Kind Kind
	// Root is the build output directory
	Root string
	// Path locates the manifest file for vite and esbuild sources.
	// Relative paths are resolved against Root.
	Path string
	// Outdir is the esbuild outdir as written in the metafile keys.
	// It defaults to Root.
	Outdir string
	// Exclude lists globs skipped by the dir source
	Exclude []string
}

// ParseKind maps a configuration value to a Kind; empty means dir
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "", KindDir:
		return KindDir, nil
	case KindVite:
		return KindVite, nil
	case KindEsbuild:
		return KindEsbuild, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown manifest kind %q (want dir, vite or esbuild)", s).
			WithDetail("kind", s)
	}
}

// Load builds the manifest described by src
func Load(fs afero.Fs, src Source) (types.Manifest, error) {
	switch src.Kind {
	case "", KindDir:
		return FromDir(fs, src.Root, src.Exclude...)
	case KindVite:
		return FromViteManifest(fs, resolve(src.Root, src.Path, DefaultViteManifest))
	case KindEsbuild:
		outdir := src.Outdir
		if outdir == "" {
			outdir = src.Root
		}
		return FromMetafile(fs, resolve(src.Root, src.Path, DefaultMetafile), outdir)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown manifest kind %q", src.Kind).
			WithDetail("kind", string(src.Kind))
	}
}

func resolve(root, p, fallback string) string {
	if p == "" {
		p = fallback
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
