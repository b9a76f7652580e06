package core

import (
	"path/filepath"

	"github.com/arthur-debert/injectpreload/pkg/errors"
	"github.com/arthur-debert/injectpreload/pkg/filesystem"
	"github.com/arthur-debert/injectpreload/pkg/htmlhost"
	"github.com/arthur-debert/injectpreload/pkg/logging"
	"github.com/arthur-debert/injectpreload/pkg/manifest"
	"github.com/arthur-debert/injectpreload/pkg/preload"
	"github.com/arthur-debert/injectpreload/pkg/types"
	"github.com/spf13/afero"
)

// htmlExcludes keep documents out of the directory manifest
var htmlExcludes = []string{"*.html", "*.htm"}

// InjectOptions contains options for one injection run
type InjectOptions struct {
	// Dist is the build output directory
	Dist string
	// HTML lists the documents to transform, relative to Dist unless absolute
	HTML []string
	// Base is the configured public base path, resolved before use
	Base string
	// Config holds the compiled rules
	Config types.Configuration
	// Manifest describes the asset source; an empty Root means Dist
	Manifest manifest.Source
	// DryRun computes results without writing
	DryRun bool
}

// FileResult describes what happened to one HTML document
type FileResult struct {
	Path    string                `json:"path" yaml:"path"`
	Tags    []types.TagDescriptor `json:"tags" yaml:"tags"`
	Changed bool                  `json:"changed" yaml:"changed"`
	Custom  bool                  `json:"custom" yaml:"custom"`
	HTML    string                `json:"-" yaml:"-"`
}

// InjectResult is the outcome of a run
type InjectResult struct {
	Dist   string       `json:"dist" yaml:"dist"`
	Base   string       `json:"base" yaml:"base"`
	Assets int          `json:"assets" yaml:"assets"`
	DryRun bool         `json:"dryRun" yaml:"dryRun"`
	Files  []FileResult `json:"files" yaml:"files"`
}

// TagCount returns the number of tags generated across all documents
func (r *InjectResult) TagCount() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Tags)
	}
	return n
}

// ChangedCount returns the number of documents whose content changed
func (r *InjectResult) ChangedCount() int {
	n := 0
	for _, f := range r.Files {
		if f.Changed {
			n++
		}
	}
	return n
}

// InjectPreloads transforms every HTML document named in opts
func InjectPreloads(fs afero.Fs, opts InjectOptions) (*InjectResult, error) {
	logger := logging.GetLogger("core.inject")
	done := logging.LogOperationStart(logger, "inject")
	defer done()

	if fs == nil {
		fs = filesystem.NewOS()
	}
	if len(opts.HTML) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no HTML documents to transform")
	}

	m, err := loadManifest(fs, opts.Dist, opts.Manifest)
	if err != nil {
		return nil, err
	}

	base := preload.ResolveBase(opts.Base)
	injector := preload.NewInjector(opts.Config)

	logger.Info().
		Str("dist", opts.Dist).
		Str("base", base).
		Int("assets", len(m)).
		Int("documents", len(opts.HTML)).
		Bool("dryRun", opts.DryRun).
		Msg("Injecting preload tags")

	result := &InjectResult{
		Dist:   opts.Dist,
		Base:   base,
		Assets: len(m),
		DryRun: opts.DryRun,
	}

	for _, doc := range opts.HTML {
		path := doc
		if !filepath.IsAbs(path) {
			path = filepath.Join(opts.Dist, doc)
		}

		data, err := filesystem.ReadFile(fs, path)
		if err != nil {
			return nil, err
		}
		original := string(data)

		res := injector.Transform(original, m, base)
		out := htmlhost.Apply(original, res)

		fr := FileResult{
			Path:    path,
			Tags:    res.Tags,
			Changed: out != original,
			Custom:  res.Custom,
			HTML:    out,
		}

		if fr.Changed && !opts.DryRun {
			if err := filesystem.WriteFile(fs, path, []byte(out)); err != nil {
				return nil, err
			}
		}

		logger.Debug().
			Str("path", path).
			Int("tags", len(fr.Tags)).
			Bool("changed", fr.Changed).
			Msg("Document processed")

		result.Files = append(result.Files, fr)
	}

	return result, nil
}

// CollectTags builds the tags for the build without touching any document
func CollectTags(fs afero.Fs, opts InjectOptions) ([]types.TagDescriptor, error) {
	if fs == nil {
		fs = filesystem.NewOS()
	}

	m, err := loadManifest(fs, opts.Dist, opts.Manifest)
	if err != nil {
		return nil, err
	}
	return preload.NewInjector(opts.Config).BuildTags(m, preload.ResolveBase(opts.Base)), nil
}

func loadManifest(fs afero.Fs, dist string, src manifest.Source) (types.Manifest, error) {
	if src.Root == "" {
		src.Root = dist
	}
	if src.Kind == "" || src.Kind == manifest.KindDir {
		src.Exclude = append(append([]string(nil), src.Exclude...), htmlExcludes...)
	}
	return manifest.Load(fs, src)
}
