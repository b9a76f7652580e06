package injectpreload

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/injectpreload/pkg/config"
	"github.com/arthur-debert/injectpreload/pkg/core"
	"github.com/arthur-debert/injectpreload/pkg/errors"
	"github.com/arthur-debert/injectpreload/pkg/logging"
	"github.com/arthur-debert/injectpreload/pkg/output"
	"github.com/spf13/cobra"
)

// runFlags are the flags shared by inject and tags. Values only override
// the configuration when the flag was given.
type runFlags struct {
	html         []string
	base         string
	injectTo     string
	match        []string
	manifest     string
	manifestPath string
	format       string
}

func addRunFlags(cmd *cobra.Command, f *runFlags) {
	flags := cmd.Flags()
	flags.StringSliceVar(&f.html, "html", nil, MsgFlagHTML)
	flags.StringVar(&f.base, "base", "", MsgFlagBase)
	flags.StringVar(&f.injectTo, "inject-to", "", MsgFlagInjectTo)
	flags.StringArrayVarP(&f.match, "match", "m", nil, MsgFlagMatch)
	flags.StringVar(&f.manifest, "manifest", "", MsgFlagManifest)
	flags.StringVar(&f.manifestPath, "manifest-path", "", MsgFlagManifestPath)
	flags.StringVarP(&f.format, "format", "f", "auto", MsgFlagFormat)

	_ = cmd.RegisterFlagCompletionFunc("inject-to", cobra.FixedCompletions(
		[]string{"head-prepend", "head", "custom"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("manifest", cobra.FixedCompletions(
		[]string{"dir", "vite", "esbuild"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"auto", "term", "text", "table", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp))
}

// abs resolves p against the working directory
func (a *app) abs(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.workDir, p)
}

// loadOptions merges config file, environment and flags into core options.
// A positional argument replaces the configured dist directory.
func (a *app) loadOptions(cmd *cobra.Command, args []string, f *runFlags) (core.InjectOptions, error) {
	logger := logging.GetLogger("cli.options")

	cfg, path, err := config.Load(config.LoadOptions{
		FS:   a.configFS,
		Dir:  a.workDir,
		Path: a.abs(a.global.configPath),
	})
	if err != nil {
		return core.InjectOptions{}, err
	}

	flags := cmd.Flags()
	if len(args) > 0 {
		cfg.Dist = args[0]
	}
	if flags.Changed("html") {
		cfg.HTML = f.html
	}
	if flags.Changed("base") {
		cfg.Base = f.base
	}
	if flags.Changed("inject-to") {
		cfg.InjectTo = f.injectTo
	}
	if flags.Changed("manifest") {
		cfg.Manifest.Kind = f.manifest
	}
	if flags.Changed("manifest-path") {
		cfg.Manifest.Path = f.manifestPath
	}
	for _, m := range f.match {
		cfg.Files = append(cfg.Files, config.FileRule{Match: m})
	}

	cfg.Dist = a.abs(cfg.Dist)
	if cfg.Manifest.Outdir != "" {
		cfg.Manifest.Outdir = a.abs(cfg.Manifest.Outdir)
	}

	if err := cfg.Validate(); err != nil {
		return core.InjectOptions{}, err
	}
	compiled, err := cfg.Compile()
	if err != nil {
		return core.InjectOptions{}, err
	}
	if len(compiled.Rules) == 0 {
		logger.Warn().Msg("No preload rules configured, nothing will match")
	}

	src, err := cfg.ManifestSource()
	if err != nil {
		return core.InjectOptions{}, errors.Wrap(err, errors.ErrConfigValid, "invalid manifest source")
	}

	logger.Debug().
		Str("configFile", path).
		Str("dist", cfg.Dist).
		Int("rules", len(compiled.Rules)).
		Msg("Options resolved")

	return core.InjectOptions{
		Dist:     cfg.Dist,
		HTML:     cfg.HTML,
		Base:     cfg.Base,
		Config:   compiled,
		Manifest: src,
	}, nil
}

// renderer builds the output renderer for the command's stdout
func (a *app) renderer(cmd *cobra.Command, format string) (*output.Renderer, error) {
	f, err := output.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	if out, ok := cmd.OutOrStdout().(*os.File); ok {
		f = f.Resolve(out)
	}
	return output.NewRenderer(cmd.OutOrStdout(), f, a.global.noColor), nil
}
