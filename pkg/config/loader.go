package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/injectpreload/pkg/errors"
	"github.com/arthur-debert/injectpreload/pkg/filesystem"
	"github.com/arthur-debert/injectpreload/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
)

// EnvPrefix prefixes every environment override. A double underscore
// separates nested keys: INJECTPRELOAD_MANIFEST__KIND sets manifest.kind.
const EnvPrefix = "INJECTPRELOAD_"

// ConfigFileNames are searched in order; the first one found is used
var ConfigFileNames = []string{
	"injectpreload.toml",
	".injectpreload.toml",
	"injectpreload.yaml",
	"injectpreload.yml",
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// FS reads config files. When nil the real disk is used.
	FS afero.Fs
	// Dir is searched for ConfigFileNames
	Dir string
	// Path is an explicit config file; it must exist
	Path string
	// SkipEnv ignores INJECTPRELOAD_* variables
	SkipEnv bool
}

// rawBytesProvider serves config file content read through afero
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "rawBytesProvider does not support Read")
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"inject_to":     "head-prepend",
		"base":          "/",
		"dist":          "dist",
		"html":          []string{"index.html"},
		"manifest.kind": "dir",
	}
}

// Load reads and validates the configuration. The returned string is the
// config file that was used, or "" when only defaults and environment
// applied.
func Load(opts LoadOptions) (*Config, string, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, "", errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Config file
	path, err := findConfigFile(opts)
	if err != nil {
		return nil, "", err
	}
	if path != "" {
		if err := loadFile(k, opts.FS, path); err != nil {
			return nil, "", err
		}
		logger.Debug().Str("path", path).Msg("Config file loaded")
	}

	// 3. Environment
	if !opts.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
		if err != nil {
			return nil, "", errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
		}
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, "", errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	logger.Debug().
		Int("rules", len(cfg.Files)).
		Str("injectTo", cfg.InjectTo).
		Str("dist", cfg.Dist).
		Msg("Configuration loaded")

	return &cfg, path, nil
}

// envKey maps INJECTPRELOAD_INJECT_TO to inject_to and
// INJECTPRELOAD_MANIFEST__KIND to manifest.kind
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

func findConfigFile(opts LoadOptions) (string, error) {
	if opts.Path != "" {
		if !exists(opts.FS, opts.Path) {
			return "", errors.Newf(errors.ErrConfigLoad, "config file %s does not exist", opts.Path).
				WithDetail("path", opts.Path)
		}
		return opts.Path, nil
	}

	for _, name := range ConfigFileNames {
		candidate := filepath.Join(opts.Dir, name)
		if exists(opts.FS, candidate) {
			return candidate, nil
		}
	}
	return "", nil
}

func exists(fs afero.Fs, path string) bool {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return filesystem.Exists(fs, path)
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

func loadFile(k *koanf.Koanf, fs afero.Fs, path string) error {
	parser, err := parserFor(path)
	if err != nil {
		return err
	}

	var provider koanf.Provider
	if fs == nil {
		provider = file.Provider(path)
	} else {
		data, err := filesystem.ReadFile(fs, path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path).
				WithDetail("path", path)
		}
		provider = &rawBytesProvider{bytes: data}
	}

	if err := k.Load(provider, parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
			WithDetail("path", path)
	}
	return nil
}
