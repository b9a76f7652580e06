package config

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/arthur-debert/injectpreload/pkg/errors"
	"github.com/arthur-debert/injectpreload/pkg/logging"
	"github.com/arthur-debert/injectpreload/pkg/manifest"
	"github.com/arthur-debert/injectpreload/pkg/patterns"
	"github.com/arthur-debert/injectpreload/pkg/types"
)

// Config is the decoded configuration
type Config struct {
	// Files are the preload rules, in match order
	Files []FileRule `koanf:"files" yaml:"files" json:"files"`
	// InjectTo is head, head-prepend or custom
	InjectTo string `koanf:"inject_to" yaml:"injectTo" json:"injectTo"`
	// Base is the public base path prepended to asset names
	Base string `koanf:"base" yaml:"base" json:"base"`
	// Dist is the build output directory
	Dist string `koanf:"dist" yaml:"dist" json:"dist"`
	// HTML lists the documents to transform, relative to Dist
	HTML     []string       `koanf:"html" yaml:"html" json:"html"`
	Manifest ManifestConfig `koanf:"manifest" yaml:"manifest" json:"manifest"`
}

// FileRule selects assets by filename and sets tag attributes
type FileRule struct {
	Match      string                 `koanf:"match" yaml:"match" json:"match"`
	Attributes map[string]interface{} `koanf:"attributes" yaml:"attributes" json:"attributes"`
}

// ManifestConfig says where the asset list comes from
type ManifestConfig struct {
	Kind    string   `koanf:"kind" yaml:"kind" json:"kind"`
	Path    string   `koanf:"path" yaml:"path" json:"path"`
	Outdir  string   `koanf:"outdir" yaml:"outdir" json:"outdir"`
	Exclude []string `koanf:"exclude" yaml:"exclude" json:"exclude"`
}

// Validate checks the values that cannot be repaired by defaulting
func (c *Config) Validate() error {
	logger := logging.GetLogger("config")

	for i, f := range c.Files {
		if f.Match == "" {
			return errors.Newf(errors.ErrConfigValid, "files[%d]: match is required", i).
				WithDetail("rule", i)
		}
	}

	if c.InjectTo != "" && !types.IsKnownInjectMode(c.InjectTo) {
		logger.Warn().
			Str("injectTo", c.InjectTo).
			Msg("Unknown inject_to value, using head-prepend")
	}

	if _, err := manifest.ParseKind(c.Manifest.Kind); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid manifest.kind")
	}

	return nil
}

// Compile turns the decoded rules into the injector configuration.
// Attribute maps carry no order, so attributes are sorted by name.
func (c *Config) Compile() (types.Configuration, error) {
	rules := make([]types.MatchRule, 0, len(c.Files))
	for i, f := range c.Files {
		pattern, err := patterns.Compile(f.Match)
		if err != nil {
			return types.Configuration{}, errors.Wrapf(err, errors.ErrConfigValid, "files[%d]: invalid match", i).
				WithDetail("rule", i).
				WithDetail("match", f.Match)
		}

		attrs, err := convertAttributes(f.Attributes)
		if err != nil {
			return types.Configuration{}, errors.Wrapf(err, errors.ErrConfigValid, "files[%d]: invalid attributes", i).
				WithDetail("rule", i)
		}

		rules = append(rules, types.MatchRule{Pattern: pattern, Attributes: attrs})
	}

	return types.Configuration{
		Rules:    rules,
		InjectTo: types.ParseInjectMode(c.InjectTo),
	}, nil
}

// ManifestSource describes the manifest for this configuration
func (c *Config) ManifestSource() (manifest.Source, error) {
	kind, err := manifest.ParseKind(c.Manifest.Kind)
	if err != nil {
		return manifest.Source{}, err
	}
	return manifest.Source{
		Kind:    kind,
		Root:    c.Dist,
		Path:    c.Manifest.Path,
		Outdir:  c.Manifest.Outdir,
		Exclude: c.Manifest.Exclude,
	}, nil
}

func convertAttributes(raw map[string]interface{}) (types.Attributes, error) {
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	var attrs types.Attributes
	for _, name := range names {
		if !types.ValidAttrName(name) {
			return types.Attributes{}, fmt.Errorf("attribute name %q is not a valid HTML attribute name", name)
		}
		value, err := convertValue(raw[name])
		if err != nil {
			return types.Attributes{}, fmt.Errorf("attribute %q: %w", name, err)
		}
		attrs.Set(name, value)
	}
	return attrs, nil
}

func convertValue(v interface{}) (types.AttrValue, error) {
	switch x := v.(type) {
	case nil:
		return types.Absent(), nil
	case string:
		return types.String(x), nil
	case bool:
		return types.Bool(x), nil
	case int:
		return types.String(strconv.Itoa(x)), nil
	case int64:
		return types.String(strconv.FormatInt(x, 10)), nil
	case uint64:
		return types.String(strconv.FormatUint(x, 10)), nil
	case float64:
		return types.String(strconv.FormatFloat(x, 'f', -1, 64)), nil
	default:
		return types.Absent(), fmt.Errorf("unsupported value of type %T", v)
	}
}
