package preload

import (
	"github.com/arthur-debert/injectpreload/pkg/logging"
	"github.com/arthur-debert/injectpreload/pkg/mime"
	"github.com/arthur-debert/injectpreload/pkg/types"
	"github.com/rs/zerolog"
)

// Injector turns a build manifest into preload tags for one configuration
type Injector struct {
	config types.Configuration
	logger zerolog.Logger
}

// NewInjector creates an injector bound to config
func NewInjector(config types.Configuration) *Injector {
	return &Injector{
		config: config,
		logger: logging.GetLogger("preload.injector"),
	}
}

// Config returns the configuration the injector was created with
func (in *Injector) Config() types.Configuration {
	return in.config
}

// BuildTags scans the manifest in sorted filename order and, for every
// filename, tests each rule in declared order. Every match produces a tag;
// an asset matching several rules yields several tags.
func (in *Injector) BuildTags(manifest types.Manifest, basePath string) []types.TagDescriptor {
	names := manifest.SortedNames()
	in.logger.Debug().
		Int("assetCount", len(names)).
		Int("ruleCount", len(in.config.Rules)).
		Str("basePath", basePath).
		Msg("Building preload tags")

	injectTo := in.config.InjectTo
	if injectTo == "" || injectTo == types.InjectCustom {
		injectTo = types.InjectHeadPrepend
	}

	var tags []types.TagDescriptor
	for _, name := range names {
		for i, rule := range in.config.Rules {
			if rule.Pattern == nil || !rule.Pattern.MatchString(name) {
				continue
			}

			tag := buildTag(name, rule.Attributes, basePath, injectTo)
			in.logger.Debug().
				Str("asset", name).
				Int("rule", i).
				Str("href", tag.Attrs.Get("href").Str()).
				Str("as", tag.Attrs.Get("as").Str()).
				Msg("Asset matched rule")
			tags = append(tags, tag)
		}
	}

	in.logger.Info().
		Int("tags", len(tags)).
		Msg("Preload tags built")

	return tags
}

// buildTag computes the defaults for one match and lets the rule's own
// attributes override them
func buildTag(name string, userAttrs types.Attributes, basePath string, injectTo types.InjectMode) types.TagDescriptor {
	attrs := userAttrs.Clone()

	href := attrs.Get("href")
	if !href.IsNonEmptyString() {
		href = types.String(basePath + name)
	}

	typ := attrs.Get("type")
	if !typ.IsNonEmptyString() {
		if inferred, ok := mime.Lookup(name); ok {
			typ = types.String(inferred)
		} else {
			typ = types.Absent()
		}
	}

	as := attrs.Get("as")
	if !as.Truthy() {
		as = types.String(string(mime.Classify(typ.Str())))
	}

	computed := types.NewAttributes(
		types.Attr{Name: "rel", Value: types.String("preload")},
		types.Attr{Name: "href", Value: href},
		types.Attr{Name: "type", Value: typ},
		types.Attr{Name: "as", Value: as},
	)
	computed.Merge(attrs)

	// The merge re-applies user values verbatim; the resolved defaults win
	// wherever the user value did not qualify.
	computed.Set("href", href)
	computed.Set("type", typ)
	computed.Set("as", as)

	return types.TagDescriptor{
		Tag:      types.LinkTag,
		Attrs:    computed,
		InjectTo: injectTo,
	}
}

// BuildTags is a convenience wrapper around Injector.BuildTags
func BuildTags(manifest types.Manifest, config types.Configuration, basePath string) []types.TagDescriptor {
	return NewInjector(config).BuildTags(manifest, basePath)
}
