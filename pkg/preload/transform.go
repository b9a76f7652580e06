package preload

import (
	"regexp"

	"github.com/arthur-debert/injectpreload/pkg/serializer"
	"github.com/arthur-debert/injectpreload/pkg/types"
)

// Marker is the placeholder comment replaced in custom mode
const Marker = "<!--__vite-plugin-inject-preload__-->"

// markerRE captures the indentation before the marker
var markerRE = regexp.MustCompile(`(?i)([ \t]*)` + regexp.QuoteMeta(Marker))

// Result is what the host receives from one transform. When Custom is set,
// HTML is the complete replacement document and Tags must not be injected
// again. Otherwise HTML is the input unchanged and Tags are for the host
// to place at each tag's InjectTo position.
type Result struct {
	HTML   string
	Tags   []types.TagDescriptor
	Custom bool
}

// Transform builds the tags for one HTML document of the build
func (in *Injector) Transform(html string, manifest types.Manifest, basePath string) Result {
	tags := in.BuildTags(manifest, basePath)

	if in.config.InjectTo != types.InjectCustom {
		return Result{HTML: html, Tags: tags}
	}

	replaced, found := ReplaceMarker(html, tags)
	if !found && len(tags) > 0 {
		in.logger.Warn().
			Int("tags", len(tags)).
			Msg("Custom injection selected but no marker found, HTML left unchanged")
	}
	return Result{HTML: replaced, Tags: tags, Custom: true}
}

// Transform is a convenience wrapper around Injector.Transform
func Transform(html string, manifest types.Manifest, config types.Configuration, basePath string) Result {
	return NewInjector(config).Transform(html, manifest, basePath)
}

// ReplaceMarker swaps the first marker for the serialized tags, indented
// like the marker was. With no tags, or no marker, html is returned as is.
// The boolean reports whether a marker was present.
func ReplaceMarker(html string, tags []types.TagDescriptor) (string, bool) {
	loc := markerRE.FindStringSubmatchIndex(html)
	if loc == nil {
		return html, false
	}
	if len(tags) == 0 {
		return html, true
	}

	indent := html[loc[2]:loc[3]]
	block := serializer.SerializeTags(tags, indent)
	return html[:loc[0]] + block + html[loc[1]:], true
}

// HasMarker reports whether html contains the placeholder comment
func HasMarker(html string) bool {
	return markerRE.MatchString(html)
}
