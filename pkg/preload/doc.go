// Package preload computes resource preload hints for a finished build.
//
// Given an ordered list of match rules, the injector walks the build
// manifest in sorted filename order, tests every rule against every output
// filename, and produces one <link rel="preload"> descriptor per match:
//
//	cfg := types.Configuration{
//	    Rules: []types.MatchRule{{Pattern: regexp.MustCompile(`\.woff2$`)}},
//	}
//	tags := preload.BuildTags(manifest, cfg, "/static/")
//
// Defaults are computed per tag: href is the base path plus the filename,
// type is inferred from the extension and as is derived from the type.
// Any rule attribute given as a non-empty string (or, for as, any truthy
// value) replaces the computed default; every other rule attribute is
// copied onto the tag after the core ones.
//
// In custom mode Transform splices the serialized tags into the document
// at the placeholder comment (see Marker) instead of handing them to the
// host, keeping the placeholder's indentation.
package preload
