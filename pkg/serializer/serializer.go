// Package serializer renders tag descriptors as HTML markup.
package serializer

import (
	"html"
	"strings"

	"github.com/arthur-debert/injectpreload/pkg/types"
)

// coreAttributes always lead, in this order, when present
var coreAttributes = []string{"rel", "href", "type", "as"}

// voidTags never get a closing tag
var voidTags = map[string]bool{
	"link": true,
	"meta": true,
	"base": true,
}

// SerializeTags renders one tag per line, each prefixed with indent.
// Lines are joined with "\n" and there is no trailing newline.
func SerializeTags(tags []types.TagDescriptor, indent string) string {
	if len(tags) == 0 {
		return ""
	}

	lines := make([]string, len(tags))
	for i, tag := range tags {
		lines[i] = indent + SerializeTag(tag)
	}
	return strings.Join(lines, "\n")
}

// SerializeTag renders a single tag without indentation
func SerializeTag(tag types.TagDescriptor) string {
	name := tag.Tag
	if name == "" {
		name = types.LinkTag
	}

	var b strings.Builder
	b.WriteString("<")
	b.WriteString(name)
	writeAttrs(&b, tag.Attrs)
	b.WriteString(">")
	if !voidTags[name] {
		b.WriteString("</" + name + ">")
	}
	return b.String()
}

// writeAttrs skips names that would break the markup
func writeAttrs(b *strings.Builder, attrs types.Attributes) {
	for _, name := range orderedNames(attrs) {
		if !types.ValidAttrName(name) {
			continue
		}
		value := attrs.Get(name)
		switch {
		case value.IsBool():
			if value.Flag() {
				b.WriteString(" " + name)
			}
		case value.IsString():
			b.WriteString(" " + name + `="` + html.EscapeString(value.Str()) + `"`)
		}
	}
}

// orderedNames puts the core attributes first, then the rest in insertion order
func orderedNames(attrs types.Attributes) []string {
	names := make([]string, 0, attrs.Len())
	seen := make(map[string]bool, len(coreAttributes))
	for _, name := range coreAttributes {
		if attrs.Has(name) {
			names = append(names, name)
			seen[name] = true
		}
	}
	for _, name := range attrs.Names() {
		if !seen[name] {
			names = append(names, name)
		}
	}
	return names
}

// IncrementIndent returns indent one level deeper: a tab when the indent
// is tab based, two spaces otherwise
func IncrementIndent(indent string) string {
	if strings.HasPrefix(indent, "\t") {
		return indent + "\t"
	}
	return indent + "  "
}
