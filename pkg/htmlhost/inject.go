// Package htmlhost places preload tags into an HTML document the way the
// bundler's HTML pipeline does: right after <head>, right before </head>,
// or, when the document has no head, after <html>, after the doctype, or
// at the very top.
package htmlhost

import (
	"github.com/arthur-debert/injectpreload/pkg/preload"
	"github.com/arthur-debert/injectpreload/pkg/serializer"
	"github.com/arthur-debert/injectpreload/pkg/types"
)

// Apply returns the final document for one transform result. Custom
// results already carry the whole document; otherwise the tags are placed
// into doc, head-prepend tags first.
func Apply(doc string, res preload.Result) string {
	if res.Custom {
		return res.HTML
	}

	var prepend, appendTags []types.TagDescriptor
	for _, tag := range res.Tags {
		if tag.InjectTo == types.InjectHead {
			appendTags = append(appendTags, tag)
		} else {
			prepend = append(prepend, tag)
		}
	}

	out := InjectHead(doc, prepend, true)
	return InjectHead(out, appendTags, false)
}

// InjectHead inserts tags after the opening head tag when prepend is set,
// or before the closing head tag otherwise
func InjectHead(doc string, tags []types.TagDescriptor, prepend bool) string {
	if len(tags) == 0 {
		return doc
	}

	lm := locate(doc)

	if prepend && lm.headOpen != nil {
		return insertAfter(doc, *lm.headOpen, tags)
	}
	if !prepend && lm.headClose != nil {
		ws := leadingIndent(doc, lm.headClose.start)
		block := serializer.SerializeTags(tags, serializer.IncrementIndent(ws))
		wsStart := lm.headClose.start - len(ws)
		return doc[:wsStart] + block + "\n" + doc[wsStart:]
	}

	return fallback(doc, lm, tags)
}

// insertAfter puts the tags on new lines after the token at pos, one
// indentation level deeper than the token
func insertAfter(doc string, pos span, tags []types.TagDescriptor) string {
	ws := leadingIndent(doc, pos.start)
	block := serializer.SerializeTags(tags, serializer.IncrementIndent(ws))
	return doc[:pos.end] + "\n" + block + doc[pos.end:]
}

func fallback(doc string, lm landmarks, tags []types.TagDescriptor) string {
	switch {
	case lm.htmlOpen != nil:
		return insertAfter(doc, *lm.htmlOpen, tags)
	case lm.doctype != nil:
		return doc[:lm.doctype.end] + "\n" + serializer.SerializeTags(tags, "") + doc[lm.doctype.end:]
	default:
		return serializer.SerializeTags(tags, "") + "\n" + doc
	}
}
