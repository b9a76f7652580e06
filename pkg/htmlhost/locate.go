package htmlhost

import (
	"strings"

	"golang.org/x/net/html"
)

// span is the byte range of one tag token in the document
type span struct {
	start, end int
}

// landmarks are the first occurrences of the tags injection anchors on
type landmarks struct {
	doctype   *span
	htmlOpen  *span
	headOpen  *span
	headClose *span
}

// locate tokenizes doc and records where the anchor tags are. Tags inside
// comments, scripts and other raw text never count.
func locate(doc string) landmarks {
	var lm landmarks

	z := html.NewTokenizer(strings.NewReader(doc))
	offset := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return lm
		}

		start := offset
		offset += len(z.Raw())
		pos := &span{start: start, end: offset}

		switch tt {
		case html.DoctypeToken:
			if lm.doctype == nil {
				lm.doctype = pos
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "html":
				if lm.htmlOpen == nil {
					lm.htmlOpen = pos
				}
			case "head":
				if lm.headOpen == nil {
					lm.headOpen = pos
				}
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if string(name) == "head" && lm.headClose == nil {
				lm.headClose = pos
			}
		}
	}
}

// leadingIndent returns the run of spaces and tabs right before pos
func leadingIndent(doc string, pos int) string {
	i := pos
	for i > 0 && (doc[i-1] == ' ' || doc[i-1] == '\t') {
		i--
	}
	return doc[i:pos]
}
