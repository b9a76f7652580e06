package mime

import "strings"

// Category is the value of a preload link's `as` attribute
type Category string

const (
	CategoryScript Category = "script"
	CategoryStyle  Category = "style"
	CategoryFont   Category = "font"
	CategoryImage  Category = "image"
	CategoryFetch  Category = "fetch"
)

// fontSubtypes are legacy font types registered outside the font/ tree
var fontSubtypes = map[string]bool{
	"application/font-woff":         true,
	"application/font-woff2":        true,
	"application/font-sfnt":         true,
	"application/x-font-ttf":        true,
	"application/x-font-otf":        true,
	"application/x-font-opentype":   true,
	"application/x-font-truetype":   true,
	"application/vnd.ms-fontobject": true,
}

var scriptTypes = map[string]bool{
	"text/javascript":          true,
	"application/javascript":   true,
	"application/x-javascript": true,
	"text/ecmascript":          true,
	"application/ecmascript":   true,
	"module":                   true,
}

// Classify maps a MIME type to the resource hint category used for `as`.
// Unknown, empty and malformed input all yield CategoryFetch.
func Classify(mimeType string) Category {
	mt := normalize(mimeType)
	if mt == "" {
		return CategoryFetch
	}

	primary, _, _ := strings.Cut(mt, "/")

	switch {
	case primary == "font" || fontSubtypes[mt]:
		return CategoryFont
	case mt == "text/css":
		return CategoryStyle
	case primary == "image":
		return CategoryImage
	case scriptTypes[mt]:
		return CategoryScript
	default:
		return CategoryFetch
	}
}

// normalize lower-cases the type and drops parameters such as charset
func normalize(mimeType string) string {
	mt, _, _ := strings.Cut(mimeType, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}
