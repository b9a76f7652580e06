package types

import "strings"

// Pattern is anything that can test an asset filename. *regexp.Regexp
// satisfies it, as do the ECMAScript patterns built by pkg/patterns.
type Pattern interface {
	MatchString(s string) bool
}

// MatchRule selects build assets by filename and carries the attributes
// that override the computed defaults of the generated tag.
type MatchRule struct {
	Pattern    Pattern
	Attributes Attributes
}

// InjectMode tells the host where generated tags go
type InjectMode string

const (
	// InjectHead appends the tags at the end of <head>
	InjectHead InjectMode = "head"
	// InjectHeadPrepend inserts the tags right after <head>
	InjectHeadPrepend InjectMode = "head-prepend"
	// InjectCustom replaces the placeholder comment in the document
	InjectCustom InjectMode = "custom"
)

// ParseInjectMode maps a configuration value to an InjectMode.
// Unknown and empty values fall back to InjectHeadPrepend.
func ParseInjectMode(s string) InjectMode {
	switch InjectMode(strings.ToLower(strings.TrimSpace(s))) {
	case InjectHead:
		return InjectHead
	case InjectCustom:
		return InjectCustom
	default:
		return InjectHeadPrepend
	}
}

// IsKnownInjectMode reports whether s names one of the three modes
func IsKnownInjectMode(s string) bool {
	switch InjectMode(strings.ToLower(strings.TrimSpace(s))) {
	case InjectHead, InjectHeadPrepend, InjectCustom:
		return true
	default:
		return false
	}
}

// Configuration is the read-only input captured once per build
type Configuration struct {
	Rules    []MatchRule
	InjectTo InjectMode
}
