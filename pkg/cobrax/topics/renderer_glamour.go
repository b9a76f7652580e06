package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour
type GlamourRenderer struct {
	// Style is a glamour style name ("dark", "light", "notty") or a style
	// file path; "" or "auto" detects from the terminal
	Style string
	// Width wraps output; 0 keeps glamour's default
	Width int
}

// NewGlamourRenderer creates a markdown renderer with auto-detection.
// Pass plain to force the notty style for pipes and NO_COLOR.
func NewGlamourRenderer(plain bool) *GlamourRenderer {
	r := &GlamourRenderer{Style: "auto"}
	if plain {
		r.Style = "notty"
	}
	return r
}

// Render converts markdown for the terminal. Other formats, and any
// rendering failure, return the content unchanged.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty", "ascii", "dracula", "pink":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
