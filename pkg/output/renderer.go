package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/injectpreload/pkg/core"
	"github.com/arthur-debert/injectpreload/pkg/errors"
	"github.com/arthur-debert/injectpreload/pkg/logging"
	"github.com/arthur-debert/injectpreload/pkg/output/styles"
	"github.com/arthur-debert/injectpreload/pkg/serializer"
	"github.com/arthur-debert/injectpreload/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Renderer writes tags and results to w in one format
type Renderer struct {
	writer io.Writer
	format Format
	styles *styles.Registry
}

// NewRenderer creates a renderer. FormatAuto falls back to FormatText;
// callers resolve it against their terminal first. With noColor set the
// terminal format renders without escape codes.
func NewRenderer(w io.Writer, format Format, noColor bool) *Renderer {
	log := logging.GetLogger("output.renderer")

	if format == FormatAuto {
		format = FormatText
	}

	lip := lipgloss.NewRenderer(w)
	if noColor {
		lip.SetColorProfile(termenv.Ascii)
		pterm.DisableColor()
	}

	log.Debug().
		Str("format", format.String()).
		Bool("noColor", noColor).
		Str("colorProfile", fmt.Sprintf("%v", lip.ColorProfile())).
		Msg("Renderer created")

	return &Renderer{
		writer: w,
		format: format,
		styles: styles.Default(lip),
	}
}

// Format returns the format the renderer writes
func (r *Renderer) Format() Format {
	return r.format
}

// RenderTags writes a list of tags
func (r *Renderer) RenderTags(tags []types.TagDescriptor) error {
	switch r.format {
	case FormatJSON:
		return r.encodeJSON(nonNilTags(tags))
	case FormatYAML:
		return r.encodeYAML(nonNilTags(tags))
	case FormatTable:
		return r.renderTable(tags)
	case FormatTerminal:
		return r.writeLines(r.styledTags(tags, ""))
	default:
		return r.writeLines(serializedLines(tags, ""))
	}
}

// RenderInjectResult writes the outcome of an injection run
func (r *Renderer) RenderInjectResult(result *core.InjectResult) error {
	switch r.format {
	case FormatJSON:
		return r.encodeJSON(result)
	case FormatYAML:
		return r.encodeYAML(result)
	case FormatTable:
		return r.renderResultTable(result)
	}

	var lines []string
	if result.DryRun {
		lines = append(lines, r.style("DryRunBanner", "Dry run, no files written"))
	}

	for _, f := range result.Files {
		status := r.style("Success", "updated")
		switch {
		case !f.Changed && len(f.Tags) > 0 && f.Custom:
			status = r.style("Warning", "marker not found")
		case !f.Changed:
			status = r.style("Muted", "unchanged")
		case result.DryRun:
			status = r.style("Warning", "would update")
		}

		lines = append(lines, fmt.Sprintf("%s %s (%s %s)",
			r.style("FilePath", f.Path),
			status,
			r.style("Count", fmt.Sprintf("%d", len(f.Tags))),
			plural(len(f.Tags), "tag", "tags"),
		))
		if r.format == FormatTerminal {
			lines = append(lines, r.styledTags(f.Tags, "  ")...)
		} else {
			lines = append(lines, serializedLines(f.Tags, "  ")...)
		}
	}

	lines = append(lines, fmt.Sprintf("%s %s matched across %s",
		r.style("Count", fmt.Sprintf("%d", result.TagCount())),
		plural(result.TagCount(), "tag", "tags"),
		plural(result.Assets, "1 asset", fmt.Sprintf("%d assets", result.Assets)),
	))
	return r.writeLines(lines)
}

// RenderError writes an error, with its code when it has one
func (r *Renderer) RenderError(err error) error {
	if r.format == FormatJSON {
		obj := map[string]interface{}{"error": err.Error()}
		if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
			obj["code"] = string(code)
		}
		return r.encodeJSON(obj)
	}

	label := "Error:"
	if r.format == FormatTerminal {
		label = strings.TrimSpace(pterm.Error.Prefix.Text)
	}
	_, writeErr := fmt.Fprintf(r.writer, "%s %s\n", r.style("Error", label), err.Error())
	return writeErr
}

// RenderMessage writes a single line in the named style
func (r *Renderer) RenderMessage(style, message string) error {
	if r.format == FormatJSON {
		return r.encodeJSON(map[string]string{"message": message})
	}
	return r.writeLines([]string{r.style(style, message)})
}

func (r *Renderer) style(name, s string) string {
	if r.format != FormatTerminal {
		return s
	}
	return r.styles.Render(name, s)
}

func (r *Renderer) styledTags(tags []types.TagDescriptor, indent string) []string {
	lines := make([]string, len(tags))
	for i, tag := range tags {
		as := tag.Attrs.Get("as").Str()
		lines[i] = fmt.Sprintf("%s%s %s", indent, r.styles.Render("As", fmt.Sprintf("%-6s", as)), r.styles.Render("Tag", serializer.SerializeTag(tag)))
	}
	return lines
}

func serializedLines(tags []types.TagDescriptor, indent string) []string {
	if len(tags) == 0 {
		return nil
	}
	return strings.Split(serializer.SerializeTags(tags, indent), "\n")
}

func (r *Renderer) writeLines(lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(r.writer, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) encodeJSON(v interface{}) error {
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (r *Renderer) encodeYAML(v interface{}) error {
	encoder := yaml.NewEncoder(r.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

// tableHeader lists the core columns; other attributes go in the last one
var tableHeader = []string{"HREF", "AS", "TYPE", "INJECT", "ATTRIBUTES"}

func tableRow(tag types.TagDescriptor) []string {
	var extra []string
	for _, attr := range tag.Attrs.All() {
		switch attr.Name {
		case "rel", "href", "type", "as":
			continue
		}
		switch {
		case attr.Value.IsBool() && attr.Value.Flag():
			extra = append(extra, attr.Name)
		case attr.Value.IsString():
			extra = append(extra, fmt.Sprintf("%s=%s", attr.Name, attr.Value.Str()))
		}
	}
	sort.Strings(extra)

	return []string{
		tag.Attrs.Get("href").Str(),
		tag.Attrs.Get("as").Str(),
		tag.Attrs.Get("type").Str(),
		string(tag.InjectTo),
		strings.Join(extra, " "),
	}
}

func (r *Renderer) renderTable(tags []types.TagDescriptor) error {
	data := pterm.TableData{tableHeader}
	for _, tag := range tags {
		data = append(data, tableRow(tag))
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to render table")
	}
	_, err = fmt.Fprintln(r.writer, table)
	return err
}

func (r *Renderer) renderResultTable(result *core.InjectResult) error {
	data := pterm.TableData{append([]string{"FILE"}, tableHeader...)}
	for _, f := range result.Files {
		for _, tag := range f.Tags {
			data = append(data, append([]string{f.Path}, tableRow(tag)...))
		}
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to render table")
	}
	_, err = fmt.Fprintln(r.writer, table)
	return err
}

func nonNilTags(tags []types.TagDescriptor) []types.TagDescriptor {
	if tags == nil {
		return []types.TagDescriptor{}
	}
	return tags
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
