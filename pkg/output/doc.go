// Package output renders preload tags and injection results for the CLI.
//
// Formats:
//   - text: the serialized tags, one per line, ready to paste into HTML
//   - term: the same with lipgloss styling, chosen automatically on color terminals
//   - table: a pterm table of the tag attributes
//   - json and yaml: machine-readable documents, attributes in tag order
package output
