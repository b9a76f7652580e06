package mime

import (
	_ "embed"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed types.yaml
var typesTable []byte

// extensionTypes maps a lower-cased extension (no dot) to its MIME type
var extensionTypes = mustParseTable(typesTable)

func mustParseTable(data []byte) map[string]string {
	table, err := parseTable(data)
	if err != nil {
		panic(fmt.Sprintf("mime: embedded types table: %v", err))
	}
	return table
}

func parseTable(data []byte) (map[string]string, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	table := make(map[string]string)
	for mimeType, exts := range raw {
		for _, ext := range exts {
			ext = strings.ToLower(ext)
			if prev, dup := table[ext]; dup {
				return nil, fmt.Errorf("extension %q listed for both %s and %s", ext, prev, mimeType)
			}
			table[ext] = mimeType
		}
	}
	return table, nil
}

// Lookup infers a MIME type from the final extension of filename.
// Directory components are ignored and the comparison is case-insensitive.
func Lookup(filename string) (string, bool) {
	ext := path.Ext(path.Base(strings.ReplaceAll(filename, "\\", "/")))
	if ext == "" {
		return "", false
	}
	mimeType, ok := extensionTypes[strings.ToLower(ext[1:])]
	return mimeType, ok
}
