package config

import (
	"strings"

	"github.com/arthur-debert/injectpreload/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

const sampleHeader = `# injectpreload configuration
#
# Every [[files]] entry selects build assets whose output name matches
# "match" (a regular expression, or a /literal/flags form) and adds one
# <link rel="preload"> tag per matching asset. "attributes" override the
# computed rel, href, type and as values and add any other attribute;
# true renders a bare flag, false drops the attribute.
#
# inject_to is head-prepend (after <head>), head (before </head>) or
# custom (replaces <!--__vite-plugin-inject-preload__--> in the page).
`

// sampleConfig mirrors Config with toml tags for generation
type sampleConfig struct {
	InjectTo string         `toml:"inject_to"`
	Base     string         `toml:"base"`
	Dist     string         `toml:"dist"`
	HTML     []string       `toml:"html"`
	Manifest sampleManifest `toml:"manifest"`
	Files    []sampleFile   `toml:"files"`
}

type sampleManifest struct {
	Kind    string   `toml:"kind"`
	Exclude []string `toml:"exclude"`
}

type sampleFile struct {
	Match      string                 `toml:"match"`
	Attributes map[string]interface{} `toml:"attributes,omitempty"`
}

func sample() sampleConfig {
	return sampleConfig{
		InjectTo: "head-prepend",
		Base:     "/",
		Dist:     "dist",
		HTML:     []string{"index.html"},
		Manifest: sampleManifest{
			Kind:    "dir",
			Exclude: []string{"*.map"},
		},
		Files: []sampleFile{
			{
				Match:      `Roboto-[a-zA-Z0-9_-]+\.woff2$`,
				Attributes: map[string]interface{}{"crossorigin": true},
			},
			{
				Match: `index-[a-zA-Z0-9_-]+\.css$`,
			},
		},
	}
}

// SampleConfigContent returns the sample configuration as active TOML
func SampleConfigContent() (string, error) {
	data, err := toml.Marshal(sample())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode sample configuration")
	}
	return sampleHeader + "\n" + string(data), nil
}

// GenerateConfigContent returns the sample configuration with every value
// commented out, ready to be written as a starting point
func GenerateConfigContent() (string, error) {
	content, err := SampleConfigContent()
	if err != nil {
		return "", err
	}
	return commentOutConfigValues(content), nil
}

// commentOutConfigValues comments out assignments. Plain table headers
// stay active since an empty table is harmless; array-of-tables headers
// and everything after the first one are commented, since an active
// [[files]] would declare an empty rule.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))
	inArray := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[["):
			inArray = true
			result = append(result, "# "+line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") && !inArray:
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
