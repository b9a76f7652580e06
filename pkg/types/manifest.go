package types

import "sort"

// Asset is what the injector knows about one emitted build file.
// Only the filename takes part in matching.
type Asset struct {
	FileName string `json:"fileName" yaml:"fileName"`
	Size     int64  `json:"size,omitempty" yaml:"size,omitempty"`
	Kind     string `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// Manifest maps an output filename, relative to the build root and slash
// separated, to its asset record
type Manifest map[string]Asset

// SortedNames returns the output filenames in ascending lexicographic order
func (m Manifest) SortedNames() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Add records an asset under its filename
func (m Manifest) Add(asset Asset) {
	m[asset.FileName] = asset
}
