// Package manifest builds the filename to asset mapping the injector
// matches against. Three sources are supported: walking the build output
// directory, reading a Vite manifest.json, and reading an esbuild
// metafile. Every source yields slash separated names relative to the
// build output root.
package manifest
