// Package mime infers MIME types from build asset filenames and maps MIME
// types to the `as` categories browsers understand for preload hints.
//
// Both lookups are pure: the extension table is embedded at build time and
// never consults the host's mime.types files, so results do not vary
// between machines.
package mime
