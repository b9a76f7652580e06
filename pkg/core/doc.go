// Package core runs the preload injection over a build output directory.
//
// The pipeline is: load the asset manifest, resolve the public base path
// once, then for every HTML document build the tags, place them (marker
// replacement or head injection) and write the document back unless it is
// a dry run. HTML documents never take part in matching.
package core
