// Package types defines the data model shared by the preload injector:
// match rules and their configuration, the build asset manifest, and the
// link tag descriptors that are produced from them.
//
// Attribute values are a small tagged variant (string, boolean flag, or
// absent) held in an insertion-ordered mapping, so a rule's attributes are
// rendered in the order they were declared.
package types
