package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

type attrKind uint8

const (
	attrAbsent attrKind = iota
	attrString
	attrBool
)

// AttrValue is a tag attribute value: a string, a boolean flag, or absent.
// The zero value is Absent.
type AttrValue struct {
	kind attrKind
	str  string
	flag bool
}

// String returns a string attribute value
func String(s string) AttrValue {
	return AttrValue{kind: attrString, str: s}
}

// Bool returns a boolean attribute value
func Bool(b bool) AttrValue {
	return AttrValue{kind: attrBool, flag: b}
}

// Absent returns an attribute value that renders as nothing
func Absent() AttrValue {
	return AttrValue{}
}

// IsAbsent reports whether the value carries nothing
func (v AttrValue) IsAbsent() bool { return v.kind == attrAbsent }

// IsString reports whether the value is a string (possibly empty)
func (v AttrValue) IsString() bool { return v.kind == attrString }

// IsBool reports whether the value is a boolean flag
func (v AttrValue) IsBool() bool { return v.kind == attrBool }

// IsNonEmptyString reports whether the value is a string with content
func (v AttrValue) IsNonEmptyString() bool {
	return v.kind == attrString && v.str != ""
}

// Truthy mirrors JavaScript truthiness for the three shapes:
// non-empty strings and true are truthy, everything else is not.
func (v AttrValue) Truthy() bool {
	switch v.kind {
	case attrString:
		return v.str != ""
	case attrBool:
		return v.flag
	default:
		return false
	}
}

// Str returns the string payload, or "" for non-string values
func (v AttrValue) Str() string { return v.str }

// Flag returns the boolean payload, or false for non-bool values
func (v AttrValue) Flag() bool { return v.flag }

// GoString implements fmt.GoStringer for readable test failures
func (v AttrValue) GoString() string {
	switch v.kind {
	case attrString:
		return fmt.Sprintf("String(%q)", v.str)
	case attrBool:
		return fmt.Sprintf("Bool(%t)", v.flag)
	default:
		return "Absent()"
	}
}

// Interface returns the value as string, bool or nil
func (v AttrValue) Interface() interface{} {
	switch v.kind {
	case attrString:
		return v.str
	case attrBool:
		return v.flag
	default:
		return nil
	}
}

// MarshalJSON encodes strings, booleans, and absent as null
func (v AttrValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// MarshalYAML encodes the value the same way as MarshalJSON
func (v AttrValue) MarshalYAML() (interface{}, error) {
	return v.Interface(), nil
}

// Attr is a single name/value pair
type Attr struct {
	Name  string
	Value AttrValue
}

// ValidAttrName reports whether name can be written as an HTML attribute
// name: non-empty, without whitespace, control characters, quotes, or
// any of > / = <.
func ValidAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) || strings.ContainsRune("\"'>/=<", r) {
			return false
		}
	}
	return true
}

// Attributes is an insertion-ordered attribute mapping. Setting an existing
// name replaces its value in place, so the original position is kept.
// Copies are independent: Set never writes into storage another copy sees.
type Attributes struct {
	items []Attr
}

// NewAttributes builds an Attributes from pairs, in order
func NewAttributes(pairs ...Attr) Attributes {
	var a Attributes
	for _, p := range pairs {
		a.Set(p.Name, p.Value)
	}
	return a
}

func (a Attributes) find(name string) int {
	for i, item := range a.items {
		if item.Name == name {
			return i
		}
	}
	return -1
}

// Set assigns name to value
func (a *Attributes) Set(name string, value AttrValue) {
	i := a.find(name)
	items := make([]Attr, len(a.items), len(a.items)+1)
	copy(items, a.items)
	if i >= 0 {
		items[i].Value = value
	} else {
		items = append(items, Attr{Name: name, Value: value})
	}
	a.items = items
}

// Get returns the value for name; missing names yield Absent
func (a Attributes) Get(name string) AttrValue {
	if i := a.find(name); i >= 0 {
		return a.items[i].Value
	}
	return Absent()
}

// Has reports whether name was set, even to Absent
func (a Attributes) Has(name string) bool {
	return a.find(name) >= 0
}

// Len returns the number of entries
func (a Attributes) Len() int { return len(a.items) }

// Names returns the names in insertion order
func (a Attributes) Names() []string {
	names := make([]string, len(a.items))
	for i, item := range a.items {
		names[i] = item.Name
	}
	return names
}

// All returns a copy of the entries in insertion order
func (a Attributes) All() []Attr {
	out := make([]Attr, len(a.items))
	copy(out, a.items)
	return out
}

// Clone returns a shallow copy that can be modified independently
func (a Attributes) Clone() Attributes {
	return NewAttributes(a.items...)
}

// Merge assigns every entry of other onto a, in other's order
func (a *Attributes) Merge(other Attributes) {
	for _, item := range other.items {
		a.Set(item.Name, item.Value)
	}
}

// MarshalJSON encodes the attributes as an object, keeping insertion order
func (a Attributes) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, item := range a.items {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(item.Name)
		if err != nil {
			return nil, err
		}
		val, err := item.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, val...)
	}
	return append(buf, '}'), nil
}

// MarshalYAML encodes the attributes as a mapping, keeping insertion order
func (a Attributes) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, item := range a.items {
		var value yaml.Node
		if err := value.Encode(item.Value.Interface()); err != nil {
			return nil, err
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: item.Name}
		node.Content = append(node.Content, key, &value)
	}
	return node, nil
}
