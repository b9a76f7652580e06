package types

// LinkTag is the only element the injector generates
const LinkTag = "link"

// TagDescriptor is one preload hint waiting to be rendered
type TagDescriptor struct {
	Tag      string     `json:"tag" yaml:"tag"`
	Attrs    Attributes `json:"attrs" yaml:"attrs"`
	InjectTo InjectMode `json:"injectTo" yaml:"injectTo"`
}
