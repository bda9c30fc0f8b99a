package criteria

import "strings"

// Kind selects which inventory page a tag asks for.
type Kind string

const (
	KindTable    Kind = "table"
	KindRVList   Kind = "rvlist"
	KindHostList Kind = "hostlist"
	KindHostPage Kind = "hostpage"
	KindShowAll  Kind = "showall"
)

// Kinds lists the supported request kinds.
var Kinds = []Kind{KindTable, KindRVList, KindHostList, KindHostPage, KindShowAll}

func (kind Kind) String() string {
	return string(kind)
}

// Attribute names recognized on the tag.
const (
	AttrType = "type"
	AttrName = "name"
	AttrKey  = "key"
)

// DefaultTag is the tag name used in error messages when none is given.
const DefaultTag = "hostinfo"

// Attribute is an optional tag attribute. An attribute that is present with an
// empty value is still present.
type Attribute struct {
	Value   string
	Present bool
}

// Set returns a present attribute with the given value.
func Set(value string) Attribute {
	return Attribute{Value: value, Present: true}
}

// Or returns the attribute value if present, otherwise fallback.
func (attr Attribute) Or(fallback string) string {
	if attr.Present {
		return attr.Value
	}

	return fallback
}

// Request is one tag invocation as handed over by the wiki engine.
type Request struct {
	// Tag is the tag name, used only in error messages.
	Tag  string
	Type Attribute
	Name Attribute
	Key  Attribute
	// Body is the raw text between the opening and closing tag.
	Body string
}

// NewRequest builds a Request from an attribute map, the shape most hosts hand attributes over in.
// Unknown attributes are ignored.
func NewRequest(tag string, attrs map[string]string, body string) Request {
	req := Request{Tag: tag, Body: body}

	if val, ok := attrs[AttrType]; ok {
		req.Type = Set(val)
	}

	if val, ok := attrs[AttrName]; ok {
		req.Name = Set(val)
	}

	if val, ok := attrs[AttrKey]; ok {
		req.Key = Set(val)
	}

	return req
}

// Kind returns the requested kind. Only meaningful when the type attribute is present.
func (req Request) Kind() Kind {
	return Kind(req.Type.Value)
}

// TagName returns the tag name, falling back to DefaultTag.
func (req Request) TagName() string {
	if tag := strings.TrimSpace(req.Tag); tag != "" {
		return tag
	}

	return DefaultTag
}
