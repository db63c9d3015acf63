package xml

import "strings"

// Handler receives the events of an XML document in document order.
// Names are qualified names exactly as written in the source, e.g. "xml:lang".
type Handler interface {
	StartElement(name string, attrs Attributes) error
	CharData(text string) error
	EndElement(name string) error
}

// MarkupHandler is implemented by handlers that want comments, processing
// instructions and directives. Raw holds the complete markup, e.g. "<!-- x -->".
type MarkupHandler interface {
	Markup(raw string) error
}

// Attr is a single attribute with its qualified name.
type Attr struct {
	Name  string
	Value string
}

// Attributes is an ordered attribute list. Lookups ignore case.
type Attributes []Attr

// Get returns the value of the named attribute and whether it was present.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if strings.EqualFold(attr.Name, name) {
			return attr.Value, true
		}
	}
	return "", false
}

// Value returns the value of the named attribute, or "" when absent.
func (a Attributes) Value(name string) string {
	v, _ := a.Get(name)
	return v
}

// Has reports whether the named attribute is present.
func (a Attributes) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Set replaces the value of the named attribute in place, or appends it.
func (a *Attributes) Set(name, value string) {
	for i, attr := range *a {
		if strings.EqualFold(attr.Name, name) {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attr{Name: name, Value: value})
}

// Delete removes the named attribute. It reports whether anything was removed.
func (a *Attributes) Delete(name string) bool {
	for i, attr := range *a {
		if strings.EqualFold(attr.Name, name) {
			*a = append((*a)[:i], (*a)[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns an independent copy.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	copy(out, a)
	return out
}

// Local returns the local part of a qualified name.
func Local(qname string) string {
	if i := strings.IndexByte(qname, ':'); i >= 0 {
		return qname[i+1:]
	}
	return qname
}

// LowerLocal returns the lowercased local part of a qualified name, which is
// how element names are matched against configured tag sets.
func LowerLocal(qname string) string {
	return strings.ToLower(Local(qname))
}
