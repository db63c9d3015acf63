// Package xml provides the XML plumbing used by adorner: a raw-token event
// stream with a matching serializer for the single-pass transducer, and a
// small DOM with XPath queries for whole-document counting passes.
//
// Security Notes:
//   - Neither path fetches external entities. The streaming decoder knows
//     only the predefined and HTML named entities.
//   - The xmlquery library is used for the DOM, which uses Go's encoding/xml
//     internally and inherits its security properties.
package xml

import (
	"fmt"
	"io"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// xmlNamespace is the namespace bound to the reserved "xml" prefix.
const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// Document represents a parsed XML document.
type Document struct {
	root *xmlquery.Node
}

// Node represents an XML element node.
type Node struct {
	node *xmlquery.Node
}

// ParseReader parses XML from r and returns a Document.
func ParseReader(r io.Reader) (*Document, error) {
	root, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}
	return &Document{root: root}, nil
}

// Select runs a compiled expression and returns matching nodes in document order.
func (d *Document) Select(expr *xpath.Expr) []*Node {
	nodes := xmlquery.QuerySelectorAll(d.root, expr)
	result := make([]*Node, len(nodes))
	for i, n := range nodes {
		result[i] = &Node{node: n}
	}
	return result
}

// Name returns the qualified element name.
func (n *Node) Name() string {
	if n.node == nil {
		return ""
	}
	if n.node.Prefix != "" {
		return n.node.Prefix + ":" + n.node.Data
	}
	return n.node.Data
}

// Attributes returns the node's attributes with qualified names. The
// reserved xml namespace is always reported with its "xml" prefix.
func (n *Node) Attributes() Attributes {
	if n.node == nil {
		return nil
	}
	attrs := make(Attributes, 0, len(n.node.Attr))
	for _, a := range n.node.Attr {
		name := a.Name.Local
		switch {
		case a.Name.Space == xmlNamespace || a.NamespaceURI == xmlNamespace:
			name = "xml:" + a.Name.Local
		case a.Name.Space != "":
			name = a.Name.Space + ":" + a.Name.Local
		}
		attrs = append(attrs, Attr{Name: name, Value: a.Value})
	}
	return attrs
}
