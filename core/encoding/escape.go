// Package encoding provides shared text escaping utilities for XML output.
package encoding

import (
	"strings"
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"\t", "&#x9;",
	"\n", "&#xA;",
	"\r", "&#xD;",
)

// EscapeXMLText escapes only the basic XML entities for text content.
func EscapeXMLText(s string) string {
	if !strings.ContainsAny(s, "&<>") {
		return s
	}
	return textEscaper.Replace(s)
}

// EscapeXMLAttr escapes text for use in double-quoted XML attributes.
// Whitespace control characters are written as character references so
// attribute value normalization on re-read gives back the same value.
func EscapeXMLAttr(s string) string {
	if !strings.ContainsAny(s, "&<>\"\t\n\r") {
		return s
	}
	return attrEscaper.Replace(s)
}
