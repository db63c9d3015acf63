package xml

import (
	"bufio"
	"io"

	"github.com/FocuswithJustin/adorner/core/encoding"
)

// Writer serializes events back to XML text. It implements Handler and
// MarkupHandler so it can sit at the end of any event pipeline.
//
// A start tag is held back until the next event so that an element with no
// content is written in its empty-element form.
type Writer struct {
	w        *bufio.Writer
	startTag bool
	err      error
}

// NewWriter returns a Writer writing to w. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// StartElement writes "<name attrs" and leaves the tag open.
func (x *Writer) StartElement(name string, attrs Attributes) error {
	x.closeStart()
	x.write("<")
	x.write(name)
	for _, a := range attrs {
		x.write(" ")
		x.write(a.Name)
		x.write(`="`)
		x.write(encoding.EscapeXMLAttr(a.Value))
		x.write(`"`)
	}
	x.startTag = true
	return x.err
}

// CharData writes escaped text.
func (x *Writer) CharData(text string) error {
	if text == "" {
		return x.err
	}
	x.closeStart()
	x.write(encoding.EscapeXMLText(text))
	return x.err
}

// EndElement writes "</name>", or "/>" when the element had no content.
func (x *Writer) EndElement(name string) error {
	if x.startTag {
		x.startTag = false
		x.write("/>")
		return x.err
	}
	x.write("</")
	x.write(name)
	x.write(">")
	return x.err
}

// Markup writes raw markup unchanged.
func (x *Writer) Markup(raw string) error {
	x.closeStart()
	x.write(raw)
	return x.err
}

// Flush writes any buffered output to the underlying writer.
func (x *Writer) Flush() error {
	x.closeStart()
	if x.err != nil {
		return x.err
	}
	return x.w.Flush()
}

func (x *Writer) closeStart() {
	if x.startTag {
		x.startTag = false
		x.write(">")
	}
}

func (x *Writer) write(s string) {
	if x.err != nil {
		return
	}
	_, x.err = x.w.WriteString(s)
}
