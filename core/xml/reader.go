package xml

import (
	"encoding/xml"
	"io"
	"strings"

	aerrors "github.com/FocuswithJustin/adorner/core/errors"
)

// Stream decodes r and delivers its events to h in document order.
//
// Tokens are read raw so prefixes survive untouched on the way back out;
// well-formedness of end tags is still checked against the open element
// stack kept here. Named HTML entities are accepted; external entities are
// never fetched.
func Stream(r io.Reader, h Handler) error {
	decoder := xml.NewDecoder(r)
	decoder.Entity = xml.HTMLEntity

	markup, _ := h.(MarkupHandler)
	var open []string

	for {
		tok, err := decoder.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			line, col := decoder.InputPos()
			return &aerrors.ParseError{Format: "XML", Line: line, Column: col, Message: err.Error(), Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := qualified(t.Name)
			open = append(open, name)
			attrs := make(Attributes, 0, len(t.Attr))
			for _, a := range t.Attr {
				attrs = append(attrs, Attr{Name: qualified(a.Name), Value: a.Value})
			}
			if err := h.StartElement(name, attrs); err != nil {
				return err
			}
		case xml.EndElement:
			name := qualified(t.Name)
			if len(open) == 0 || open[len(open)-1] != name {
				line, col := decoder.InputPos()
				return &aerrors.ParseError{Format: "XML", Line: line, Column: col, Message: "unexpected end element </" + name + ">"}
			}
			open = open[:len(open)-1]
			if err := h.EndElement(name); err != nil {
				return err
			}
		case xml.CharData:
			if err := h.CharData(string(t)); err != nil {
				return err
			}
		case xml.Comment:
			if markup != nil {
				if err := markup.Markup("<!--" + string(t) + "-->"); err != nil {
					return err
				}
			}
		case xml.ProcInst:
			if markup != nil {
				raw := "<?" + t.Target
				if len(t.Inst) > 0 {
					raw += " " + string(t.Inst)
				}
				if err := markup.Markup(raw + "?>"); err != nil {
					return err
				}
			}
		case xml.Directive:
			if markup != nil {
				if err := markup.Markup("<!" + string(t) + ">"); err != nil {
					return err
				}
			}
		}
	}

	if len(open) > 0 {
		return aerrors.NewParse("XML", "", "document ended inside <"+strings.Join(open, "><")+">")
	}
	return nil
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
