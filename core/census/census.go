// Package census makes the counting pass that precedes annotation.
//
// The transducer writes every word in one forward pass, so anything that
// depends on the whole document has to be known before it starts: how many
// parts each split word has, and the largest ordinal, page number and
// page population, which fix the zero-padded identifier widths and the
// pseudo-page quota. Census loads the document as a DOM and walks its word
// and page-break elements in document order using the same ordinal rule
// as the transducer.
package census

import (
	"io"
	"strings"

	"github.com/antchfx/xpath"

	"github.com/FocuswithJustin/adorner/core/adorn"
	aerrors "github.com/FocuswithJustin/adorner/core/errors"
	"github.com/FocuswithJustin/adorner/core/xml"
)

// countedElements selects w, pc and pb in any namespace and letter case.
const countedElements = `//*[translate(local-name(), 'WPCB', 'wpcb') = 'w' or ` +
	`translate(local-name(), 'WPCB', 'wpcb') = 'pc' or ` +
	`translate(local-name(), 'WPCB', 'wpcb') = 'pb']`

var countedExpr = xpath.MustCompile(countedElements)

// Result holds what the counting pass learned about one document.
type Result struct {
	// Maxima feed identifier widths and the pseudo-page quota.
	Maxima adorn.Maxima `json:"maxima"`

	// Parts maps the ordinal of every split word to its part count.
	Parts map[int]int `json:"parts,omitempty"`

	// Elements is the number of w and pc elements seen.
	Elements int `json:"elements"`
}

// SplitTable returns a fresh split-word table for one annotation pass.
func (r Result) SplitTable() *adorn.SplitTable {
	return adorn.NewSplitTable(r.Parts)
}

// Count runs the counting pass over a parsed document. idAttr names the
// word identifier attribute; words without it fall back to "id".
func Count(doc *xml.Document, idAttr string) (Result, error) {
	res := Result{Parts: make(map[int]int)}

	var (
		ordinal    int
		lastRaw    string
		haveRaw    bool
		partCount  int
		wordInPage int
	)
	closeWord := func() {
		if partCount > 1 {
			res.Parts[ordinal] = partCount
		}
	}

	for _, node := range doc.Select(countedExpr) {
		local := xml.LowerLocal(node.Name())
		if local == "pb" {
			res.Maxima.Page++
			wordInPage = 0
			continue
		}

		res.Elements++
		attrs := node.Attributes()
		raw, ok := attrs.Get(idAttr)
		if !ok {
			raw, ok = attrs.Get("id")
		}
		raw = strings.TrimSpace(raw)
		if !ok || raw == "" || !strings.ContainsAny(raw, "0123456789") {
			return Result{}, &aerrors.WordIDError{Element: local, Attr: idAttr, Value: raw, Ordinal: ordinal}
		}

		if haveRaw && raw == lastRaw {
			partCount++
			continue
		}
		closeWord()
		ordinal++
		lastRaw, haveRaw = raw, true
		partCount = 1
		wordInPage++
		res.Maxima.WordsInPage = max(res.Maxima.WordsInPage, wordInPage)
	}
	closeWord()

	res.Maxima.Ordinal = ordinal
	res.Maxima.Words = ordinal
	return res, nil
}

// CountReader parses r and runs the counting pass over it.
func CountReader(r io.Reader, idAttr string) (Result, error) {
	doc, err := xml.ParseReader(r)
	if err != nil {
		return Result{}, &aerrors.ParseError{Format: "XML", Message: err.Error(), Err: err}
	}
	return Count(doc, idAttr)
}
