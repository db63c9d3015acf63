package adorn

import (
	"strconv"
	"strings"

	aerrors "github.com/FocuswithJustin/adorner/core/errors"
	"github.com/FocuswithJustin/adorner/core/melder"
	"github.com/FocuswithJustin/adorner/core/postag"
	"github.com/FocuswithJustin/adorner/core/xml"
)

// SyntheticPrefix starts the names of marker elements that upstream stages
// insert to steer blank placement. They never reach the output.
const SyntheticPrefix = "adorner-"

const (
	// syntheticBlank asks for a blank at this point.
	syntheticBlank = SyntheticPrefix + "blank"

	// syntheticNoBlank suppresses the blank after the preceding word.
	syntheticNoBlank = SyntheticPrefix + "noblank"
)

// teiFormAttr is a legacy attribute stripped from every element.
const teiFormAttr = "TEIform"

// pageState tracks real page breaks.
type pageState struct {
	number       int
	wordInPage   int
	facs         string
	previousFacs string
	column       int
}

// Transducer re-emits one document's event stream with its words adorned.
// It implements xml.Handler so it can be driven directly by xml.Stream.
//
// Each word element is held back until the next event that is not part of
// it, so its text is complete when it is written. Nothing else is delayed.
type Transducer struct {
	cfg    Config
	sets   tagSets
	sink   xml.Handler
	markup xml.MarkupHandler

	ids    *Formatter
	split  *SplitTable
	melder Melder
	tags   TagClassifier
	pager  *pseudoPager

	langs Stack[string]
	divs  Stack[string]
	jumps Stack[jumpState]

	// wordDepths holds the nesting depth of each open w/pc element.
	wordDepths Stack[int]

	page          pageState
	ordinal       int
	lastRawID     string
	haveRawID     bool
	lastEmittedID string
	gapCount      int
	isFirstWord   bool
	suppressBlank bool
	lastPath      string

	pending *pendingWord
	records []OutputWordRecord

	droppedMarkup int
}

// New returns a Transducer writing to sink.
func New(cfg Config, collab Collaborators, sink xml.Handler) (*Transducer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		return nil, aerrors.NewValidation("sink", "must not be nil")
	}

	if collab.Melder == nil {
		collab.Melder = melder.New()
	}
	if collab.Tags == nil {
		collab.Tags = postag.Default()
	}
	if collab.Split == nil {
		collab.Split = NewSplitTable(nil)
	}

	var maxima Maxima
	if collab.Maxima != nil {
		maxima = *collab.Maxima
	}
	widths := ComputeWidths(maxima, cfg.Spacing, cfg.MinIDWidth)

	t := &Transducer{
		cfg:         cfg,
		sets:        newTagSets(cfg),
		sink:        sink,
		ids:         NewFormatter(cfg.BaseName, cfg.Scheme, cfg.Spacing, widths),
		split:       collab.Split,
		melder:      collab.Melder,
		tags:        collab.Tags,
		pager:       newPseudoPager(sink, cfg.PseudoPageSize, collab.Maxima),
		isFirstWord: true,
	}
	t.markup, _ = sink.(xml.MarkupHandler)
	return t, nil
}

// Records returns the emitted word records in emission order.
func (t *Transducer) Records() []OutputWordRecord {
	return t.records
}

// Depth returns the current element nesting depth.
func (t *Transducer) Depth() int {
	return t.langs.Len()
}

// DroppedMarkup returns how many comments or processing instructions inside
// word elements were discarded.
func (t *Transducer) DroppedMarkup() int {
	return t.droppedMarkup
}

// StartElement handles an element start event.
func (t *Transducer) StartElement(name string, attrs xml.Attributes) error {
	local := xml.LowerLocal(name)

	// Every element pushes a language so that every end can pop one.
	t.langs.Push(t.effectiveLanguage(attrs))
	depth := t.langs.Len()

	if local != "gap" {
		t.gapCount = 0
	}

	if strings.HasPrefix(local, SyntheticPrefix) {
		return t.startSynthetic(local)
	}
	if local == "w" || local == "pc" {
		return t.startWord(name, local, attrs, depth)
	}

	if err := t.flush(t.forcesSentenceEnd(local)); err != nil {
		return err
	}

	out := attrs.Clone()
	out.Delete(teiFormAttr)

	switch local {
	case "pb":
		t.startPage(out)
	case "gap":
		t.startGap(&out)
	case "div":
		divType := strings.ToLower(strings.TrimSpace(out.Value("type")))
		if divType == "" {
			divType = noDivType
		}
		t.divs.Push(divType)
	}

	switch {
	case t.sets.jump[local]:
		t.jumps.Push(jumpState{melder: t.melder.Snapshot(), isFirstWord: t.isFirstWord})
		t.melder.Reset()
		t.isFirstWord = true
	case t.sets.hard[local]:
		t.melder.Reset()
		t.isFirstWord = true
	}

	return t.sink.StartElement(name, out)
}

// CharData handles a run of text.
func (t *Transducer) CharData(text string) error {
	if t.pending != nil {
		if t.pending.open {
			t.pending.text.WriteString(text)
			return nil
		}
		if err := t.flush(false); err != nil {
			return err
		}
	}
	return t.sink.CharData(text)
}

// EndElement handles an element end event.
func (t *Transducer) EndElement(name string) error {
	depth := t.langs.Len()
	if _, ok := t.langs.Pop(); !ok {
		return aerrors.Wrapf(aerrors.ErrStackDesync, "end of %s with no open element", name)
	}
	local := xml.LowerLocal(name)

	if strings.HasPrefix(local, SyntheticPrefix) {
		return nil
	}

	if local == "w" || local == "pc" {
		if top, ok := t.wordDepths.Peek(); ok && top == depth {
			t.wordDepths.Pop()
			if t.pending != nil && t.pending.depth == depth {
				t.pending.open = false
			}
			// The word's end tag is written when the word is emitted.
			return nil
		}
	}

	if err := t.flush(t.forcesSentenceEnd(local)); err != nil {
		return err
	}

	poppedDiv := ""
	if local == "div" {
		v, ok := t.divs.Pop()
		if !ok {
			return aerrors.Wrapf(aerrors.ErrStackDesync, "end of %s with no open div", name)
		}
		poppedDiv = v
	}

	switch {
	case t.sets.jump[local]:
		if saved, ok := t.jumps.Pop(); ok {
			t.melder.Restore(saved.melder)
			t.isFirstWord = saved.isFirstWord
		}
	case t.sets.hard[local]:
		t.melder.Reset()
	}

	container := poppedDiv != "" && t.sets.containers[poppedDiv] && t.pager.enabled() && !t.pager.exhausted()
	if container && t.pager.open {
		if err := t.pager.end(t.lastPath); err != nil {
			return err
		}
	}
	if err := t.sink.EndElement(name); err != nil {
		return err
	}
	if container {
		return t.pager.start(t.lastPath)
	}
	return nil
}

// Markup passes comments and processing instructions through. Markup met
// inside an open word cannot be placed and is dropped.
func (t *Transducer) Markup(raw string) error {
	if t.pending != nil {
		if t.pending.open {
			t.droppedMarkup++
			return nil
		}
		if err := t.flush(false); err != nil {
			return err
		}
	}
	if t.markup == nil {
		return nil
	}
	return t.markup.Markup(raw)
}

// Close ends the document: the held word is written, an open pseudo-page
// is closed and the nesting stacks must be empty.
func (t *Transducer) Close() error {
	if err := t.flush(false); err != nil {
		return err
	}
	if t.pager.open {
		if err := t.pager.end(t.lastPath); err != nil {
			return err
		}
	}
	if n := t.langs.Len(); n != 0 {
		return aerrors.Wrapf(aerrors.ErrStackDesync, "document closed with %d open elements", n)
	}
	return nil
}

// effectiveLanguage returns the lowercased language of an element: its own
// xml:lang or lang, else the enclosing element's, else the default.
func (t *Transducer) effectiveLanguage(attrs xml.Attributes) string {
	for _, name := range []string{"xml:lang", "lang"} {
		if v, ok := attrs.Get(name); ok && strings.TrimSpace(v) != "" {
			return strings.ToLower(strings.TrimSpace(v))
		}
	}
	if top, ok := t.langs.Peek(); ok {
		return top
	}
	return strings.ToLower(t.cfg.DefaultLanguage)
}

// forcesSentenceEnd reports whether the start or end of element local ends
// the sentence of a word held before it.
func (t *Transducer) forcesSentenceEnd(local string) bool {
	switch {
	case local == "sp" || local == "speaker":
		return true
	case t.sets.hard[local]:
		return t.cfg.HardTagsEndSentence
	case t.sets.jump[local]:
		return t.cfg.JumpTagsEndSentence
	}
	return false
}

func (t *Transducer) startPage(attrs xml.Attributes) {
	t.page.number++
	t.page.wordInPage = 0
	t.page.previousFacs = t.page.facs
	t.page.facs = attrs.Value("facs")
	// Two page breaks without a facsimile reference also match.
	if t.page.number > 1 && t.page.facs == t.page.previousFacs {
		t.page.column++
	} else {
		t.page.column = 0
	}
}

// startGap gives an identifier to a gap that has none.
func (t *Transducer) startGap(attrs *xml.Attributes) {
	if attrs.Has(t.cfg.IDAttribute) || attrs.Has("id") {
		return
	}
	base := t.lastEmittedID
	if base == "" {
		base = t.ids.Format(t.position(0), 0)
	}
	attrs.Set(t.cfg.IDAttribute, base+"-gap"+strconv.Itoa(t.gapCount))
	t.gapCount++
}

func (t *Transducer) startSynthetic(local string) error {
	if local == syntheticNoBlank {
		if t.pending == nil {
			return nil
		}
		// Set before the flush so the held word is written without a blank.
		t.suppressBlank = true
		err := t.flush(false)
		t.suppressBlank = false
		return err
	}
	if err := t.flush(false); err != nil {
		return err
	}
	if local == syntheticBlank && t.cfg.OutputWhitespace {
		return t.writeBlank()
	}
	return nil
}

func (t *Transducer) position(ordinal int) Position {
	return Position{
		Ordinal:    ordinal,
		Page:       t.page.number,
		WordInPage: t.page.wordInPage,
		Column:     t.page.column,
		Facs:       t.page.facs,
	}
}

// writeBlank writes one blank and tells the melder.
func (t *Transducer) writeBlank() error {
	el := t.cfg.WhitespaceElement
	if el == "" {
		if err := t.sink.CharData(" "); err != nil {
			return err
		}
	} else {
		if err := t.sink.StartElement(el, nil); err != nil {
			return err
		}
		if err := t.sink.CharData(" "); err != nil {
			return err
		}
		if err := t.sink.EndElement(el); err != nil {
			return err
		}
	}
	t.melder.OutputBlank()
	return nil
}
