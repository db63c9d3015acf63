package adorn

import (
	"strconv"
	"strings"

	aerrors "github.com/FocuswithJustin/adorner/core/errors"
	"github.com/FocuswithJustin/adorner/core/xml"
)

// Reserved characters that upstream stages leave in word text.
const (
	// SoftHyphenPlaceholder stands for a hyphen that must survive tokenizing.
	SoftHyphenPlaceholder = '\uE000'

	// SuperscriptMarker separates a superscript from its base when the two
	// would otherwise read as one word.
	SuperscriptMarker = '\uE001'
)

const (
	sentenceUnit = "sentence"
	eosTrue      = "1"
	eosFalse     = "0"
)

// pendingWord is the single word element held back until its text is known.
type pendingWord struct {
	name    string
	attrs   xml.Attributes
	text    strings.Builder
	open    bool
	depth   int
	idAttr  string
	id      string
	label   string
	ordinal int
	part    PartCode
	lang    string
	divType string
}

// startWord numbers a w or pc element and holds it as the pending word.
func (t *Transducer) startWord(name, local string, attrs xml.Attributes, depth int) error {
	t.wordDepths.Push(depth)

	idAttr := t.cfg.IDAttribute
	raw, ok := attrs.Get(idAttr)
	if !ok {
		if v, found := attrs.Get("id"); found {
			idAttr, raw, ok = "id", v, true
		}
	}
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" || !strings.ContainsAny(raw, "0123456789") {
		return &aerrors.WordIDError{Element: local, Attr: t.cfg.IDAttribute, Value: raw, Ordinal: t.ordinal}
	}

	if !t.haveRawID || raw != t.lastRawID {
		t.ordinal++
		t.lastRawID = raw
		t.haveRawID = true
	}

	// Classify relies on the counting pass; without it every element of a
	// split word starts a new word.
	class := t.split.Classify(t.ordinal)
	if class.StartsWord {
		t.page.wordInPage++
	}
	pos := t.position(t.ordinal)
	id := t.ids.Format(pos, class.Number)

	if t.pending != nil {
		if t.pending.id == id {
			// Same identifier again: the element continues the held word.
			t.pending.open = true
			t.pending.depth = depth
			return nil
		}
		if err := t.flush(false); err != nil {
			return err
		}
	}

	divType, _ := t.divs.Peek()
	lang, _ := t.langs.Peek()

	out := attrs.Clone()
	out.Delete(teiFormAttr)

	return t.hold(&pendingWord{
		name:    name,
		attrs:   out,
		open:    true,
		depth:   depth,
		idAttr:  idAttr,
		id:      id,
		label:   t.ids.Label(pos),
		ordinal: t.ordinal,
		part:    class.Part,
		lang:    lang,
		divType: divType,
	})
}

// hold stores w in the pending slot, which must be empty.
func (t *Transducer) hold(w *pendingWord) error {
	if t.pending != nil {
		return aerrors.Wrapf(aerrors.ErrPendingOccupied, "holding %s while %s is pending", w.id, t.pending.id)
	}
	t.pending = w
	return nil
}

// flush emits the pending word, if any, and empties the slot.
func (t *Transducer) flush(forceEOS bool) error {
	if t.pending == nil {
		return nil
	}
	w := t.pending
	t.pending = nil
	return t.emit(w, forceEOS)
}

// emit writes one word element with its milestones, markers and blank.
func (t *Transducer) emit(w *pendingWord, forceEOS bool) error {
	last := w.part.IsLast()
	path := w.attrs.Value(attrPath)
	if path != "" {
		t.lastPath = path
	}

	text := normalizeMarkers(w.text.String())
	attrs := t.resolve(w, text)
	spelling := valueOr(attrs, attrSpe, valueOr(attrs, attrTok, text))

	if t.pager.enabled() && last && !t.pager.open && !t.pager.exhausted() {
		if err := t.pager.start(path); err != nil {
			return err
		}
	}

	eos := forceEOS || truthy(attrs.Value(attrEOS))
	if eos {
		attrs.Set(attrEOS, eosTrue)
	} else {
		attrs.Set(attrEOS, eosFalse)
	}

	attrs = Prune(attrs, text, t.cfg.Prune)

	marker := false
	if t.cfg.SentenceBoundary == BoundaryElement && eos {
		attrs.Delete(attrEOS)
		pos := valueOr(attrs, attrPos, valueOr(attrs, attrSpe, valueOr(attrs, attrTok, text)))
		marker = !t.sets.sentenceMarkers[strings.ToLower(pos)]
	}

	if err := t.sink.StartElement(w.name, attrs); err != nil {
		return err
	}
	if text != "" {
		if err := t.sink.CharData(text); err != nil {
			return err
		}
	}
	if err := t.sink.EndElement(w.name); err != nil {
		return err
	}

	if marker {
		markerAttrs := xml.Attributes{
			{Name: "unit", Value: sentenceUnit},
			{Name: w.idAttr, Value: w.id + "-eos"},
		}
		if err := t.sink.StartElement(milestoneElement, markerAttrs); err != nil {
			return err
		}
		if err := t.sink.EndElement(milestoneElement); err != nil {
			return err
		}
	}

	t.records = append(t.records, OutputWordRecord{ID: w.id, Ordinal: w.ordinal, Part: w.part, EOS: eos})
	t.lastEmittedID = w.id

	if !last {
		return nil
	}

	if t.cfg.OutputWhitespace {
		suppressed := t.suppressBlank
		t.suppressBlank = false
		if t.melder.ShouldOutputBlank(spelling, t.isFirstWord) && !suppressed {
			if err := t.writeBlank(); err != nil {
				return err
			}
		}
	}
	t.isFirstWord = eos

	if t.pager.enabled() {
		t.pager.countWord()
		return t.pager.closeIfDone(path)
	}
	return nil
}

// resolve fills in missing linguistic attributes, applies language and div
// overrides and sets the revised identifier attributes.
func (t *Transducer) resolve(w *pendingWord, text string) xml.Attributes {
	attrs := w.attrs

	tok := valueOr(attrs, attrTok, text)
	if !attrs.Has(attrTok) {
		attrs.Set(attrTok, tok)
	}
	for _, name := range []string{attrSpe, attrPos, attrLem, attrReg} {
		if !attrs.Has(name) {
			attrs.Set(name, tok)
		}
	}
	if !attrs.Has(attrEOS) {
		attrs.Set(attrEOS, eosFalse)
	}

	pos := attrs.Value(attrPos)
	excluded := t.tags.IsNumberTag(pos) || t.tags.IsSymbolTag(pos) || t.tags.IsPunctuationTag(pos)
	if !excluded {
		spe := attrs.Value(attrSpe)
		if !t.isDefaultLanguage(w.lang) {
			attrs.Set(attrPos, t.languageTag(w.lang))
			attrs.Set(attrLem, spe)
		}
		if t.sets.specialDivs[w.divType] {
			attrs.Set(attrPos, t.cfg.UnknownTag)
			attrs.Set(attrLem, spe)
		}
	}

	attrs.Set(w.idAttr, w.id)
	attrs.Set(attrPart, string(w.part))
	if t.cfg.OrdinalAttribute != "" {
		attrs.Set(t.cfg.OrdinalAttribute, strconv.Itoa(w.ordinal))
	}
	if t.cfg.LabelAttribute != "" {
		attrs.Set(t.cfg.LabelAttribute, w.label)
	}
	return attrs
}

func (t *Transducer) isDefaultLanguage(lang string) bool {
	return lang == "" || primarySubtag(lang) == t.sets.defaultLangPrefix
}

// languageTag returns the part of speech for words in lang.
func (t *Transducer) languageTag(lang string) string {
	if tag, ok := t.sets.languageTags[lang]; ok {
		return tag
	}
	if tag, ok := t.sets.languageTags[primarySubtag(lang)]; ok {
		return tag
	}
	return t.cfg.ForeignTag
}

// normalizeMarkers restores soft-hyphen placeholders and strips
// superscript markers.
func normalizeMarkers(text string) string {
	if !strings.ContainsRune(text, SoftHyphenPlaceholder) && !strings.ContainsRune(text, SuperscriptMarker) {
		return text
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case SoftHyphenPlaceholder:
			return '-'
		case SuperscriptMarker:
			return -1
		}
		return r
	}, text)
}
