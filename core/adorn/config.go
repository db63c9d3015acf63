package adorn

import (
	"strings"

	aerrors "github.com/FocuswithJustin/adorner/core/errors"
)

// Scheme selects how word identifiers are numbered.
type Scheme int

const (
	// SchemeReadingOrder numbers words by running ordinal: base-00000010.
	SchemeReadingOrder Scheme = iota

	// SchemePageBlock numbers words within the page: base-0003-00010.
	SchemePageBlock

	// SchemePageBlockAttributes labels words by facsimile, column and
	// position on the page: base-p003-a-00010.
	SchemePageBlockAttributes
)

var schemeNames = map[Scheme]string{
	SchemeReadingOrder:        "reading-order",
	SchemePageBlock:           "page-block",
	SchemePageBlockAttributes: "page-block-attributes",
}

func (s Scheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseScheme maps a scheme name to a Scheme.
func ParseScheme(name string) (Scheme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range schemeNames {
		if n == name {
			return s, nil
		}
	}
	return 0, &aerrors.ValidationError{Field: "scheme", Value: name, Message: "unknown numbering scheme"}
}

// SentenceBoundary selects how sentence ends are marked in the output.
type SentenceBoundary int

const (
	// BoundaryAttribute marks sentence ends with eos="1" on the word.
	BoundaryAttribute SentenceBoundary = iota

	// BoundaryElement marks sentence ends with an empty milestone element
	// following the word.
	BoundaryElement
)

// PruneMode selects which redundant word attributes are removed.
type PruneMode struct {
	// RedundantOnly removes every attribute derivable from the others.
	RedundantOnly bool

	// Token removes spe, lem, pos, reg and tok when they repeat their source.
	Token bool

	// Part removes part="N".
	Part bool

	// EOS removes eos when false.
	EOS bool
}

// Enabled reports whether any pruning is requested.
func (m PruneMode) Enabled() bool {
	return m.RedundantOnly || m.Token || m.Part || m.EOS
}

// Config controls one annotation pass.
type Config struct {
	// BaseName prefixes every identifier, usually the document file name
	// without extension.
	BaseName string

	// IDAttribute names the word identifier attribute. Input words without
	// it fall back to a plain "id" attribute.
	IDAttribute string

	// Scheme selects the identifier numbering scheme.
	Scheme Scheme

	// Spacing multiplies word numbers so later insertions have room.
	Spacing int

	// MinIDWidth is the smallest zero-padded width of any numeric component.
	MinIDWidth int

	// LabelAttribute, when set, receives the scheme part of the identifier
	// (the identifier without its base name).
	LabelAttribute string

	// OrdinalAttribute, when set, receives the running word ordinal.
	OrdinalAttribute string

	// DefaultLanguage is the document's main language.
	DefaultLanguage string

	// LanguageTags maps a language to the part of speech given to words in it.
	LanguageTags map[string]string

	// ForeignTag is the part of speech for a language missing from LanguageTags.
	ForeignTag string

	// SpecialDivTypes lists div types whose words are tagged UnknownTag.
	SpecialDivTypes []string

	// UnknownTag is the part of speech for words in special divs.
	UnknownTag string

	// HardTags end the current stretch of running text (paragraphs, heads).
	HardTags []string

	// JumpTags interrupt running text that resumes after them (notes).
	JumpTags []string

	// SoftTags are transparent to running text (highlighting).
	SoftTags []string

	// HardTagsEndSentence forces a sentence end before a hard tag.
	HardTagsEndSentence bool

	// JumpTagsEndSentence forces a sentence end before a jump tag.
	JumpTagsEndSentence bool

	// Prune selects redundant attribute removal.
	Prune PruneMode

	// SentenceBoundary selects attribute or element sentence-end marking.
	SentenceBoundary SentenceBoundary

	// SentenceMarkerTags lists parts of speech that mark a sentence end by
	// themselves; no boundary element is added after such words.
	SentenceMarkerTags []string

	// OutputWhitespace writes blanks between words as the melder decides.
	OutputWhitespace bool

	// WhitespaceElement wraps written blanks, e.g. "c". Empty writes bare text.
	WhitespaceElement string

	// PseudoPageSize is the number of words per pseudo-page; 0 disables them.
	PseudoPageSize int

	// PseudoPageContainers lists div types whose end always ends a pseudo-page.
	PseudoPageContainers []string
}

// DefaultConfig returns the default annotation configuration.
func DefaultConfig() Config {
	return Config{
		IDAttribute:     "xml:id",
		Scheme:          SchemeReadingOrder,
		Spacing:         10,
		DefaultLanguage: "en",
		LanguageTags: map[string]string{
			"la":  "fw-la",
			"fr":  "fw-fr",
			"el":  "fw-gr",
			"grc": "fw-gr",
			"de":  "fw-ge",
			"it":  "fw-it",
			"es":  "fw-es",
			"he":  "fw-he",
		},
		ForeignTag: "fw",
		UnknownTag: "zz",
		HardTags: []string{
			"div", "p", "head", "lg", "l", "sp", "speaker", "stage", "list", "item",
			"table", "row", "cell", "titlepage", "argument", "epigraph", "opener",
			"closer", "trailer", "signed", "byline", "dateline", "salute",
		},
		JumpTags:          []string{"note", "fw", "figure", "figdesc"},
		SoftTags:          []string{"hi", "foreign", "name", "persname", "placename", "q", "seg", "choice", "orig", "sic", "corr", "abbr", "expan"},
		WhitespaceElement: "c",
	}
}

// Validate checks the configuration for values the transducer cannot use.
func (c Config) Validate() error {
	if c.IDAttribute == "" {
		return aerrors.NewValidation("id_attribute", "must not be empty")
	}
	if _, ok := schemeNames[c.Scheme]; !ok {
		return aerrors.NewValidation("scheme", "unknown numbering scheme")
	}
	if c.Spacing < 1 {
		return aerrors.NewValidation("spacing", "must be at least 1")
	}
	if c.MinIDWidth < 0 {
		return aerrors.NewValidation("min_id_width", "must not be negative")
	}
	if c.PseudoPageSize < 0 {
		return aerrors.NewValidation("pseudo_page_size", "must not be negative")
	}
	if c.SentenceBoundary != BoundaryAttribute && c.SentenceBoundary != BoundaryElement {
		return aerrors.NewValidation("sentence_boundary", "must be attribute or element")
	}
	return nil
}

// tagSets is the lowercase lookup form of the configured name lists.
type tagSets struct {
	hard, jump, soft  map[string]bool
	specialDivs       map[string]bool
	containers        map[string]bool
	sentenceMarkers   map[string]bool
	languageTags      map[string]string
	defaultLangPrefix string
}

func newTagSets(c Config) tagSets {
	langs := make(map[string]string, len(c.LanguageTags))
	for k, v := range c.LanguageTags {
		langs[strings.ToLower(k)] = v
	}
	return tagSets{
		hard:              lowerSet(c.HardTags),
		jump:              lowerSet(c.JumpTags),
		soft:              lowerSet(c.SoftTags),
		specialDivs:       lowerSet(c.SpecialDivTypes),
		containers:        lowerSet(c.PseudoPageContainers),
		sentenceMarkers:   lowerSet(c.SentenceMarkerTags),
		languageTags:      langs,
		defaultLangPrefix: primarySubtag(c.DefaultLanguage),
	}
}

func lowerSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[strings.ToLower(strings.TrimSpace(n))] = true
	}
	return set
}

// primarySubtag returns "en" for "en-GB".
func primarySubtag(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		return lang[:i]
	}
	return lang
}
