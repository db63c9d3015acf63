package adorn

// OutputWordRecord describes one emitted word element. The ordered list of
// records is what sentence and word numbering works from.
type OutputWordRecord struct {
	ID      string   `json:"id"`
	Ordinal int      `json:"ordinal"`
	Part    PartCode `json:"part"`
	EOS     bool     `json:"eos"`
}

// Melder decides where blanks go between reconstructed words. Snapshot and
// Restore exchange an opaque copy of the melder's state.
type Melder interface {
	ShouldOutputBlank(spelling string, isFirstWord bool) bool
	OutputBlank()
	Reset()
	Snapshot() any
	Restore(state any)
}

// TagClassifier answers coarse questions about part-of-speech tags.
type TagClassifier interface {
	IsNumberTag(tag string) bool
	IsSymbolTag(tag string) bool
	IsPunctuationTag(tag string) bool
}

// Collaborators are the objects a Transducer consults. Nil fields get
// defaults: the standard melder, the NUPOS classifier, an empty split table
// and unknown maxima.
type Collaborators struct {
	Melder Melder
	Tags   TagClassifier

	// Split holds the part counts of split words. It is consumed by the pass.
	// It must come from the counting pass over the same document: with an
	// empty table every raw identifier is a whole word, so the parts of a
	// split word are counted as separate words on page-block schemes.
	Split *SplitTable

	// Maxima are the document-wide counts used for identifier widths and
	// the pseudo-page word quota.
	Maxima *Maxima
}
