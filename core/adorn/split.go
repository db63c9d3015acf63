package adorn

// PartCode classifies a word element's place in a split word.
type PartCode string

const (
	// PartNone is a complete word.
	PartNone PartCode = "N"
	// PartInitial is the first part of a split word.
	PartInitial PartCode = "I"
	// PartMiddle is an inner part of a split word.
	PartMiddle PartCode = "M"
	// PartFinal is the last part of a split word.
	PartFinal PartCode = "F"
)

// IsLast reports whether the part completes a word.
func (p PartCode) IsLast() bool {
	return p == PartNone || p == PartFinal
}

// SplitTable holds the part counts of split words keyed by word ordinal.
// The original counts never change; the countdown copy is consumed as the
// parts are classified.
type SplitTable struct {
	parts     map[int]int
	remaining map[int]int
}

// NewSplitTable builds a table from ordinal → part count. Entries with
// fewer than two parts are ignored.
func NewSplitTable(parts map[int]int) *SplitTable {
	t := &SplitTable{
		parts:     make(map[int]int, len(parts)),
		remaining: make(map[int]int, len(parts)),
	}
	for ord, n := range parts {
		if n > 1 {
			t.parts[ord] = n
			t.remaining[ord] = n
		}
	}
	return t
}

// Parts returns the original part count for ordinal.
func (t *SplitTable) Parts(ordinal int) (int, bool) {
	if t == nil {
		return 0, false
	}
	n, ok := t.parts[ordinal]
	return n, ok
}

// Remaining returns how many parts of ordinal are still to be classified.
func (t *SplitTable) Remaining(ordinal int) int {
	if t == nil {
		return 0
	}
	return t.remaining[ordinal]
}

// Len returns the number of split words in the table.
func (t *SplitTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.parts)
}

// Classification is the result of classifying one word element.
type Classification struct {
	Part PartCode

	// Number is the identifier suffix: the parts still outstanding,
	// including this one. It is 1 on the final part and 0 for complete words.
	Number int

	// StartsWord is set for complete words and first parts, the elements
	// that advance the word-in-page counter.
	StartsWord bool
}

// Classify classifies the next element of ordinal and consumes one part
// from the countdown.
func (t *SplitTable) Classify(ordinal int) Classification {
	original, ok := t.Parts(ordinal)
	if !ok {
		return Classification{Part: PartNone, StartsWord: true}
	}

	remaining := t.remaining[ordinal]
	c := Classification{Number: remaining}
	switch {
	case remaining == original:
		c.Part = PartInitial
		c.StartsWord = true
	case remaining <= 1:
		c.Part = PartFinal
	default:
		c.Part = PartMiddle
	}
	t.remaining[ordinal] = remaining - 1
	return c
}
