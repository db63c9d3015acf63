// Package sentences numbers annotated words by sentence.
//
// It works from the ordered word records an annotation pass produces, so
// it never needs to see the XML again. A sentence ends after a word whose
// record carries EOS; the parts of a split word share one word number.
package sentences

import "github.com/FocuswithJustin/adorner/core/adorn"

// Numbered is a word record with its sentence position.
type Numbered struct {
	adorn.OutputWordRecord

	// Sentence is the 1-based sentence number within the document.
	Sentence int `json:"sentence"`

	// Word is the 1-based word number within the sentence.
	Word int `json:"word"`
}

// Number assigns sentence and word numbers to records in order.
func Number(records []adorn.OutputWordRecord) []Numbered {
	out := make([]Numbered, 0, len(records))

	sentence, word := 1, 0
	lastOrdinal := -1
	for _, r := range records {
		if r.Ordinal != lastOrdinal {
			word++
			lastOrdinal = r.Ordinal
		}
		out = append(out, Numbered{OutputWordRecord: r, Sentence: sentence, Word: word})

		// A sentence cannot end in the middle of a split word.
		if r.EOS && r.Part.IsLast() {
			sentence++
			word = 0
		}
	}
	return out
}

// Summary returns the number of sentences and words in numbered records.
// A trailing sentence without an end mark still counts.
func Summary(numbered []Numbered) (sentences, words int) {
	lastOrdinal := -1
	for _, n := range numbered {
		sentences = max(sentences, n.Sentence)
		if n.Ordinal != lastOrdinal {
			words++
			lastOrdinal = n.Ordinal
		}
	}
	return sentences, words
}

// Group splits numbered records into sentences.
func Group(numbered []Numbered) [][]Numbered {
	var groups [][]Numbered
	for i, n := range numbered {
		if i == 0 || n.Sentence != numbered[i-1].Sentence {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], n)
	}
	return groups
}
