// Package melder decides where blanks belong when word tokens are written
// back out as running text.
//
// The melder is consulted once per completed word with that word's spelling
// and answers whether a blank should follow it. State is a plain value so a
// caller can snapshot it on entering a digression (a note, a running head)
// and put it back on leaving.
package melder

// State is the melder's complete mutable state.
type State struct {
	// Previous is the spelling of the last word seen.
	Previous string

	// BlankWritten records that a blank was already written after Previous.
	BlankWritten bool

	// QuoteOpen tracks straight double quotes, which open and close alternately.
	QuoteOpen bool
}

// Melder is the default whitespace melder.
type Melder struct {
	state State

	// noBlankAfter lists spellings that bind to the following word.
	noBlankAfter map[string]bool

	// noBlankBefore lists spellings that bind to the preceding word.
	noBlankBefore map[string]bool
}

var (
	defaultNoBlankAfter  = []string{"(", "[", "{", "“", "‘", "¿", "¡", "«", "-", "—", "/"}
	defaultNoBlankBefore = []string{".", ",", ";", ":", "!", "?", ")", "]", "}", "”", "’", "»", "'s", "n't", "—", "-", "/", "%"}
)

// New returns a melder with English punctuation conventions.
func New() *Melder {
	return NewWithRules(defaultNoBlankAfter, defaultNoBlankBefore)
}

// NewWithRules returns a melder with explicit binding rules.
func NewWithRules(noBlankAfter, noBlankBefore []string) *Melder {
	m := &Melder{
		noBlankAfter:  make(map[string]bool, len(noBlankAfter)),
		noBlankBefore: make(map[string]bool, len(noBlankBefore)),
	}
	for _, s := range noBlankAfter {
		m.noBlankAfter[s] = true
	}
	for _, s := range noBlankBefore {
		m.noBlankBefore[s] = true
	}
	return m
}

// ShouldOutputBlank records spelling as the latest word and reports whether
// a blank should be written after it.
func (m *Melder) ShouldOutputBlank(spelling string, isFirstWord bool) bool {
	prev := m.state.Previous
	m.state.Previous = spelling
	m.state.BlankWritten = false

	if spelling == "" {
		return false
	}

	if spelling == `"` {
		m.state.QuoteOpen = !m.state.QuoteOpen
		// An opening quote binds forward, a closing one is followed by a blank.
		return !m.state.QuoteOpen
	}

	if m.noBlankAfter[spelling] {
		return false
	}

	// A sentence-initial closing mark after nothing stays glued.
	if isFirstWord && prev == "" && m.noBlankBefore[spelling] {
		return false
	}

	return true
}

// OutputBlank tells the melder a blank has been written.
func (m *Melder) OutputBlank() {
	m.state.BlankWritten = true
}

// BlankWritten reports whether a blank has been written since the last word.
func (m *Melder) BlankWritten() bool {
	return m.state.BlankWritten
}

// Reset clears all state, as at the start of a paragraph.
func (m *Melder) Reset() {
	m.state = State{}
}

// Snapshot returns a copy of the current state.
func (m *Melder) Snapshot() any {
	return m.state
}

// Restore replaces the current state with one taken by Snapshot.
// Values of any other type are ignored.
func (m *Melder) Restore(state any) {
	if s, ok := state.(State); ok {
		m.state = s
	}
}
