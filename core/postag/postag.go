// Package postag classifies part-of-speech tags into the coarse classes the
// annotator needs: numbers, symbols and punctuation.
package postag

import "strings"

// Classifier answers class questions about a tag set.
type Classifier struct {
	numbers     map[string]bool
	symbols     map[string]bool
	punctuation map[string]bool
}

// Sets lists the tags of each class.
type Sets struct {
	Numbers     []string `yaml:"numbers" toml:"numbers"`
	Symbols     []string `yaml:"symbols" toml:"symbols"`
	Punctuation []string `yaml:"punctuation" toml:"punctuation"`
}

// NUPOS returns the class sets of the NUPOS tag set.
func NUPOS() Sets {
	return Sets{
		Numbers:     []string{"crd", "ord", "fo", "crq", "ord-n"},
		Symbols:     []string{"sy", "zz"},
		Punctuation: []string{".", ",", ";", ":", "?", "!", "(", ")", "[", "]", "'", "\"", "-", "--", "—", "...", "…", "pc"},
	}
}

// New returns a classifier for the given sets. Matching is case-insensitive.
func New(sets Sets) *Classifier {
	return &Classifier{
		numbers:     toSet(sets.Numbers),
		symbols:     toSet(sets.Symbols),
		punctuation: toSet(sets.Punctuation),
	}
}

// Default returns a NUPOS classifier.
func Default() *Classifier {
	return New(NUPOS())
}

// IsNumberTag reports whether tag denotes a numeral.
func (c *Classifier) IsNumberTag(tag string) bool {
	return matches(c.numbers, tag)
}

// IsSymbolTag reports whether tag denotes a symbol.
func (c *Classifier) IsSymbolTag(tag string) bool {
	return matches(c.symbols, tag)
}

// IsPunctuationTag reports whether tag denotes punctuation.
func (c *Classifier) IsPunctuationTag(tag string) bool {
	return matches(c.punctuation, tag)
}

// matches checks the whole tag, then each part of a compound tag such as
// "crd|pn22".
func matches(set map[string]bool, tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return false
	}
	if set[tag] {
		return true
	}
	if strings.Contains(tag, "|") {
		for _, part := range strings.Split(tag, "|") {
			if set[part] {
				return true
			}
		}
	}
	return false
}

func toSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[strings.ToLower(t)] = true
	}
	return set
}
