package postag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultClassifier(t *testing.T) {
	c := Default()

	tests := []struct {
		tag                string
		number, sym, punct bool
	}{
		{"crd", true, false, false},
		{"CRD", true, false, false},
		{"n1", false, false, false},
		{"sy", false, true, false},
		{".", false, false, true},
		{"crd|pn22", true, false, false},
		{"", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.number, c.IsNumberTag(tt.tag), "number")
			assert.Equal(t, tt.sym, c.IsSymbolTag(tt.tag), "symbol")
			assert.Equal(t, tt.punct, c.IsPunctuationTag(tt.tag), "punctuation")
		})
	}
}

func TestCustomSets(t *testing.T) {
	c := New(Sets{Numbers: []string{"NUM"}, Punctuation: []string{"PUNCT"}})

	assert.True(t, c.IsNumberTag("num"))
	assert.True(t, c.IsPunctuationTag("PUNCT"))
	assert.False(t, c.IsSymbolTag("sy"))
}
