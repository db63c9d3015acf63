package melder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldOutputBlank(t *testing.T) {
	tests := []struct {
		name     string
		spelling string
		first    bool
		want     bool
	}{
		{"plain word", "cat", false, true},
		{"opening paren", "(", false, false},
		{"empty", "", false, false},
		{"em dash", "—", false, false},
		{"first word period", ".", true, false},
		{"period mid sentence", ".", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			assert.Equal(t, tt.want, m.ShouldOutputBlank(tt.spelling, tt.first))
		})
	}
}

func TestStraightQuotesAlternate(t *testing.T) {
	m := New()

	assert.False(t, m.ShouldOutputBlank(`"`, false), "opening quote binds forward")
	assert.True(t, m.ShouldOutputBlank("hello", false))
	assert.True(t, m.ShouldOutputBlank(`"`, false), "closing quote takes a blank")
}

func TestSnapshotRestore(t *testing.T) {
	m := New()
	m.ShouldOutputBlank(`"`, false)
	m.OutputBlank()
	saved := m.Snapshot()

	m.Reset()
	assert.Equal(t, State{}, m.Snapshot())

	m.Restore(saved)
	assert.Equal(t, State{Previous: `"`, BlankWritten: true, QuoteOpen: true}, m.Snapshot())

	// Foreign values leave the state alone.
	m.Restore("nonsense")
	assert.True(t, m.BlankWritten())
}

func TestCustomRules(t *testing.T) {
	m := NewWithRules([]string{"«"}, []string{"»"})
	assert.False(t, m.ShouldOutputBlank("«", false))
	assert.True(t, m.ShouldOutputBlank("(", false))
}
