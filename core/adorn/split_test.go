package adorn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCountsDown(t *testing.T) {
	table := NewSplitTable(map[int]int{3: 3, 5: 2, 7: 1})

	assert.Equal(t, Classification{Part: PartNone, StartsWord: true}, table.Classify(1))

	assert.Equal(t, Classification{Part: PartInitial, Number: 3, StartsWord: true}, table.Classify(3))
	assert.Equal(t, Classification{Part: PartMiddle, Number: 2}, table.Classify(3))
	assert.Equal(t, Classification{Part: PartFinal, Number: 1}, table.Classify(3))

	assert.Equal(t, Classification{Part: PartInitial, Number: 2, StartsWord: true}, table.Classify(5))
	assert.Equal(t, Classification{Part: PartFinal, Number: 1}, table.Classify(5))

	// A single-part entry is an ordinary word.
	assert.Equal(t, PartNone, table.Classify(7).Part)
}

func TestSplitTableKeepsOriginalCounts(t *testing.T) {
	table := NewSplitTable(map[int]int{2: 2})
	table.Classify(2)

	n, ok := table.Parts(2)
	require.True(t, ok)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, table.Remaining(2))
	assert.Equal(t, 1, table.Len())
}

func TestNilSplitTable(t *testing.T) {
	var table *SplitTable

	_, ok := table.Parts(1)
	assert.False(t, ok)
	assert.Zero(t, table.Remaining(1))
	assert.Zero(t, table.Len())
	assert.Equal(t, PartNone, table.Classify(1).Part)
}

// Every classification is exactly one of the four part codes, and only the
// codes that complete a word report IsLast.
func TestPartPartition(t *testing.T) {
	table := NewSplitTable(map[int]int{1: 4, 2: 2})
	seen := map[PartCode]int{}
	for _, ord := range []int{1, 1, 1, 1, 2, 2, 3} {
		c := table.Classify(ord)
		seen[c.Part]++
		switch c.Part {
		case PartNone, PartFinal:
			assert.True(t, c.Part.IsLast())
		case PartInitial, PartMiddle:
			assert.False(t, c.Part.IsLast())
		default:
			t.Fatalf("unexpected part %q", c.Part)
		}
	}
	assert.Equal(t, map[PartCode]int{PartNone: 1, PartInitial: 2, PartMiddle: 2, PartFinal: 2}, seen)
}
