package sentences

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FocuswithJustin/adorner/core/adorn"
)

func rec(id string, ordinal int, part adorn.PartCode, eos bool) adorn.OutputWordRecord {
	return adorn.OutputWordRecord{ID: id, Ordinal: ordinal, Part: part, EOS: eos}
}

func TestNumber(t *testing.T) {
	records := []adorn.OutputWordRecord{
		rec("d-10", 1, adorn.PartNone, false),
		rec("d-20.2", 2, adorn.PartInitial, false),
		rec("d-20.1", 2, adorn.PartFinal, false),
		rec("d-30", 3, adorn.PartNone, true),
		rec("d-40", 4, adorn.PartNone, false),
		rec("d-50", 5, adorn.PartNone, true),
	}

	got := Number(records)
	require.Len(t, got, len(records))

	type pos struct{ sentence, word int }
	want := []pos{{1, 1}, {1, 2}, {1, 2}, {1, 3}, {2, 1}, {2, 2}}
	for i, w := range want {
		assert.Equal(t, w.sentence, got[i].Sentence, "record %s", got[i].ID)
		assert.Equal(t, w.word, got[i].Word, "record %s", got[i].ID)
	}

	sentences, words := Summary(got)
	assert.Equal(t, 2, sentences)
	assert.Equal(t, 5, words)
}

func TestNumberIgnoresEOSInsideSplitWord(t *testing.T) {
	records := []adorn.OutputWordRecord{
		rec("d-10.2", 1, adorn.PartInitial, true),
		rec("d-10.1", 1, adorn.PartFinal, false),
		rec("d-20", 2, adorn.PartNone, false),
	}

	got := Number(records)
	for _, n := range got {
		assert.Equal(t, 1, n.Sentence)
	}
}

func TestNumberEmpty(t *testing.T) {
	got := Number(nil)
	assert.Empty(t, got)

	sentences, words := Summary(got)
	assert.Zero(t, sentences)
	assert.Zero(t, words)
	assert.Empty(t, Group(got))
}

func TestGroup(t *testing.T) {
	got := Group(Number([]adorn.OutputWordRecord{
		rec("d-10", 1, adorn.PartNone, true),
		rec("d-20", 2, adorn.PartNone, false),
		rec("d-30", 3, adorn.PartNone, false),
	}))

	require.Len(t, got, 2)
	assert.Len(t, got[0], 1)
	assert.Len(t, got[1], 2)
	assert.Equal(t, "d-30", got[1][1].ID)
}
