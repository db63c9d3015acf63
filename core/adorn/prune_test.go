package adorn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FocuswithJustin/adorner/core/xml"
)

func fullAttrs() xml.Attributes {
	return xml.Attributes{
		{Name: "xml:id", Value: "doc-00010"},
		{Name: "tok", Value: "cat"},
		{Name: "spe", Value: "cat"},
		{Name: "pos", Value: "n1"},
		{Name: "lem", Value: "cat"},
		{Name: "reg", Value: "cat"},
		{Name: "eos", Value: "0"},
		{Name: "part", Value: "N"},
	}
}

func names(attrs xml.Attributes) []string {
	out := make([]string, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, a.Name)
	}
	return out
}

func TestPruneModes(t *testing.T) {
	tests := []struct {
		name string
		mode PruneMode
		want []string
	}{
		{"disabled", PruneMode{}, []string{"xml:id", "tok", "spe", "pos", "lem", "reg", "eos", "part"}},
		{"redundant only", PruneMode{RedundantOnly: true}, []string{"xml:id", "pos"}},
		{"token", PruneMode{Token: true}, []string{"xml:id", "pos", "eos", "part"}},
		{"part", PruneMode{Part: true}, []string{"xml:id", "tok", "spe", "pos", "lem", "reg", "eos"}},
		{"eos", PruneMode{EOS: true}, []string{"xml:id", "tok", "spe", "pos", "lem", "reg", "part"}},
		{"part and eos", PruneMode{Part: true, EOS: true}, []string{"xml:id", "tok", "spe", "pos", "lem", "reg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Prune(fullAttrs(), "cat", tt.mode)))
		})
	}
}

func TestPruneKeepsDistinctValues(t *testing.T) {
	attrs := xml.Attributes{
		{Name: "tok", Value: "loued"},
		{Name: "spe", Value: "loved"},
		{Name: "lem", Value: "love"},
		{Name: "pos", Value: "vvd"},
		{Name: "reg", Value: "loved"},
		{Name: "eos", Value: "1"},
		{Name: "part", Value: "I"},
	}

	got := Prune(attrs, "loued", PruneMode{RedundantOnly: true})
	assert.Equal(t, []string{"spe", "lem", "pos", "eos", "part"}, names(got))
}

func TestPruneDoesNotModifyInput(t *testing.T) {
	attrs := fullAttrs()
	Prune(attrs, "cat", PruneMode{RedundantOnly: true})
	assert.Equal(t, fullAttrs(), attrs)
}

func TestPruneIdempotent(t *testing.T) {
	inputs := []struct {
		attrs xml.Attributes
		text  string
	}{
		{fullAttrs(), "cat"},
		{xml.Attributes{{Name: "tok", Value: "Cat"}, {Name: "spe", Value: "Cat"}, {Name: "lem", Value: "cat"}}, "cat"},
		{xml.Attributes{{Name: "spe", Value: "colour"}, {Name: "reg", Value: "colour"}, {Name: "eos", Value: "true"}}, "colour"},
		{xml.Attributes{{Name: "tok", Value: "a"}, {Name: "part", Value: "F"}}, "b"},
	}
	modes := []PruneMode{
		{RedundantOnly: true},
		{Token: true},
		{Part: true},
		{EOS: true},
		{Token: true, Part: true, EOS: true},
	}

	for _, in := range inputs {
		for _, mode := range modes {
			once := Prune(in.attrs, in.text, mode)
			twice := Prune(once, in.text, mode)
			assert.Equal(t, once, twice, "mode %+v on %v", mode, in.attrs)
		}
	}
}

func TestTruthy(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", " yes "} {
		assert.True(t, truthy(v), v)
	}
	for _, v := range []string{"0", "", "false", "no"} {
		assert.False(t, truthy(v), v)
	}
}
