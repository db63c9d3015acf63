package encoding

import "testing"

func TestEscapeXMLText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"a & b", "a &amp; b"},
		{"<w>", "&lt;w&gt;"},
		{`say "hi"`, `say "hi"`},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := EscapeXMLText(tt.input); got != tt.want {
				t.Errorf("EscapeXMLText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeXMLAttr(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"cat", "cat"},
		{`"quoted"`, "&quot;quoted&quot;"},
		{"a&b<c>", "a&amp;b&lt;c&gt;"},
		{"line\nbreak", "line&#xA;break"},
		{"tab\there", "tab&#x9;here"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := EscapeXMLAttr(tt.input); got != tt.want {
				t.Errorf("EscapeXMLAttr(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
