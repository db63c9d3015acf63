package adorn

import (
	"strconv"
	"strings"
)

// Maxima are document-wide counts from a prior counting pass.
type Maxima struct {
	// Ordinal is the highest word ordinal.
	Ordinal int `json:"ordinal"`

	// Page is the number of page breaks.
	Page int `json:"page"`

	// WordsInPage is the largest number of words on any one page.
	WordsInPage int `json:"words_in_page"`

	// Words is the number of complete words, counting a split word once.
	Words int `json:"words"`
}

// Widths are the zero-padded widths of the numeric identifier components.
type Widths struct {
	Ordinal    int
	Page       int
	WordInPage int
}

// ComputeWidths derives component widths from document maxima. Word
// components are scaled by spacing first; minWidth floors every width.
func ComputeWidths(m Maxima, spacing, minWidth int) Widths {
	if spacing < 1 {
		spacing = 1
	}
	return Widths{
		Ordinal:    max(digits(m.Ordinal*spacing), minWidth),
		Page:       max(digits(m.Page), minWidth),
		WordInPage: max(digits(m.WordsInPage*spacing), minWidth),
	}
}

func digits(n int) int {
	if n <= 0 {
		return 1
	}
	return len(strconv.Itoa(n))
}

// Position is where a word sits, in every coordinate a scheme may use.
type Position struct {
	Ordinal    int
	Page       int
	WordInPage int
	Column     int
	Facs       string
}

// Formatter renders word identifiers for one document.
type Formatter struct {
	base    string
	scheme  Scheme
	spacing int
	widths  Widths
}

// NewFormatter returns a formatter for the given scheme and widths.
func NewFormatter(base string, scheme Scheme, spacing int, widths Widths) *Formatter {
	if spacing < 1 {
		spacing = 1
	}
	return &Formatter{base: base, scheme: scheme, spacing: spacing, widths: widths}
}

// Format returns the identifier for pos. A part greater than zero appends
// the split-word part suffix.
func (f *Formatter) Format(pos Position, part int) string {
	label := f.Label(pos)
	var sb strings.Builder
	if f.base != "" {
		sb.WriteString(f.base)
		sb.WriteByte('-')
	}
	sb.WriteString(label)
	if part > 0 {
		sb.WriteByte('.')
		sb.WriteString(strconv.Itoa(part))
	}
	return sb.String()
}

// Label returns the scheme-specific part of the identifier.
func (f *Formatter) Label(pos Position) string {
	switch f.scheme {
	case SchemePageBlock:
		return zeroPad(pos.Page, f.widths.Page) + "-" + zeroPad(pos.WordInPage*f.spacing, f.widths.WordInPage)
	case SchemePageBlockAttributes:
		var sb strings.Builder
		if facs := sanitizeFacs(pos.Facs); facs != "" {
			sb.WriteString(facs)
			sb.WriteByte('-')
		}
		sb.WriteString(columnLetter(pos.Column))
		sb.WriteByte('-')
		sb.WriteString(zeroPad(pos.WordInPage*f.spacing, f.widths.WordInPage))
		return sb.String()
	default:
		return zeroPad(pos.Ordinal*f.spacing, f.widths.Ordinal)
	}
}

func zeroPad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// columnLetter maps column 0 to "a", 1 to "b" and so on up to "y". Later
// columns carry a "z" prefix per 25 columns ("za", "zb", ...) so labels
// stay letters and keep sorting in column order.
func columnLetter(n int) string {
	return strings.Repeat("z", n/25) + string(rune('a'+n%25))
}

// sanitizeFacs turns a facsimile reference into something usable inside an
// identifier: a leading "#" is dropped and characters outside letters,
// digits, "." and "_" become "-".
func sanitizeFacs(facs string) string {
	facs = strings.TrimPrefix(strings.TrimSpace(facs), "#")
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_':
			return r
		default:
			return '-'
		}
	}, facs)
}
